package savestate

import "strings"

// IsValidName reports whether name may be used for a user save. Reserved
// names are never valid. Only spaces and tabs count as blank; a name already
// in use is valid and overwrites.
func IsValidName(name string, reserved []string) bool {
	if name == "" {
		return false
	}
	for _, r := range reserved {
		if r == name {
			return false
		}
	}
	return strings.Trim(name, " \t") != ""
}
