// Copyright
// SPDX-License-Identifier: MIT
// codepad: terminal live-coding scratchpad with named saves
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"codepad/internal/cli"
)

const Version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, Version)
	stop()
	os.Exit(code)
}
