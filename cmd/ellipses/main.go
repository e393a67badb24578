// seehuhn.de/go/ellipses - practice sheets for drawing ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command ellipses generates and renders practice sheets for drawing
// ellipses, and serves them over HTTP.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seehuhn.de/go/ellipses/errors"
	"seehuhn.de/go/ellipses/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCommand(os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		msg := errors.UserMessage(err)
		if cause := stderrors.Unwrap(err); cause != nil {
			msg += ": " + cause.Error()
		}
		fmt.Fprintln(os.Stderr, "ellipses:", msg)
		os.Exit(1)
	}
}
