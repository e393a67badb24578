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

// Package cli implements the ellipses command line tool.
//
// The commands are:
//   - serve: run the web service
//   - generate: print a list of random ellipses as JSON
//   - preview: render one page of a practice sheet as PNG
//   - pdf: render the three page practice document
//
// All commands read the configuration described in package config.  The
// --config flag names a TOML file, --verbose enables debug logging.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ellipses/internal/config"
)

// Version is reported by --version and attached to Sentry events.
var Version = "dev"

// stdinName is the file name which selects standard input or output.
const stdinName = "-"

// NewRootCommand returns the root command with all subcommands registered.
// Log output goes to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:           "ellipses",
		Short:         "Practice sheets for drawing ellipses",
		Long:          `ellipses generates random ellipses and renders them as practice sheets, either as PNG previews, as a three page PDF document, or through a small web service.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose {
				level = debugLevel
			}

			ctx := withConfig(cmd.Context(), cfg)
			ctx = withLogger(ctx, newLogger(stderr, level))
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file (default $"+config.EnvConfigFile+")")

	root.AddCommand(newServeCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newPDFCmd())

	return root
}
