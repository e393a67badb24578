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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ellipses/ellipse"
)

func newGenerateCmd() *cobra.Command {
	var n int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a list of random ellipses as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := loggerFromContext(ctx)

			if !cmd.Flags().Changed("count") {
				n = cfg.Generator.DefaultCount
			}
			var g *ellipse.Generator
			if cmd.Flags().Changed("seed") {
				g = ellipse.NewGenerator(seed, logger)
			} else {
				g = ellipse.NewRandomGenerator(logger)
			}

			defs, err := g.Generate(cfg.Params(n))
			if err != nil {
				return err
			}
			data, err := ellipse.EncodeList(defs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of ellipses (default from the configuration)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output (default random)")
	return cmd
}
