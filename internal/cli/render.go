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
	"io"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/errors"
	"seehuhn.de/go/ellipses/sheet"
)

// renderOpts holds the flags shared by the preview and pdf commands.
type renderOpts struct {
	input  string // file with the ellipse list, "-" for stdin
	output string // output file, "-" for stdout
}

func (o *renderOpts) addFlags(cmd *cobra.Command, what string) {
	cmd.Flags().StringVarP(&o.input, "input", "i", stdinName, "JSON ellipse list (\"-\" for stdin)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", what+" output file (\"-\" for stdout)")
	_ = cmd.MarkFlagRequired("output")
}

func newPreviewCmd() *cobra.Command {
	var opts renderOpts
	var page int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one page of a practice sheet as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 || page > 3 {
				return errors.New(errors.ErrCodeInvalidParameter, "page must be between 1 and 3, got %d", page)
			}
			return runRender(cmd, &opts, "preview", func(r *sheet.Renderer, defs []ellipse.Def, c sheet.Canvas) ([]byte, error) {
				return r.Preview(defs, c, sheet.PageMode(page))
			})
		},
	}

	opts.addFlags(cmd, "PNG")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to render: 1 full, 2 axes only, 3 ellipses only")
	return cmd
}

func newPDFCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Render the three page practice document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &opts, "document", (*sheet.Renderer).Document)
		},
	}

	opts.addFlags(cmd, "PDF")
	return cmd
}

type renderFunc func(r *sheet.Renderer, defs []ellipse.Def, c sheet.Canvas) ([]byte, error)

// runRender reads the ellipse list, renders it and writes the result.
func runRender(cmd *cobra.Command, opts *renderOpts, what string, render renderFunc) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := readInput(cmd, opts.input)
	if err != nil {
		return err
	}
	defs, err := ellipse.DecodeList(in)
	if err != nil {
		return err
	}

	r := sheet.NewRenderer(cfg.Render.DPI, logger)
	data, err := render(r, defs, cfg.SheetCanvas())
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}

	prog.done("rendered "+what, "ellipses", len(defs), "output", opts.output)
	return nil
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	var data []byte
	var err error
	if name == stdinName {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, err, "cannot read input %q", name)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, name string, data []byte) error {
	var err error
	if name == stdinName {
		_, err = cmd.OutOrStdout().Write(data)
	} else {
		err = os.WriteFile(name, data, 0o644)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cannot write output %q", name)
	}
	return nil
}
