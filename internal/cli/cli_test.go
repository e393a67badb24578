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
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/errors"
	"seehuhn.de/go/ellipses/internal/config"
)

// isolate runs the test in an empty directory with no configuration
// taken from the environment.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvConfigFile, "ENVIRONMENT", "PORT", "ADDR", "LOG_LEVEL", "SENTRY_DSN"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(io.Discard)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func testList(t *testing.T, n int) string {
	t.Helper()
	defs, err := ellipse.NewGenerator(5, nil).Generate(config.Default().Params(n))
	require.NoError(t, err)
	data, err := ellipse.EncodeList(defs)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "generate", "-n", "5", "--seed", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n"))

	got, err := ellipse.DecodeList([]byte(out))
	require.NoError(t, err)
	want, err := ellipse.NewGenerator(3, nil).Generate(config.Default().Params(5))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateDefaultCount(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "generate")
	require.NoError(t, err)
	defs, err := ellipse.DecodeList([]byte(out))
	require.NoError(t, err)
	assert.Len(t, defs, config.Default().Generator.DefaultCount)
}

func TestGenerateInvalidCount(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "generate", "-n", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter))
}

func TestPreview(t *testing.T) {
	dir := isolate(t)
	list := testList(t, 8)

	var pages [][]byte
	for _, page := range []string{"1", "2", "3"} {
		out := filepath.Join(dir, "page"+page+".png")
		_, err := execute(t, list, "preview", "--page", page, "-o", out)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 878, img.Bounds().Dx())
		assert.Equal(t, 623, img.Bounds().Dy())
		pages = append(pages, data)
	}
	assert.NotEqual(t, pages[0], pages[1])
	assert.NotEqual(t, pages[1], pages[2])
}

func TestPreviewFromFileToStdout(t *testing.T) {
	dir := isolate(t)
	in := filepath.Join(dir, "list.json")
	require.NoError(t, os.WriteFile(in, []byte(testList(t, 3)), 0o644))

	out, err := execute(t, "", "preview", "--input", in, "-o", "-")
	require.NoError(t, err)
	_, err = png.Decode(strings.NewReader(out))
	assert.NoError(t, err)
}

func TestPreviewInvalidPage(t *testing.T) {
	isolate(t)

	for _, page := range []string{"0", "4"} {
		_, err := execute(t, "[]", "preview", "--page", page, "-o", "-")
		require.Error(t, err, page)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter), page)
	}
}

func TestPreviewMalformedInput(t *testing.T) {
	isolate(t)

	_, err := execute(t, `[{"cntr":[1,2]}]`, "preview", "-o", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMalformedInput))
}

func TestMissingInputFile(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "", "pdf", "--input", filepath.Join(dir, "missing.json"), "-o", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter))
}

func TestOutputRequired(t *testing.T) {
	isolate(t)

	_, err := execute(t, "[]", "pdf")
	assert.Error(t, err)
}

func TestPDF(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "sheet.pdf")

	_, err := execute(t, testList(t, 12), "pdf", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestConfigFlag(t *testing.T) {
	dir := isolate(t)
	cfgFile := filepath.Join(dir, "ellipses.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[render]\ndpi = 50\n"), 0o644))

	out, err := execute(t, "[]", "--config", cfgFile, "preview", "-o", "-")
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 439, img.Bounds().Dx())
}

func TestInvalidConfig(t *testing.T) {
	dir := isolate(t)
	cfgFile := filepath.Join(dir, "ellipses.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("log_level = \"loud\"\n"), 0o644))

	_, err := execute(t, "", "--config", cfgFile, "generate")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter))
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := log.New(io.Discard)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestConfigFromContext(t *testing.T) {
	assert.Equal(t, config.Default(), configFromContext(context.Background()))

	cfg := config.Default()
	cfg.Addr = ":9999"
	assert.Same(t, cfg, configFromContext(withConfig(context.Background(), cfg)))
}
