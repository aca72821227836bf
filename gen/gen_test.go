package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colormatrix"
)

func buildCatalog(t *testing.T) *colormatrix.Catalog {
	t.Helper()
	c, err := colormatrix.BuildCatalog(true)
	require.NoError(t, err)
	return c
}

func TestCSourceEmit(t *testing.T) {
	c := buildCatalog(t)
	dir := t.TempDir()
	sink := &CSource{
		HeaderPath: filepath.Join(dir, "colormatrix.h"),
		SourcePath: filepath.Join(dir, "colormatrix.c"),
	}
	require.NoError(t, c.Emit(sink))

	header, err := os.ReadFile(sink.HeaderPath)
	require.NoError(t, err)
	h := string(header)
	assert.Contains(t, h, "DO NOT EDIT")
	assert.Contains(t, h, "#ifndef COLORMATRIX_H\n#define COLORMATRIX_H")
	assert.Contains(t, h, "#define COLORMATRIX_UNDEFINED")
	assert.Contains(t, h, "void colormatrix_yuv_to_rgb(float *dst, int colormatrix);")
	// Identifiers in enumeration order.
	for i, want := range []string{"UNDEFINED", "BT601", "BT709", "BT2020"} {
		line := "COLORMATRIX_" + want
		require.Contains(t, h, line)
		idx := strings.Index(h, line)
		assert.Contains(t, h[idx:idx+40], " "+string(rune('0'+i))+"\n", "identifier of %s", want)
	}

	source, err := os.ReadFile(sink.SourcePath)
	require.NoError(t, err)
	s := string(source)
	assert.Contains(t, s, `#include "colormatrix.h"`)
	assert.Contains(t, s, "static const float colormatrices[][16] = {")
	assert.Contains(t, s, "[COLORMATRIX_BT601] = {")
	assert.Contains(t, s, "[COLORMATRIX_BT2020] = {")
	assert.NotContains(t, s, "[COLORMATRIX_UNDEFINED]")
	assert.Contains(t, s, "memcpy(dst, colormatrices[colormatrix], sizeof(colormatrices[colormatrix]));")
	// The bt709 video range Y factor must appear in the table.
	m, err := c.Matrix(colormatrix.BT709)
	require.NoError(t, err)
	assert.Contains(t, s, formatFloat32(m[0]))
}

func TestCSourceRequiresBothPaths(t *testing.T) {
	c := buildCatalog(t)
	require.Error(t, c.Emit(&CSource{HeaderPath: filepath.Join(t.TempDir(), "x.h")}))
	require.Error(t, c.Emit(&CSource{SourcePath: filepath.Join(t.TempDir(), "x.c")}))
}

func TestGoSourceEmit(t *testing.T) {
	c := buildCatalog(t)
	path := filepath.Join(t.TempDir(), "tables.go")
	require.NoError(t, c.Emit(&GoSource{Path: path, Package: "render"}))

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(src)
	assert.True(t, strings.HasPrefix(s, "// Code generated by cspacegen. DO NOT EDIT."))
	assert.Contains(t, s, "package render")
	assert.Contains(t, s, "ColorSpaceUndefined ColorSpace = 0")
	assert.Contains(t, s, "ColorSpaceBT2020")
	assert.Contains(t, s, "func YUVToRGB(dst []float32, cs ColorSpace)")

	// The emitted file must be valid, gofmt-clean Go.
	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, path, src, 0)
	require.NoError(t, err)
}

func TestEmittedBytesAreStable(t *testing.T) {
	c := buildCatalog(t)
	dir := t.TempDir()
	first := &CSource{HeaderPath: filepath.Join(dir, "a.h"), SourcePath: filepath.Join(dir, "a.c")}
	second := &CSource{HeaderPath: filepath.Join(dir, "b.h"), SourcePath: filepath.Join(dir, "b.c")}
	require.NoError(t, c.Emit(first))
	require.NoError(t, c.Emit(second))
	a, err := os.ReadFile(first.SourcePath)
	require.NoError(t, err)
	b, err := os.ReadFile(second.SourcePath)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	goFirst := filepath.Join(dir, "a.go")
	goSecond := filepath.Join(dir, "b.go")
	require.NoError(t, c.Emit(&GoSource{Path: goFirst}))
	require.NoError(t, c.Emit(&GoSource{Path: goSecond}))
	a, err = os.ReadFile(goFirst)
	require.NoError(t, err)
	b, err = os.ReadFile(goSecond)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
