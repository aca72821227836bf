package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/kovidgoyal/colormatrix"
)

// GoSource writes the catalog as a standalone generated Go file: the
// identifier constants, the matrix table indexed by identifier-1 and a copy
// accessor mirroring the C one.
type GoSource struct {
	Path string
	// Package is the package clause of the generated file. Defaults to
	// "colormatrix".
	Package string
}

func constName(name string) string {
	if name == "undefined" {
		return "ColorSpaceUndefined"
	}
	return "ColorSpace" + strings.ToUpper(name)
}

func (g *GoSource) generate(entries []colormatrix.Entry, matrices []colormatrix.Matrix) ([]byte, error) {
	pkg := g.Package
	if pkg == "" {
		pkg = "colormatrix"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cspacegen. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	buf.WriteString("// ColorSpace identifies a colorimetry standard. ColorSpaceUndefined has no matrix.\ntype ColorSpace int\n\nconst (\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t%s ColorSpace = %d\n", constName(e.Name), int(e.ID))
	}
	buf.WriteString(")\n\n")
	buf.WriteString("// colorMatrices is indexed by ColorSpace - 1.\nvar colorMatrices = [...][16]float32{\n")
	for i, m := range matrices {
		fmt.Fprintf(&buf, "\t%s - 1: {\n", constName(entries[i+1].Name))
		for row := 0; row < 16; row += 4 {
			buf.WriteString("\t\t")
			for _, v := range m[row : row+4] {
				fmt.Fprintf(&buf, "%s, ", formatFloat32(v))
			}
			buf.WriteString("\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")
	buf.WriteString("// YUVToRGB copies the 16 matrix values for cs into dst. cs must be a\n" +
		"// valid identifier other than ColorSpaceUndefined and dst must have\n" +
		"// length 16.\n" +
		"func YUVToRGB(dst []float32, cs ColorSpace) {\n\tcopy(dst, colorMatrices[cs-1][:])\n}\n")
	return format.Source(buf.Bytes())
}

// Emit writes the generated file, gofmt formatted and byte stable for
// identical input.
func (g *GoSource) Emit(entries []colormatrix.Entry, matrices []colormatrix.Matrix) error {
	if g.Path == "" {
		return errors.New("an output path is required")
	}
	src, err := g.generate(entries, matrices)
	if err != nil {
		return err
	}
	return os.WriteFile(g.Path, src, 0o644)
}

var _ colormatrix.Sink = (*GoSource)(nil)
