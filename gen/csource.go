package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kovidgoyal/colormatrix"
)

var _ = fmt.Print

// CSource writes the catalog as a C header and source pair. The header
// carries the identifier defines and the accessor prototype, the source
// carries the float table with designated initializers so the row for the
// undefined identifier stays zeroed. The accessor copies by identifier
// directly and is deliberately unguarded, callers must not pass the
// undefined identifier.
type CSource struct {
	HeaderPath string
	SourcePath string
	// Prefix is prepended to the enumeration defines. Defaults to
	// "COLORMATRIX_".
	Prefix string
	// FuncName is the name of the generated accessor. Defaults to
	// "colormatrix_yuv_to_rgb".
	FuncName string
}

const banner = "/* DO NOT EDIT - This file is autogenerated */\n"

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (c *CSource) prefix() string {
	if c.Prefix == "" {
		return "COLORMATRIX_"
	}
	return c.Prefix
}

func (c *CSource) funcName() string {
	if c.FuncName == "" {
		return "colormatrix_yuv_to_rgb"
	}
	return c.FuncName
}

func (c *CSource) define(name string) string {
	return c.prefix() + strings.ToUpper(name)
}

func guardMacro(headerPath string) string {
	base := filepath.Base(headerPath)
	var b strings.Builder
	for _, r := range strings.ToUpper(base) {
		if ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (c *CSource) header(entries []colormatrix.Entry) []byte {
	var buf bytes.Buffer
	guard := guardMacro(c.HeaderPath)
	buf.WriteString(banner)
	fmt.Fprintf(&buf, "\n#ifndef %s\n#define %s\n\n", guard, guard)
	for _, e := range entries {
		fmt.Fprintf(&buf, "#define %-26s %d\n", c.define(e.Name), int(e.ID))
	}
	fmt.Fprintf(&buf, "\nvoid %s(float *dst, int colormatrix);\n\n#endif\n", c.funcName())
	return buf.Bytes()
}

func (c *CSource) source(entries []colormatrix.Entry, matrices []colormatrix.Matrix) []byte {
	var buf bytes.Buffer
	buf.WriteString(banner)
	fmt.Fprintf(&buf, "\n#include <string.h>\n\n#include \"%s\"\n\n", filepath.Base(c.HeaderPath))
	buf.WriteString("static const float colormatrices[][16] = {\n")
	for i, m := range matrices {
		fmt.Fprintf(&buf, "    [%s] = {\n", c.define(entries[i+1].Name))
		for row := 0; row < 16; row += 4 {
			buf.WriteString("       ")
			for _, v := range m[row : row+4] {
				fmt.Fprintf(&buf, " %s,", formatFloat32(v))
			}
			buf.WriteString("\n")
		}
		buf.WriteString("    },\n")
	}
	buf.WriteString("};\n\n")
	fmt.Fprintf(&buf, "void %s(float *dst, int colormatrix)\n{\n", c.funcName())
	buf.WriteString("    memcpy(dst, colormatrices[colormatrix], sizeof(colormatrices[colormatrix]));\n}\n")
	return buf.Bytes()
}

// Emit writes both files. Output is deterministic: identical input produces
// identical bytes.
func (c *CSource) Emit(entries []colormatrix.Entry, matrices []colormatrix.Matrix) error {
	if c.HeaderPath == "" || c.SourcePath == "" {
		return errors.New("both a header and a source output path are required")
	}
	if err := os.WriteFile(c.HeaderPath, c.header(entries), 0o644); err != nil {
		return err
	}
	return os.WriteFile(c.SourcePath, c.source(entries, matrices), 0o644)
}

var _ colormatrix.Sink = (*CSource)(nil)
