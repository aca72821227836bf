// Package yuv applies derived colormatrices to decoded image.YCbCr frames,
// replacing the fixed bt601 full-range conversion the image/color package
// hardcodes with the standard and sample range the frame was actually coded
// in.
package yuv

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/colormatrix"
)

var _ = fmt.Print

func quantize8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Convert converts img to RGB with the supplied matrix. The matrix operates
// on 8-bit codes normalized to [0, 1]; results are clamped and requantized
// to 8 bits. All chroma subsampling layouts supported by image.YCbCr are
// handled. Rows are processed in parallel.
func Convert(img *image.YCbCr, m colormatrix.Matrix) (*NRGB, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ans := NewNRGB(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return ans, nil
	}
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			row := ans.Pix[ans.Stride*y:]
			_ = row[3*(width-1)]
			for x := range width {
				yi := img.YOffset(b.Min.X+x, b.Min.Y+y)
				ci := img.COffset(b.Min.X+x, b.Min.Y+y)
				yv := float32(img.Y[yi]) / 255
				cb := float32(img.Cb[ci]) / 255
				cr := float32(img.Cr[ci]) / 255
				r, g, bl := m.Apply(yv, cb, cr)
				row[0] = quantize8(r)
				row[1] = quantize8(g)
				row[2] = quantize8(bl)
				row = row[3:]
			}
		}
	}
	err := parallel.Run_in_parallel_over_range(0, f, 0, height)
	if err != nil {
		return nil, err
	}
	return ans, nil
}

// ConvertStandard derives the matrix for cs in the given sample range and
// converts img with it.
func ConvertStandard(img *image.YCbCr, cs colormatrix.ColorSpace, videoRange bool) (*NRGB, error) {
	std, err := cs.Standard()
	if err != nil {
		return nil, err
	}
	m, err := colormatrix.Derive(std, colormatrix.RangeFor(videoRange))
	if err != nil {
		return nil, err
	}
	return Convert(img, m.Finalize())
}
