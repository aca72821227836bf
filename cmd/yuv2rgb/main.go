// Command yuv2rgb decodes a JPEG or WebP image, converts its YCbCr planes
// to RGB with a chosen colorimetry standard and sample range, and writes
// the result as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/jpeg"

	_ "golang.org/x/image/webp"

	"github.com/kovidgoyal/colormatrix"
	"github.com/kovidgoyal/colormatrix/yuv"
)

var _ = fmt.Print

var (
	space     = flag.String("colorspace", "bt601", "Colorimetry standard the input is coded in (bt601, bt709, bt2020)")
	fullRange = flag.Bool("full-range", false, "Treat samples as full range instead of video range")
)

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: yuv2rgb [options] input-file output-file")
		os.Exit(1)
	}
	cs, err := colormatrix.ColorSpaceByName(*space)
	if err != nil {
		return
	}
	in, err := os.Open(flag.Arg(0))
	if err != nil {
		return
	}
	defer in.Close()
	img, _, err := image.Decode(in)
	if err != nil {
		return
	}
	ycbcr, ok := img.(*image.YCbCr)
	if !ok {
		err = fmt.Errorf("%s did not decode to YCbCr planes (%T)", flag.Arg(0), img)
		return
	}
	converted, err := yuv.ConvertStandard(ycbcr, cs, !*fullRange)
	if err != nil {
		return
	}
	out, err := os.OpenFile(flag.Arg(1), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return
	}
	defer out.Close()
	err = png.Encode(out, converted)
	if err == nil {
		fmt.Println("PNG saved to:", flag.Arg(1))
	}
}
