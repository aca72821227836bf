// Command cspacegen derives the YUV to RGB colormatrix tables and writes
// them out as generated source.
//
// Usage:
//
//	cspacegen -header colormatrix.h -source colormatrix.c
//	cspacegen -go tables.go -pkg render
//	cspacegen -full-range -header colormatrix.h -source colormatrix.c
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kovidgoyal/colormatrix"
	"github.com/kovidgoyal/colormatrix/gen"
)

var (
	headerPath = flag.String("header", "", "Output path for the generated C header")
	sourcePath = flag.String("source", "", "Output path for the generated C source")
	goPath     = flag.String("go", "", "Output path for the generated Go source")
	goPackage  = flag.String("pkg", "colormatrix", "Package name for the generated Go source")
	fullRange  = flag.Bool("full-range", false, "Derive full range matrices instead of video range")
)

func main() {
	flag.Parse()
	var sinks []colormatrix.Sink
	if *headerPath != "" || *sourcePath != "" {
		if *headerPath == "" || *sourcePath == "" {
			fmt.Fprintln(os.Stderr, "Error: C output needs both -header and -source")
			os.Exit(1)
		}
		sinks = append(sinks, &gen.CSource{HeaderPath: *headerPath, SourcePath: *sourcePath})
	}
	if *goPath != "" {
		sinks = append(sinks, &gen.GoSource{Path: *goPath, Package: *goPackage})
	}
	if len(sinks) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no outputs specified")
		flag.Usage()
		os.Exit(1)
	}
	catalog, err := colormatrix.BuildCatalog(!*fullRange)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, sink := range sinks {
		if err := catalog.Emit(sink); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
