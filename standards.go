package colormatrix

import (
	"errors"
	"fmt"
	"math/big"
)

var _ = fmt.Print

// ColorSpace identifies a colorimetry standard. The zero value is reserved
// for "undefined" and has no associated matrix.
type ColorSpace int

const (
	Undefined ColorSpace = iota
	BT601
	BT709
	BT2020
)

var colorSpaceNames = map[ColorSpace]string{
	Undefined: "undefined",
	BT601:     "bt601",
	BT709:     "bt709",
	BT2020:    "bt2020",
}

var colorSpacesByName = map[string]ColorSpace{
	"undefined": Undefined,
	"bt601":     BT601,
	"bt709":     BT709,
	"bt2020":    BT2020,
}

func (c ColorSpace) String() string {
	if name, ok := colorSpaceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ColorSpace(%d)", int(c))
}

// ColorSpaceByName maps a standard name ("bt601", "bt709", "bt2020",
// "undefined") to its identifier.
func ColorSpaceByName(name string) (ColorSpace, error) {
	cs, ok := colorSpacesByName[name]
	if !ok {
		return Undefined, fmt.Errorf("%w: %q", ErrUnknownStandard, name)
	}
	return cs, nil
}

// Standard holds the luma mixing weights of one colorimetry standard as
// exact rationals.
type Standard struct {
	Name       string
	Kr, Kg, Kb *big.Rat
}

var (
	ErrUnknownStandard        = errors.New("unknown colorimetry standard")
	ErrCoefficientConsistency = errors.New("luma coefficients do not sum to one")
	ErrDegenerateCoefficients = errors.New("degenerate luma coefficients")
)

// The registry is closed: these three standards and nothing else. The
// weights are the published constants, kept as rationals so the derivation
// downstream stays exact.
var standards = map[string]Standard{
	"bt601": {
		Name: "bt601",
		Kr:   big.NewRat(299, 1000),
		Kg:   big.NewRat(587, 1000),
		Kb:   big.NewRat(114, 1000),
	},
	"bt709": {
		Name: "bt709",
		Kr:   big.NewRat(2126, 10000),
		Kg:   big.NewRat(7152, 10000),
		Kb:   big.NewRat(722, 10000),
	},
	"bt2020": {
		Name: "bt2020",
		Kr:   big.NewRat(2627, 10000),
		Kg:   big.NewRat(6780, 10000),
		Kb:   big.NewRat(593, 10000),
	},
}

// StandardByName returns the luma weights for name. Every retrieval checks
// Kg == 1 - Kr - Kb exactly; a violation means the constant table itself is
// corrupted and the error must be treated as fatal by callers. The returned
// rationals are copies, the registry is never exposed for mutation.
func StandardByName(name string) (Standard, error) {
	std, ok := standards[name]
	if !ok {
		return Standard{}, fmt.Errorf("%w: %q", ErrUnknownStandard, name)
	}
	want := new(big.Rat).SetInt64(1)
	want.Sub(want, std.Kr)
	want.Sub(want, std.Kb)
	if std.Kg.Cmp(want) != 0 {
		return Standard{}, fmt.Errorf("%w: %s has Kg=%s, want %s",
			ErrCoefficientConsistency, name, std.Kg.RatString(), want.RatString())
	}
	return Standard{
		Name: std.Name,
		Kr:   new(big.Rat).Set(std.Kr),
		Kg:   new(big.Rat).Set(std.Kg),
		Kb:   new(big.Rat).Set(std.Kb),
	}, nil
}

// Standard returns the luma weights for a non-undefined identifier.
func (c ColorSpace) Standard() (Standard, error) {
	return StandardByName(c.String())
}
