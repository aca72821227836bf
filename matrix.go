package colormatrix

import (
	"fmt"
	"math/big"
)

var _ = fmt.Println

// RatMatrix is the exact form of one YUV to RGB transform. The rows are, in
// order, the per-channel Y factors, Cb factors, Cr factors and constant
// offsets, with column order R, G, B plus an alpha passthrough column, so
// the transform is the single product (Y, Cb, Cr, 1) * M.
type RatMatrix [4][4]*big.Rat

// Matrix is a finalized transform: the nearest float32 representation of
// each rational entry, flattened row major.
type Matrix [16]float32

func rat(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

func mul(x *big.Rat, ys ...*big.Rat) *big.Rat {
	ans := new(big.Rat).Set(x)
	for _, y := range ys {
		ans.Mul(ans, y)
	}
	return ans
}

func quo(x, y *big.Rat) *big.Rat { return new(big.Rat).Quo(x, y) }

func add(x *big.Rat, ys ...*big.Rat) *big.Rat {
	ans := new(big.Rat).Set(x)
	for _, y := range ys {
		ans.Add(ans, y)
	}
	return ans
}

func sub(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }

func neg(x *big.Rat) *big.Rat { return new(big.Rat).Neg(x) }

// Derive computes the affine YUV to RGB matrix for one standard and one
// sample range by inverting the forward quantization model
//
//	Yq  = Kr*R + Kg*G + Kb*B
//	Cbq = (B - Yq) / (2*(1-Kb))
//	Crq = (R - Yq) / (2*(1-Kr))
//
// with the 8-bit sample code relations
//
//	Yq  = (Y*255 - YOffset) / YExcursion
//	Cbq = (Cb*255 - 128) / UVExcursion
//	Crq = (Cr*255 - 128) / UVExcursion
//
// and collecting each of R, G, B into a linear combination of Y, Cb, Cr
// plus a constant offset. All arithmetic is exact, nothing is rounded until
// Finalize.
func Derive(std Standard, rng RangeProfile) (RatMatrix, error) {
	one := rat(1)
	oneMinusKr := sub(one, std.Kr)
	oneMinusKb := sub(one, std.Kb)
	if std.Kg.Sign() == 0 || oneMinusKr.Sign() == 0 || oneMinusKb.Sign() == 0 {
		return RatMatrix{}, fmt.Errorf("%w: %s divides by zero", ErrDegenerateCoefficients, std.Name)
	}
	yExc := rat(rng.YExcursion)
	uvExc := rat(rng.UVExcursion)
	yOff := rat(rng.YOffset)
	// 1 - Kr - Kb, kept as its own term rather than substituting Kg so the
	// factor groupings stay identical to the closed forms.
	kSum := sub(oneMinusKr, std.Kb)

	rY := quo(rat(255), yExc)
	rCb := rat(0)
	rCr := quo(mul(rat(255*2), oneMinusKr), uvExc)
	rOff := sub(quo(neg(yOff), yExc), quo(mul(rat(128*2), oneMinusKr), uvExc))

	gY := quo(mul(rat(255), kSum), mul(yExc, std.Kg))
	gCb := neg(quo(mul(rat(255*2), std.Kb, oneMinusKb), mul(std.Kg, uvExc)))
	gCr := neg(quo(mul(rat(255*2), std.Kr, oneMinusKr), mul(std.Kg, uvExc)))
	gOff := quo(add(
		neg(quo(mul(yOff, kSum), yExc)),
		quo(mul(rat(128*2), std.Kb, oneMinusKb), uvExc),
		quo(mul(rat(128*2), std.Kr, oneMinusKr), uvExc),
	), std.Kg)

	bY := quo(rat(255), yExc)
	bCb := quo(mul(rat(255*2), oneMinusKb), uvExc)
	bCr := rat(0)
	bOff := sub(quo(neg(yOff), yExc), quo(mul(rat(128*2), oneMinusKb), uvExc))

	return RatMatrix{
		{rY, gY, bY, rat(0)},
		{rCb, gCb, bCb, rat(0)},
		{rCr, gCr, bCr, rat(0)},
		{rOff, gOff, bOff, rat(1)},
	}, nil
}

// Finalize narrows every entry to the nearest float32. This is the single
// lossy step of the whole derivation.
func (m RatMatrix) Finalize() Matrix {
	var ans Matrix
	for i := range 4 {
		for j := range 4 {
			f, _ := m[i][j].Float32()
			ans[i*4+j] = f
		}
	}
	return ans
}

// Apply multiplies the homogeneous sample (y, cb, cr, 1) through the matrix.
// Inputs are 8-bit codes normalized to [0, 1].
func (m Matrix) Apply(y, cb, cr float32) (r, g, b float32) {
	r = y*m[0] + cb*m[4] + cr*m[8] + m[12]
	g = y*m[1] + cb*m[5] + cr*m[9] + m[13]
	b = y*m[2] + cb*m[6] + cr*m[10] + m[14]
	return
}
