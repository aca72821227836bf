/*
Package colormatrix derives the affine transforms that convert quantized
luma/chroma (Y, Cb, Cr) samples into RGB for the bt601, bt709 and bt2020
colorimetry standards, in either video (limited) or full sample range.

The derivation inverts the standard's forward quantization model using exact
rational arithmetic, so no floating point error accumulates across the
algebra. Values are narrowed to float32 exactly once, when a matrix is
finalized for consumers. The finished matrices are collected into a Catalog
with stable integer identifiers (0 is reserved for "undefined" and has no
matrix) and handed to an emission Sink, typically one of the source
generators in the gen subpackage.
*/
package colormatrix
