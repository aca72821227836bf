package colormatrix

import (
	"fmt"
)

// Entry pairs a colorspace name with its stable identifier.
type Entry struct {
	Name string
	ID   ColorSpace
}

// Sink receives the finished enumeration and matrix table. The entries
// cover every identifier including undefined; the matrix table covers only
// the non-undefined ones, so matrices[i] belongs to entries[i+1].
// Implementations own serialization, the catalog never formats anything.
type Sink interface {
	Emit(entries []Entry, matrices []Matrix) error
}

// catalogOrder is the stable emission order. Undefined comes first and has
// no matrix, which is what makes the identifier-1 table indexing work.
var catalogOrder = [...]ColorSpace{Undefined, BT601, BT709, BT2020}

// Catalog is the ordered, fully derived matrix set for one sample range.
type Catalog struct {
	Entries  []Entry
	Matrices []Matrix
}

// BuildCatalog derives the matrix of every supported standard for the given
// sample range. Any failure aborts the build, there are no partial catalogs.
func BuildCatalog(videoRange bool) (*Catalog, error) {
	rng := RangeFor(videoRange)
	ans := &Catalog{
		Entries:  make([]Entry, 0, len(catalogOrder)),
		Matrices: make([]Matrix, 0, len(catalogOrder)-1),
	}
	for _, cs := range catalogOrder {
		ans.Entries = append(ans.Entries, Entry{Name: cs.String(), ID: cs})
		if cs == Undefined {
			continue
		}
		std, err := cs.Standard()
		if err != nil {
			return nil, err
		}
		m, err := Derive(std, rng)
		if err != nil {
			return nil, err
		}
		ans.Matrices = append(ans.Matrices, m.Finalize())
	}
	return ans, nil
}

// Matrix returns the finalized matrix for a valid non-undefined identifier.
func (c *Catalog) Matrix(cs ColorSpace) (Matrix, error) {
	i := int(cs) - 1
	if i < 0 || i >= len(c.Matrices) {
		return Matrix{}, fmt.Errorf("no matrix for colorspace %s", cs)
	}
	return c.Matrices[i], nil
}

// YUVToRGB copies the 16 matrix values for cs into dst, which must have
// length 16. Undefined and out of range identifiers are rejected.
func (c *Catalog) YUVToRGB(dst []float32, cs ColorSpace) error {
	if len(dst) != 16 {
		return fmt.Errorf("destination must hold 16 values, not %d", len(dst))
	}
	m, err := c.Matrix(cs)
	if err != nil {
		return err
	}
	copy(dst, m[:])
	return nil
}

// Emit hands the ordered enumeration and matrix table to sink. The sink
// receives its own copies, so it cannot corrupt a catalog that is emitted
// more than once.
func (c *Catalog) Emit(sink Sink) error {
	entries := append([]Entry(nil), c.Entries...)
	matrices := append([]Matrix(nil), c.Matrices...)
	return sink.Emit(entries, matrices)
}
