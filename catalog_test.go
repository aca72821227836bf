package colormatrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrdering(t *testing.T) {
	c, err := BuildCatalog(true)
	require.NoError(t, err)
	want := []Entry{
		{Name: "undefined", ID: Undefined},
		{Name: "bt601", ID: BT601},
		{Name: "bt709", ID: BT709},
		{Name: "bt2020", ID: BT2020},
	}
	if diff := cmp.Diff(want, c.Entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, c.Matrices, len(want)-1)
}

func TestMatrixTableOffset(t *testing.T) {
	for _, videoRange := range []bool{true, false} {
		c, err := BuildCatalog(videoRange)
		require.NoError(t, err)
		for _, cs := range []ColorSpace{BT601, BT709, BT2020} {
			std, err := cs.Standard()
			require.NoError(t, err)
			rm, err := Derive(std, RangeFor(videoRange))
			require.NoError(t, err)
			got, err := c.Matrix(cs)
			require.NoError(t, err)
			// The table entry at identifier-1 is the matrix of the standard
			// holding that identifier.
			assert.Equal(t, rm.Finalize(), got, "%s video=%v", cs, videoRange)
			assert.Equal(t, got, c.Matrices[int(cs)-1])
		}
	}
}

func TestAccessorGuards(t *testing.T) {
	c, err := BuildCatalog(true)
	require.NoError(t, err)

	dst := make([]float32, 16)
	require.NoError(t, c.YUVToRGB(dst, BT709))
	want, err := c.Matrix(BT709)
	require.NoError(t, err)
	assert.Equal(t, want[:], dst)

	require.Error(t, c.YUVToRGB(dst, Undefined))
	require.Error(t, c.YUVToRGB(dst, ColorSpace(99)))
	require.Error(t, c.YUVToRGB(dst, ColorSpace(-1)))
	require.Error(t, c.YUVToRGB(make([]float32, 15), BT709))
	_, err = c.Matrix(Undefined)
	require.Error(t, err)
}

type captureSink struct {
	entries  []Entry
	matrices []Matrix
	calls    int
}

func (s *captureSink) Emit(entries []Entry, matrices []Matrix) error {
	s.entries = entries
	s.matrices = matrices
	s.calls++
	return nil
}

func TestEmitHandsOrderedData(t *testing.T) {
	c, err := BuildCatalog(false)
	require.NoError(t, err)
	sink := &captureSink{}
	require.NoError(t, c.Emit(sink))
	require.Equal(t, 1, sink.calls)
	if diff := cmp.Diff(c.Entries, sink.entries); diff != "" {
		t.Fatalf("sink entries mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(c.Matrices, sink.matrices); diff != "" {
		t.Fatalf("sink matrices mismatch (-want +got):\n%s", diff)
	}
}

type clobberingSink struct{}

func (clobberingSink) Emit(entries []Entry, matrices []Matrix) error {
	entries[0] = Entry{Name: "clobbered", ID: ColorSpace(99)}
	matrices[0][0] = -1
	return nil
}

func TestEmitIsolatesCatalogFromSinks(t *testing.T) {
	c, err := BuildCatalog(true)
	require.NoError(t, err)
	require.NoError(t, c.Emit(clobberingSink{}))
	// A second sink must still see the untouched catalog.
	sink := &captureSink{}
	require.NoError(t, c.Emit(sink))
	assert.Equal(t, Entry{Name: "undefined", ID: Undefined}, sink.entries[0])
	fresh, err := BuildCatalog(true)
	require.NoError(t, err)
	if diff := cmp.Diff(fresh.Matrices, sink.matrices); diff != "" {
		t.Fatalf("sink saw corrupted matrices (-want +got):\n%s", diff)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := BuildCatalog(true)
	require.NoError(t, err)
	b, err := BuildCatalog(true)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("catalogs differ across runs:\n%s", diff)
	}
}
