// Package gen contains the emission sinks that serialize a derived
// colormatrix catalog into generated source artifacts: a C header/source
// pair for the rendering pipeline, and a standalone Go table for Go
// consumers. The emitters only format, every numeric value arrives already
// finalized from the catalog.
package gen
