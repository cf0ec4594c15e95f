// Package uff decodes and encodes universal files, the record-oriented
// interchange format used by structural-dynamics and modal-analysis tools.
//
// # File Format
//
// A universal file is line-delimited ASCII partitioned into datasets. Each
// dataset is bracketed by a sentinel line, the value -1 right-justified in
// six columns:
//
//	    -1
//	   151
//	model.unv
//	...
//	    -1
//
// The first line inside a dataset carries its type tag (151 above). Fields
// within dataset lines occupy fixed Fortran column layouts (I10, E13.5,
// 20A1 and so on), never delimiter-separated tokens.
//
// Binary dataset variants (type 58b) pack extra fields onto the tag line
// and follow twelve ASCII header lines with a raw byte payload that runs up
// to the closing sentinel.
//
// # Decoding
//
// DecodeAll scans the buffer into blocks, derives each block's tag, and
// dispatches to the parser registered for that tag:
//
//	records, stats, err := uff.DecodeAll(data)
//
// Blocks with no registered parser are skipped and counted, not fatal.
// Records with malformed fixed-width fields are skipped and counted by
// default; WithStrictFields makes them abort the call instead. A truncated
// binary payload is structural and is always returned as an error, together
// with the records decoded before the failure.
//
// # Encoding
//
// EncodeAll renders records back into sentinel-bracketed dataset lines in
// input order. Decoding the encoded output yields the same records, though
// the text is not guaranteed byte-identical to the original file.
//
// Concrete dataset kinds live in pkg/dataset and register themselves with
// pkg/registry at init time; importing pkg/dataset is enough to enable all
// supported kinds.
package uff
