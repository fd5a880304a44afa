// Package snapshot converts wells, well sets, plates and stacks to and from
// plain serialisable values.
//
// # Reading and writing
//
// The From functions capture a structure; Build rebuilds it through the
// plate constructors so every bounds and duplicate rule applies again.
// Items that fail are skipped and reported in the joined error returned
// next to the partial result. A data-type tag that does not match the
// element type fails with [ErrDataType] before anything is built.
//
// # Encodings
//
// [EncodeJSON] and [DecodeJSON] use encoding/json, with comments and
// trailing commas stripped on input. [EncodeYAML] and [DecodeYAML] use
// gopkg.in/yaml.v3. [Load] and [Save] pick the encoding from the file
// extension. A plate snapshot with groups and no wells is a layout file:
//
//	# layout.yaml
//	label: Assay
//	rows: 8
//	columns: 12
//	groups:
//	  - label: Blanks
//	    wells: [A1, A2, A3]
//
// # Fingerprints
//
// [Fingerprint] hashes the canonical JSON encoding with BLAKE2b-256. Because
// snapshots list wells and groups in index and label order, equal structures
// always share a fingerprint.
package snapshot
