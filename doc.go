// Package filer provides uniform save and load operations across common
// file formats: delimited tabular data (CSV), spreadsheet workbooks (XLSX),
// structured values (JSON and YAML), opaque binary blobs, and one-way
// text-to-PDF documents.
//
// Every handler follows the same shape: a save takes a value, a directory,
// and a base name, resolves the target path by appending the format's
// canonical extension, creates intermediate directories, writes through the
// underlying format library, and returns the resolved path. A load takes a
// path and reproduces semantically equivalent data. Path resolution is pure
// and deterministic; see [Resolve]. Writes go through a temporary file in
// the target directory and rename into place, so a failed save never leaves
// a complete-looking file behind.
//
// # Tabular
//
// Build a [Dataset] from a column mapping with [NewDataset] (unequal column
// lengths are [ErrSchema]), then save and load with [SaveCSV] and [LoadCSV]:
//
//	ds, err := filer.NewDataset(map[string][]any{
//		"name": {"ada", "grace"},
//		"age":  {int64(36), int64(45)},
//	})
//	path, err := filer.SaveCSV(ds, dir, "people")
//	ds, err = filer.LoadCSV(path)
//
// Loaded cells are type-inferred: integer text becomes int64, numeric text
// float64, true/false bool, empty cells nil, everything else stays a
// string. Round trips preserve column names, row count, and values subject
// to that inference.
//
// [SaveXLSX] and [LoadXLSX] apply the same contract to workbooks, one
// [Sheet] per worksheet.
//
// # Structured
//
// [SaveJSON] and [LoadJSON] (and the YAML equivalents) handle values
// composed of nil, bool, number, string, []any, and map[string]any; for
// such values load(save(v)) is deeply equal to v. Two fallback conversions
// are applied before encoding: time.Time becomes RFC 3339 text, and scalar
// map keys become their string form. Anything else the encoder cannot
// represent is [ErrSerialize].
//
// # Blobs
//
// [SaveBlob] serializes any value the MessagePack codec can encode into a
// gzip-compressed blob; [LoadBlob] decodes into a caller-supplied pointer.
// Structural equivalence is guaranteed for primitives, sequences, and
// mappings, and for structs decoded back into their own type.
//
// # Documents
//
// [SavePDF] renders plain text into a paginated PDF, with options for a
// title heading, page size, and orientation:
//
//	path, err := filer.SavePDF(text, dir, "report", filer.WithTitle("Report"))
//
// Rendering is one-way; there is no PDF load.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNotFound] — load target absent
//   - [ErrParse] — content present but malformed for the format
//   - [ErrSchema] — input violates a structural precondition
//   - [ErrSerialize], [ErrDeserialize] — value not representable in, or not
//     recoverable from, the target encoding
//   - [ErrRender] — document engine rejected the content
//
// Filesystem failures surface as wrapped os errors. There are no retries
// and no silent recovery; every error carries the path or input involved.
//
// All operations are synchronous and touch at most one file. The package
// holds no state between calls, so concurrent calls on different paths are
// safe; concurrent saves to the same path are last-writer-wins.
package filer
