package filer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// SaveCSV writes the dataset as comma-delimited UTF-8 text at
// dir/name.csv, with the column names as the header row. A dataset with no
// columns returns ErrSchema, since the format cannot represent a header
// row with zero fields. Intermediate directories are created as needed.
// Returns the resolved path.
func SaveCSV(ds *Dataset, dir, name string) (string, error) {
	if len(ds.cols) == 0 {
		return "", fmt.Errorf("%w: dataset has no columns", ErrSchema)
	}
	path := Resolve(dir, name, CSV)
	err := writeFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(ds.cols); err != nil {
			return err
		}
		record := make([]string, len(ds.cols))
		for _, row := range ds.rows {
			for j, v := range row {
				record[j] = formatCell(v)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// LoadCSV reads comma-delimited text into a dataset. The first record is
// the header row. Returns ErrNotFound if the path does not exist and
// ErrParse on malformed content. Cell values are type-inferred: integer
// text to int64, numeric text to float64, true/false to bool, empty to
// nil, everything else stays text.
func LoadCSV(path string) (*Dataset, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrParse, path)
	}
	ds := &Dataset{cols: records[0]}
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for j, cell := range record {
			row[j] = inferCell(cell)
		}
		ds.rows = append(ds.rows, row)
	}
	return ds, nil
}

// formatCell renders a single cell value as text. Nil becomes the empty
// string so that load infers it back to nil.
func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// inferCell is the inverse of formatCell for untyped text cells. Boolean
// text is matched in the common casings because spreadsheet readers render
// boolean cells as TRUE/FALSE.
func inferCell(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	}
	return s
}
