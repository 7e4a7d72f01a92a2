package filer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet configures one worksheet in a workbook save. A zero Name becomes
// SheetN by position. NoHeader omits the column-name row.
type Sheet struct {
	Name     string
	Data     *Dataset
	NoHeader bool
}

// SaveXLSX writes one worksheet per sheet config into a workbook at
// dir/name.xlsx and returns the resolved path. An empty sheet list, a
// sheet with no columns, or a duplicate sheet name returns ErrSchema.
func SaveXLSX(sheets []Sheet, dir, name string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook needs at least one sheet", ErrSchema)
	}
	path := Resolve(dir, name, XLSX)
	err := writeFile(path, func(w io.Writer) error {
		wb := excelize.NewFile()
		defer wb.Close()
		seen := make(map[string]bool, len(sheets))
		for i, sheet := range sheets {
			if sheet.Data == nil || len(sheet.Data.cols) == 0 {
				return fmt.Errorf("%w: sheet %d has no columns", ErrSchema, i)
			}
			sheetName := sheet.Name
			if sheetName == "" {
				sheetName = fmt.Sprintf("Sheet%d", i+1)
			}
			// NewSheet returns the existing index for a known name, which
			// would silently merge two sheets into one.
			if seen[sheetName] {
				return fmt.Errorf("%w: duplicate sheet %q", ErrSchema, sheetName)
			}
			seen[sheetName] = true
			if i == 0 {
				if err := wb.SetSheetName("Sheet1", sheetName); err != nil {
					return fmt.Errorf("%w: %v", ErrSerialize, err)
				}
			} else if _, err := wb.NewSheet(sheetName); err != nil {
				return fmt.Errorf("%w: %v", ErrSerialize, err)
			}
			if err := writeSheet(wb, sheetName, sheet); err != nil {
				return err
			}
		}
		return wb.Write(w)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func writeSheet(wb *excelize.File, sheetName string, sheet Sheet) error {
	rowNum := 1
	if !sheet.NoHeader {
		header := make([]any, len(sheet.Data.cols))
		for j, col := range sheet.Data.cols {
			header[j] = col
		}
		if err := setRow(wb, sheetName, rowNum, header); err != nil {
			return err
		}
		rowNum++
	}
	for _, row := range sheet.Data.rows {
		if err := setRow(wb, sheetName, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}

func setRow(wb *excelize.File, sheetName string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if err := wb.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return nil
}

// LoadXLSX reads one worksheet into a dataset, with the first row as the
// header. An empty sheet name selects the first worksheet; a named sheet
// that does not exist returns ErrNotFound, as does a missing path.
// Malformed workbooks return ErrParse. Cells get the same type inference
// as [LoadCSV].
func LoadXLSX(path, sheet string) (*Dataset, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	defer wb.Close()

	names := wb.GetSheetList()
	if sheet == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: %s: workbook has no sheets", ErrParse, path)
		}
		sheet = names[0]
	} else if idx, err := wb.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s: sheet %q", ErrNotFound, path, sheet)
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrParse, path)
	}
	ds := &Dataset{cols: rows[0]}
	for _, record := range rows[1:] {
		// Trailing empty cells are trimmed by the reader; pad back out.
		row := make([]any, len(ds.cols))
		for j := range ds.cols {
			if j < len(record) {
				row[j] = inferCell(record[j])
			}
		}
		ds.rows = append(ds.rows, row)
	}
	return ds, nil
}
