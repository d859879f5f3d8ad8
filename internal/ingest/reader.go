package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"profitlens/internal"
)

type Options struct {
	// DataSheet is the preferred 0-based sheet index for xlsx exports; falls
	// back to the first sheet when out of range.
	DataSheet int
	// HeaderRow is the preferred 1-based header row for xlsx exports; falls
	// back to the first row when the sheet is shorter.
	HeaderRow int
}

// ReadRows parses one export file into an ordered row sequence, dispatching
// on the file extension.
func ReadRows(path string, opts Options) ([]internal.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xls":
		return readXLSX(path, opts)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

func readCSV(path string) ([]internal.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows := []internal.RawRow{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if row := rowFromRecord(header, record); row != nil {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func readXLSX(path string, opts Options) ([]internal.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}
	sheetIdx := opts.DataSheet
	if sheetIdx < 0 || sheetIdx >= len(sheets) {
		sheetIdx = 0
	}

	all, err := f.GetRows(sheets[sheetIdx])
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	headerIdx := opts.HeaderRow - 1
	if headerIdx < 0 || headerIdx >= len(all) {
		headerIdx = 0
	}
	header := all[headerIdx]

	rows := []internal.RawRow{}
	for _, record := range all[headerIdx+1:] {
		if row := rowFromRecord(header, record); row != nil {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// rowFromRecord zips a header onto one record; short records read as blanks.
// Fully blank rows are dropped.
func rowFromRecord(header, record []string) internal.RawRow {
	row := internal.RawRow{}
	empty := true
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		value := ""
		if i < len(record) {
			value = record[i]
		}
		if strings.TrimSpace(value) != "" {
			empty = false
		}
		row[col] = value
	}
	if empty {
		return nil
	}
	return row
}
