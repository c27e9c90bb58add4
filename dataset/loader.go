package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadCSV reads a character-separated text file into a table. The
// delimiter is sniffed from the header line (comma, semicolon or tab).
// Compressed sources (.zip/.gz/.lz4) are unpacked on the fly. A missing
// file yields ErrSourceNotFound, a malformed one a ParseError; either
// way the returned table is empty and dependent rendering must halt.
func LoadCSV(path string) (*Table, error) {
	r, err := openSource(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewTable(), fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return NewTable(), &ParseError{Path: path, Reason: err.Error()}
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return NewTable(), &ParseError{Path: path, Reason: err.Error()}
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = sniffDelimiter(string(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return NewTable(), &ParseError{Path: path, Reason: err.Error()}
	}
	if len(records) == 0 {
		return NewTable(), &ParseError{Path: path, Reason: "no rows"}
	}
	return fromRecords(records), nil
}

// LoadExcel reads one sheet of an Excel workbook by index.
func LoadExcel(path string, sheetIndex int) (*Table, error) {
	r, err := openSource(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewTable(), fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return NewTable(), &ParseError{Path: path, Reason: err.Error()}
	}
	defer r.Close()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return NewTable(), &ParseError{Path: path, Reason: err.Error()}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheetIndex < 0 || sheetIndex >= len(sheets) {
		return NewTable(), &ParseError{
			Path:   path,
			Reason: fmt.Sprintf("sheet index %d out of range, workbook has %d sheets", sheetIndex, len(sheets)),
		}
	}
	records, err := f.GetRows(sheets[sheetIndex])
	if err != nil {
		return NewTable(), &ParseError{Path: path, Reason: err.Error()}
	}
	if len(records) == 0 {
		return NewTable(), &ParseError{Path: path, Reason: fmt.Sprintf("sheet %q is empty", sheets[sheetIndex])}
	}
	return fromRecords(records), nil
}

// fromRecords builds a table from raw records: first record is the
// header, short data rows leave trailing cells absent.
func fromRecords(records [][]string) *Table {
	t := NewTable(records[0]...)
	for _, rec := range records[1:] {
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		t.Append(row)
	}
	return t
}

// sniffDelimiter picks the separator occurring most often in the header
// line. Commas win ties.
func sniffDelimiter(data string) rune {
	header, _, _ := strings.Cut(data, "\n")
	best, bestCount := ',', strings.Count(header, ",")
	for _, d := range []rune{';', '\t'} {
		if c := strings.Count(header, string(d)); c > bestCount {
			best, bestCount = d, c
		}
	}
	return best
}
