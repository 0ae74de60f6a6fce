// Package excel imports numeric columns from spreadsheet files and
// exports descriptive reports as workbooks.
package excel

import (
	"encoding/csv"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mondragon-developer/statools/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Column is a named numeric column extracted from a workbook. Cells that
// do not parse as finite numbers are skipped and counted.
type Column struct {
	Name    string
	Values  []float64
	Skipped int
}

// Workbook is the numeric view of an imported file.
type Workbook struct {
	Source  string
	Columns []Column
}

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read extracts every numeric column from the file. The first row is
// treated as the header row.
func (r *DataReader) Read() (*Workbook, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	return buildWorkbook(r.filePath, rows), nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.InvalidInput("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV file")
	}
	return rows, nil
}

// buildWorkbook coerces row-major string cells into named numeric
// columns. Columns with no numeric cells at all are dropped.
func buildWorkbook(source string, rows [][]string) *Workbook {
	wb := &Workbook{Source: source}
	if len(rows) < 2 {
		return wb
	}

	header := rows[0]
	for col, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "column_" + strconv.Itoa(col+1)
		}

		column := Column{Name: name}
		for _, row := range rows[1:] {
			if col >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				column.Skipped++
				continue
			}
			column.Values = append(column.Values, v)
		}

		if len(column.Values) > 0 {
			wb.Columns = append(wb.Columns, column)
		}
	}

	log.Printf("[DataReader] Extracted %d numeric columns from %s", len(wb.Columns), source)
	return wb
}
