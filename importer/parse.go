package importer

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// minCells is the smallest number of cells a row needs to survive parsing.
// It drops the blank line most exports end with.
const minCells = 2

// Parse splits raw CSV text into rows of trimmed cells. Lines are split on
// "\n" and cells on ","; quoted fields are not interpreted. Rows with fewer
// than two cells are discarded. The first returned row is the header.
func Parse(text string) [][]string {
	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := strings.Split(line, ",")
		for i, c := range cells {
			cells[i] = strings.TrimSpace(c)
		}
		if len(cells) < minCells {
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

// ReadWorkbook reads the first sheet of an .xlsx workbook into rows, with the
// same trimming and short-row rules as Parse.
func ReadWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Error closing excel file", "error", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file does not contain any sheets")
	}

	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	rows := make([][]string, 0, len(raw))
	for _, row := range raw {
		if len(row) < minCells {
			continue
		}
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.TrimSpace(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// ReadFile turns an uploaded file into raw rows, choosing the workbook reader
// for .xlsx names and the CSV splitter for everything else.
func ReadFile(filename string, data []byte) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ReadWorkbook(bytes.NewReader(data))
	}
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}
