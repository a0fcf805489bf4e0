package spreadsheet

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// IsSupported reports whether the file name carries a readable spreadsheet
// extension.
func IsSupported(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xls", ".xlsx":
		return true
	}
	return false
}

// ReadRows loads the first worksheet of a spreadsheet into rows of cell
// strings. Legacy .xls files go through the BIFF reader; everything else is
// treated as OOXML.
func ReadRows(r io.Reader, fileName string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if strings.ToLower(filepath.Ext(fileName)) == ".xls" {
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("failed to open xls workbook: %w", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows := workbook.ReadAllCells(100000)
		if len(rows) == 0 {
			return nil, fmt.Errorf("worksheet is empty")
		}
		return rows, nil
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}
