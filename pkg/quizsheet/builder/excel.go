package builder

import (
	"fmt"
	"strconv"

	"github.com/edutools/quizsheet-go/pkg/quizsheet/models"
	"github.com/xuri/excelize/v2"
)

// Serialize writes the table to an xlsx workbook: one header row with
// the schema's exact column names, then one row per question in input
// order. An empty table is rejected with a SerializationError rather
// than producing a header-only file.
func Serialize(table models.Table, schema Schema) ([]byte, error) {
	if len(table.Rows) == 0 {
		return nil, NewSerializationError(ErrNoQuestions)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := schema.SheetName
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, NewSerializationError(fmt.Errorf("rename sheet: %w", err))
		}
	}

	for col, name := range table.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, NewSerializationError(err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, NewSerializationError(err)
		}
	}

	for rowIdx, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, NewSerializationError(err)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				return nil, NewSerializationError(err)
			}
		}
	}

	for col, width := range schema.ColumnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, NewSerializationError(err)
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return nil, NewSerializationError(err)
		}
	}

	// Wrap the data region so long question and choice texts stay
	// readable in the importer's review screen.
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, NewSerializationError(err)
	}
	lastCell, err := excelize.CoordinatesToCellName(len(table.Header), len(table.Rows)+1)
	if err != nil {
		return nil, NewSerializationError(err)
	}
	if err := f.SetCellStyle(sheet, "A2", lastCell, style); err != nil {
		return nil, NewSerializationError(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, NewSerializationError(err)
	}
	return buf.Bytes(), nil
}

// cellValue converts a string cell to a typed value so numeric columns
// (correct index, time limit, points) come out as numbers.
// Returns int64 for integers, float64 for decimals, or the original
// string.
func cellValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
