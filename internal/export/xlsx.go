package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/username/week-parity/internal/academic"
	"github.com/username/week-parity/pkg/dateutil"
)

const (
	xlsxSheetName    = "Четность недель"
	xlsxHeaderRow    = 2
	xlsxFirstDataRow = 3
	currentWeekFill  = "#FFEB3B"
)

// WriteXLSX writes the calendar as a single-sheet workbook with the current week highlighted
func WriteXLSX(w io.Writer, cal *academic.Calendar) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", xlsxSheetName)

	f.SetColWidth(xlsxSheetName, "A", "A", 14)
	f.SetColWidth(xlsxSheetName, "B", "C", 16)
	f.SetColWidth(xlsxSheetName, "D", "D", 14)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	currentStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{currentWeekFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create highlight style: %w", err)
	}

	// Title row
	f.SetCellValue(xlsxSheetName, "A1", fmt.Sprintf("Учебный год %s", cal.Label()))
	f.MergeCell(xlsxSheetName, "A1", "D1")
	f.SetCellStyle(xlsxSheetName, "A1", "A1", headerStyle)

	// Header
	header := make([]interface{}, len(csvHeader))
	for i, name := range csvHeader {
		header[i] = name
	}
	headerCell := cell("A", xlsxHeaderRow)
	if err := f.SetSheetRow(xlsxSheetName, headerCell, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	f.SetCellStyle(xlsxSheetName, headerCell, cell("D", xlsxHeaderRow), headerStyle)

	// Data rows
	for i, week := range cal.Weeks {
		row := xlsxFirstDataRow + i
		values := []interface{}{
			week.Number,
			dateutil.FormatRU(week.Start),
			dateutil.FormatRU(week.End),
			week.Parity.String(),
		}
		if err := f.SetSheetRow(xlsxSheetName, cell("A", row), &values); err != nil {
			return fmt.Errorf("failed to write week %d: %w", week.Number, err)
		}
		if week.IsCurrent {
			f.SetCellStyle(xlsxSheetName, cell("A", row), cell("D", row), currentStyle)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
