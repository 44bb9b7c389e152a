package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/saipranav0521/student-attendance-analyzer/internal/attendance"
)

// SheetName is the name of the single worksheet in an exported report.
const SheetName = "Attendance"

// WriteXLSX writes an analysis result as a one-sheet workbook: a header row,
// one row per subject, totals, and the status plus the action sentence.
func WriteXLSX(w io.Writer, res *attendance.Result) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Subject", "Classes Held", "Classes Attended", "Percentage"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	rowNum := 2
	for _, sub := range res.Subjects {
		row := []interface{}{sub.Name, sub.Held, sub.Attended, fmt.Sprintf("%.2f%%", sub.Percentage)}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return fmt.Errorf("subject row cell: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write subject row: %w", err)
		}
		rowNum++
	}

	totals := []interface{}{
		"TOTAL",
		res.TotalHeld,
		res.TotalAttended,
		fmt.Sprintf("%.2f%%", res.OverallPercentage),
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("totals row cell: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &totals); err != nil {
		return fmt.Errorf("write totals row: %w", err)
	}
	rowNum += 2

	status := []interface{}{"Status", res.Status.DisplayName()}
	cell, err = excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("status row cell: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &status); err != nil {
		return fmt.Errorf("write status row: %w", err)
	}
	rowNum++

	action := []interface{}{"Action", fmt.Sprintf("%d %s", res.ActionNumber, res.ActionLabel)}
	cell, err = excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("action row cell: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &action); err != nil {
		return fmt.Errorf("write action row: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
