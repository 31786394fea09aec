// Package export renders production plans as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/normalize"
)

// ContentTypeXLSX is the media type of the exported workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName is the name of the plan worksheet.
const SheetName = "Production plan"

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

var planHeaders = []string{"Code", "Product", "Quantity", "Unit value", "Subtotal"}

// FileName returns the download name of a plan exported at t.
func FileName(t time.Time) string {
	return "production-plan-" + t.UTC().Format("20060102-150405") + ".xlsx"
}

// WritePlan writes plan as a single-sheet workbook to w: one row per entry in
// plan order, then a total row.
func WritePlan(w io.Writer, plan model.ProductionPlan) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return fmt.Errorf("amount style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	for i, h := range planHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, e := range plan.Entries {
		r := i + 2
		values := []any{e.Code, e.Name, e.Quantity, e.UnitValue, normalize.EntryValue(e)}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
		}
	}

	last := len(plan.Entries) + 1
	if len(plan.Entries) > 0 {
		from, _ := excelize.CoordinatesToCellName(3, 2)
		to, _ := excelize.CoordinatesToCellName(5, last)
		if err := f.SetCellStyle(SheetName, from, to, amountStyle); err != nil {
			return err
		}
	}

	totalRow := last + 1
	labelCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(5, totalRow)
	if err := f.SetCellValue(SheetName, labelCell, "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, totalCell, plan.TotalValue); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, labelCell, totalCell, totalStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetName, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "C", "E", 14); err != nil {
		return err
	}

	return f.Write(w)
}
