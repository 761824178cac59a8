package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
	"bitbucket.org/mmdatafocus/assetseed_backend/workflow"
)

const metaSheetName = "Meta"

// WriteWorkbook writes the whole dataset as one workbook: a Meta sheet
// identifying the run, then one sheet per ledger.
func WriteWorkbook(res *workflow.Result, meta WorkbookMeta, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeMetaSheet(f, res, meta); err != nil {
		return err
	}

	for _, sheet := range ledgerSheets(res) {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}
		if err := writeSheetRow(f, sheet.Name, 1, sheet.Headers); err != nil {
			return err
		}
		for i, row := range sheet.Rows {
			if err := writeSheetRow(f, sheet.Name, i+2, row); err != nil {
				return err
			}
		}
	}

	// The workbook opens on Meta; drop excelize's default sheet.
	if idx, err := f.GetSheetIndex(metaSheetName); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WorkbookMeta is the run identity stamped into the Meta sheet.
type WorkbookMeta struct {
	Seed          int64
	ReferenceDate string
	Campus        string
}

// NewWorkbookMeta captures the config values the Meta sheet reports.
func NewWorkbookMeta(seed int64, referenceDate, campus string) WorkbookMeta {
	return WorkbookMeta{Seed: seed, ReferenceDate: referenceDate, Campus: campus}
}

func writeMetaSheet(f *excelize.File, res *workflow.Result, meta WorkbookMeta) error {
	if _, err := f.NewSheet(metaSheetName); err != nil {
		return fmt.Errorf("create sheet %s: %w", metaSheetName, err)
	}

	rows := [][]string{
		{"RunID", res.RunID.String()},
		{"GeneratedAt", res.GeneratedAt.Format(utils.TimestampLayout)},
		{"Seed", fmt.Sprint(meta.Seed)},
		{"ReferenceDate", meta.ReferenceDate},
		{"Campus", meta.Campus},
	}
	for i, row := range rows {
		if err := writeSheetRow(f, metaSheetName, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, rowNo int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return fmt.Errorf("resolve cell for %s row %d: %w", sheet, rowNo, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowNo, err)
	}
	return nil
}
