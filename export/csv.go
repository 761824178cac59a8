package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"bitbucket.org/mmdatafocus/assetseed_backend/workflow"
)

// WriteCSVDir writes one CSV file per ledger into dir, creating it as needed.
// Every file carries its header row even when the ledger is empty.
func WriteCSVDir(res *workflow.Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	for _, sheet := range ledgerSheets(res) {
		if err := writeCSVFile(filepath.Join(dir, sheet.FileName), sheet); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFile(path string, sheet ledgerSheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(sheet.Headers); err != nil {
		return fmt.Errorf("write %s header: %w", path, err)
	}
	if err := w.WriteAll(sheet.Rows); err != nil {
		return fmt.Errorf("write %s rows: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
