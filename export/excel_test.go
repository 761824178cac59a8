package export

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/assetseed_backend/workflow"
)

func TestWriteWorkbook_SheetsAndMeta(t *testing.T) {
	res := &workflow.Result{RunID: uuid.New()}
	path := filepath.Join(t.TempDir(), "lifecycle.xlsx")

	meta := NewWorkbookMeta(42, "2026-02-10", "ERICA")
	if err := WriteWorkbook(res, meta, path); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := map[string]bool{}
	for _, name := range f.GetSheetList() {
		sheets[name] = true
	}
	expected := []string{
		"Meta", "AcquisitionLedger", "OperationMaster", "TransferRequests",
		"ReturnRequests", "DisuseRequests", "DisposalRequests", "HistoryLedger",
	}
	for _, name := range expected {
		if !sheets[name] {
			t.Fatalf("workbook missing sheet %s (has %v)", name, f.GetSheetList())
		}
	}
	if sheets["Sheet1"] {
		t.Fatal("default Sheet1 was not removed")
	}

	seed, err := f.GetCellValue("Meta", "B3")
	if err != nil {
		t.Fatalf("read meta seed: %v", err)
	}
	if seed != "42" {
		t.Fatalf("meta seed cell expected 42, got %q", seed)
	}

	// Every ledger sheet must carry its header row even though the dataset
	// is empty.
	rows, err := f.GetRows("HistoryLedger")
	if err != nil {
		t.Fatalf("read history sheet: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "자산번호" {
		t.Fatalf("history sheet header missing: %v", rows)
	}
}
