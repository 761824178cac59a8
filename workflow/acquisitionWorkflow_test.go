package workflow

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testMasterData(t *testing.T) ([]models.CatalogueItem, []models.Department) {
	t.Helper()
	items, err := models.ResolveCatalogue(models.DefaultCatalogue)
	if err != nil {
		t.Fatalf("ResolveCatalogue: %v", err)
	}
	depts, err := models.ResolveDepartments(models.DefaultDepartments)
	if err != nil {
		t.Fatalf("ResolveDepartments: %v", err)
	}
	return items, depts
}

func findItem(t *testing.T, items []models.CatalogueItem, displayName string) models.CatalogueItem {
	t.Helper()
	for _, item := range items {
		if item.DisplayName == displayName {
			return item
		}
	}
	t.Fatalf("item %q not in catalogue", displayName)
	return models.CatalogueItem{}
}

func findDept(t *testing.T, depts []models.Department, code string) models.Department {
	t.Helper()
	for _, d := range depts {
		if d.Code == code {
			return d
		}
	}
	t.Fatalf("department %q not in registry", code)
	return models.Department{}
}

func TestTargetQuantity_CoreITNonEngineering(t *testing.T) {
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(1), testLogger())

	laptop := findItem(t, items, "노트북컴퓨터")
	facilities := findDept(t, depts, "A351") // scale 1.0, not engineering

	// Non-engineering quota: base 20..40 × scale 1.0 × 0.6 → [12, 24].
	for i := 0; i < 500; i++ {
		q := g.targetQuantity(laptop, facilities)
		if q < 12 || q > 24 {
			t.Fatalf("core-IT quota %d outside [12,24]", q)
		}
	}
}

func TestTargetQuantity_EngineeringMultiplier(t *testing.T) {
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(1), testLogger())

	laptop := findItem(t, items, "노트북컴퓨터")
	software := findDept(t, depts, "C354") // scale 1.8, engineering

	// Engineering quota: 20..40 × 1.8 × 1.5 → [54, 108].
	for i := 0; i < 500; i++ {
		q := g.targetQuantity(laptop, software)
		if q < 54 || q > 108 {
			t.Fatalf("engineering core-IT quota %d outside [54,108]", q)
		}
	}
}

func TestUnitPrice_BulkDiscountAndJitterBounds(t *testing.T) {
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(1), testLogger())

	laptop := findItem(t, items, "노트북컴퓨터")
	base, _ := laptop.BaseUnitPrice.Float64()
	inflation := 1.0 + cfg.InflationYearlyRate*float64(2018-cfg.InflationBaseYear)

	// Bulk quantity: discounted band, floored down by up to 1,000.
	lo := base * inflation * (1 - cfg.BulkDiscountRate) * cfg.PriceJitterLow
	hi := base * inflation * (1 - cfg.BulkDiscountRate) * cfg.PriceJitterHigh
	for i := 0; i < 500; i++ {
		p, _ := g.unitPrice(laptop, 2018, 12).Float64()
		if p < lo-1000 || p > hi {
			t.Fatalf("bulk unit price %.0f outside [%.0f,%.0f]", p, lo-1000, hi)
		}
		if int64(p)%1000 != 0 {
			t.Fatalf("unit price %.0f not floored to 1,000", p)
		}
	}

	// Single quantity: no discount, so strictly above the discounted ceiling
	// is possible; just assert the undiscounted band.
	lo = base * inflation * cfg.PriceJitterLow
	hi = base * inflation * cfg.PriceJitterHigh
	for i := 0; i < 500; i++ {
		p, _ := g.unitPrice(laptop, 2018, 1).Float64()
		if p < lo-1000 || p > hi {
			t.Fatalf("single unit price %.0f outside [%.0f,%.0f]", p, lo-1000, hi)
		}
	}
}

func TestGenerate_LedgerInvariants(t *testing.T) {
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(cfg.Seed), testLogger())

	batches := g.Generate()
	if len(batches) == 0 {
		t.Fatal("empty acquisition ledger")
	}

	for i, b := range batches {
		if expected := b.UnitPrice.Mul(decimal.NewFromInt(int64(b.Quantity))); !b.TotalAmount.Equal(expected) {
			t.Fatalf("batch %d: total %s != unit %s × qty %d", i, b.TotalAmount, b.UnitPrice, b.Quantity)
		}
		if b.AcquisitionDate.After(cfg.Today) {
			t.Fatalf("batch %d: acquisition date %v past reference date", i, b.AcquisitionDate)
		}
		if b.ConfirmationDate != nil && b.ConfirmationDate.After(cfg.Today) {
			t.Fatalf("batch %d: confirmation date %v past reference date", i, *b.ConfirmationDate)
		}
		switch b.ApprovalStatus {
		case models.ApprovalStatusConfirmed:
			if b.ConfirmationDate == nil {
				t.Fatalf("batch %d: confirmed without confirmation date", i)
			}
			if b.ConfirmationDate.Before(b.AcquisitionDate) {
				t.Fatalf("batch %d: confirmation %v precedes acquisition %v", i, *b.ConfirmationDate, b.AcquisitionDate)
			}
		case models.ApprovalStatusRejected:
			if b.ConfirmationDate != nil {
				t.Fatalf("batch %d: rejected batch carries a confirmation date", i)
			}
			if b.Remark == "" {
				t.Fatalf("batch %d: rejected batch has no rejection reason", i)
			}
		}
		if b.ApprovalStatus == models.ApprovalStatusPending && b.AcquisitionDate.Before(cfg.RecentPendingCutoff) {
			t.Fatalf("batch %d: pending purchase dated %v, before cutoff %v", i, b.AcquisitionDate, cfg.RecentPendingCutoff)
		}
	}
}

func TestGenerate_BulkBatchesSized(t *testing.T) {
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(cfg.Seed), testLogger())

	sawBulk := false
	for _, b := range g.Generate() {
		if !b.IsBulk {
			continue
		}
		sawBulk = true
		if b.Quantity < 10 || b.Quantity > 20 {
			t.Fatalf("bulk batch quantity %d outside [10,20]", b.Quantity)
		}
	}
	if !sawBulk {
		t.Fatal("no bulk batch generated with the default seed")
	}
}
