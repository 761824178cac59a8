package workflow

import (
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AcquisitionGenerator produces the acquisition ledger: for every
// (department, item) pair it decides a target owned quantity, splits it into
// purchase batches and walks each batch through overlapping replacement
// generations until the reference date.
type AcquisitionGenerator struct {
	cfg   *config.RunConfig
	items []models.CatalogueItem
	depts []models.Department
	rng   *Rand
	log   *logrus.Logger
}

func NewAcquisitionGenerator(cfg *config.RunConfig, items []models.CatalogueItem, depts []models.Department, rng *Rand, log *logrus.Logger) *AcquisitionGenerator {
	return &AcquisitionGenerator{cfg: cfg, items: items, depts: depts, rng: rng, log: log}
}

// Generate builds the full acquisition ledger, generic items first, then the
// scripted enterprise-server rows.
func (g *AcquisitionGenerator) Generate() []models.AcquisitionBatch {
	var batches []models.AcquisitionBatch

	for _, dept := range g.depts {
		for _, item := range g.items {
			if item.Category == models.CategoryEnterpriseServer {
				continue
			}
			batches = append(batches, g.generatePair(item, dept)...)
		}
	}

	batches = append(batches, g.injectServerBatches()...)

	g.log.WithFields(logrus.Fields{
		"module":  "workflow",
		"batches": len(batches),
	}).Info("acquisition ledger generated")
	return batches
}

// generatePair fills one department/item quota with purchase batches, each
// batch spawning a replacement chain across the historical window.
func (g *AcquisitionGenerator) generatePair(item models.CatalogueItem, dept models.Department) []models.AcquisitionBatch {
	var out []models.AcquisitionBatch

	remaining := g.targetQuantity(item, dept)
	for remaining > 0 {
		size, isBulk := g.batchSize(item, remaining)
		if size > remaining {
			size = remaining
		}

		date := g.randomStartDate()
		out = append(out, g.replacementChain(item, dept, date, size, isBulk)...)

		remaining -= size
	}
	return out
}

// targetQuantity is the total number of units this department should own of
// this item, before the purchase history is synthesized.
func (g *AcquisitionGenerator) targetQuantity(item models.CatalogueItem, dept models.Department) int {
	switch item.Category {
	case models.CategoryCoreIT:
		multiplier := 0.6
		if dept.IsEngineering {
			multiplier = 1.5
		}
		return int(float64(g.rng.IntBetween(20, 40)) * dept.ScaleWeight * multiplier)
	case models.CategoryPeripheral:
		return int(float64(g.rng.IntBetween(2, 4)) * dept.ScaleWeight)
	case models.CategoryNetworkInfra:
		if dept.IsHeavyInfra {
			return int(float64(g.rng.IntBetween(3, 8)) * dept.ScaleWeight)
		}
		return g.rng.IntBetween(0, 1)
	case models.CategoryBulkFurniture:
		return int(float64(g.rng.IntBetween(30, 60)) * dept.ScaleWeight)
	case models.CategoryInstructional:
		return int(float64(g.rng.IntBetween(1, 3)) * dept.ScaleWeight)
	default:
		return int(float64(g.rng.IntBetween(0, 2)) * dept.ScaleWeight)
	}
}

// batchSize decides how many units one purchase covers. Bulk-eligible items
// (PCs, furniture) are bought classroom-sized with a fixed probability when
// enough quota remains.
func (g *AcquisitionGenerator) batchSize(item models.CatalogueItem, remaining int) (int, bool) {
	if item.BulkEligible {
		if remaining >= g.cfg.BulkQuantityThreshold && g.rng.Chance(g.cfg.ProbBulkPurchase) {
			return g.rng.IntBetween(10, 20), true
		}
		return g.rng.IntBetween(1, 3), false
	}
	if item.Category == models.CategoryNetworkInfra {
		return g.rng.IntBetween(1, 4), false
	}
	return 1, false
}

func (g *AcquisitionGenerator) randomStartDate() time.Time {
	year := g.rng.IntBetween(g.cfg.AcquisitionYearFrom, g.cfg.AcquisitionYearTo)
	month := g.rng.IntBetween(1, 12)
	day := g.rng.IntBetween(1, 28)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// replacementChain emits one batch row per replacement generation: the unit
// cohort bought at date is repurchased every depreciation-period-plus-slack
// until the chain runs past the reference date. Rejections emit their own row
// and re-attempt a couple of weeks later as approved, so no purchase attempt
// is left permanently unresolved.
func (g *AcquisitionGenerator) replacementChain(item models.CatalogueItem, dept models.Department, date time.Time, size int, isBulk bool) []models.AcquisitionBatch {
	var out []models.AcquisitionBatch

	for date.Before(g.cfg.Today) {
		status := drawApproval(g.rng, g.cfg.ApprovalAcquisition)

		// Old pending purchase paperwork is implausible seed data.
		if status == models.ApprovalStatusPending && date.Before(g.cfg.RecentPendingCutoff) {
			status = models.ApprovalStatusConfirmed
		}

		if status == models.ApprovalStatusRejected {
			out = append(out, g.buildBatch(item, dept, date, size, isBulk, models.ApprovalStatusRejected, nil))
			date = utils.ClampDate(utils.AddDays(date, g.rng.IntBetween(14, 60)), g.cfg.Today)
			status = models.ApprovalStatusConfirmed
		}

		var confirm *time.Time
		if status == models.ApprovalStatusConfirmed {
			delay := g.rng.IntBetween(3, 7)
			if isBulk {
				// Bulk deliveries take longer to inspect.
				delay = g.rng.IntBetween(7, 20)
			}
			c := utils.ClampDate(utils.AddDays(date, delay), g.cfg.Today)
			confirm = &c
		}
		out = append(out, g.buildBatch(item, dept, date, size, isBulk, status, confirm))

		usageYears := float64(item.DepreciationYears) + g.rng.Uniform(0, 2)
		date = utils.AddYearsDays(date, usageYears, g.rng.IntBetween(-30, 30))
	}
	return out
}

func (g *AcquisitionGenerator) buildBatch(item models.CatalogueItem, dept models.Department, date time.Time, qty int, isBulk bool, status models.ApprovalStatus, confirm *time.Time) models.AcquisitionBatch {
	unitPrice := g.unitPrice(item, date.Year(), qty)
	return models.AcquisitionBatch{
		CatalogueNumber:    item.CatalogueNumber(),
		DisplayName:        item.DisplayName,
		ClassificationCode: item.ClassificationCode,
		IdentifierCode:     item.IdentifierCode,
		ModelDescription:   item.ModelDescription,
		DepreciationYears:  item.DepreciationYears,
		Campus:             g.cfg.Campus,
		DepartmentCode:     dept.Code,
		DepartmentName:     dept.Name,
		AcquisitionDate:    date,
		Quantity:           qty,
		UnitPrice:          unitPrice,
		TotalAmount:        unitPrice.Mul(decimal.NewFromInt(int64(qty))),
		ApprovalStatus:     status,
		ConfirmationDate:   confirm,
		AcquisitionMethod:  g.drawAcquisitionMethod(),
		Remark:             g.remark(item, status, isBulk),
		IsBulk:             isBulk,
		Category:           item.Category,
	}
}

// unitPrice applies yearly inflation since the base year, the bulk discount
// at the quantity threshold and a ±5% market jitter, then floors to the
// nearest 1,000 currency units.
func (g *AcquisitionGenerator) unitPrice(item models.CatalogueItem, year, qty int) decimal.Decimal {
	factor := 1.0 + g.cfg.InflationYearlyRate*float64(year-g.cfg.InflationBaseYear)
	if qty >= g.cfg.BulkQuantityThreshold {
		factor *= 1.0 - g.cfg.BulkDiscountRate
	}
	factor *= g.rng.Uniform(g.cfg.PriceJitterLow, g.cfg.PriceJitterHigh)
	return utils.FloorToThousand(item.BaseUnitPrice.Mul(decimal.NewFromFloat(factor)))
}

func (g *AcquisitionGenerator) drawAcquisitionMethod() models.AcquisitionMethod {
	switch g.rng.PickIndex([]float64{0.95, 0.02, 0.03}) {
	case 0:
		return models.AcquisitionSelfPurchased
	case 1:
		return models.AcquisitionSelfProduced
	default:
		return models.AcquisitionDonated
	}
}

func (g *AcquisitionGenerator) remark(item models.CatalogueItem, status models.ApprovalStatus, isBulk bool) string {
	if status == models.ApprovalStatusRejected {
		return Choice(g.rng, models.RejectionReasons)
	}
	if isBulk {
		switch item.Category {
		case models.CategoryCoreIT:
			return fmt.Sprintf("%s 환경개선 기자재 확충", Choice(g.rng, models.BulkComputingSites))
		case models.CategoryBulkFurniture:
			return models.BulkFurnitureRemark
		default:
			return models.BulkGenericRemark
		}
	}
	if g.rng.Chance(0.3) {
		if templates := models.RemarkTemplatesByItem[item.DisplayName]; len(templates) > 0 {
			return Choice(g.rng, templates)
		}
	}
	return ""
}
