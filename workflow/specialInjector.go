package workflow

import (
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
	"github.com/shopspring/decimal"
)

// The enterprise-server fleet is scripted, not simulated: it guarantees the
// output contains at least one fully deterministic, easily verifiable
// lifecycle that does not depend on the random distributions.

// Servers were introduced once, somewhere in this narrow window.
var (
	serverWindowFrom = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	serverWindowTo   = time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Servers acquired before this year are aged out at their depreciation
// horizon; later ones keep operating indefinitely.
const serverRetireCutoffYear = 2020

// injectServerBatches emits the scripted server acquisition rows: fixed
// allocations per department, one unit per row, always confirmed.
func (g *AcquisitionGenerator) injectServerBatches() []models.AcquisitionBatch {
	item := models.ServerItem

	deptByCode := make(map[string]models.Department, len(g.depts))
	for _, d := range g.depts {
		deptByCode[d.Code] = d
	}

	var out []models.AcquisitionBatch
	for _, alloc := range models.DefaultServerAllocations {
		dept, ok := deptByCode[alloc.DepartmentCode]
		if !ok {
			continue
		}
		for i := 0; i < alloc.Quantity; i++ {
			acqDate := g.rng.DateBetween(serverWindowFrom, serverWindowTo)
			confirm := utils.ClampDate(utils.AddDays(acqDate, g.rng.IntBetween(14, 45)), g.cfg.Today)

			out = append(out, models.AcquisitionBatch{
				CatalogueNumber:    item.CatalogueNumber(),
				DisplayName:        item.DisplayName,
				ClassificationCode: item.ClassificationCode,
				IdentifierCode:     item.IdentifierCode,
				ModelDescription:   item.ModelDescription,
				DepreciationYears:  item.DepreciationYears,
				Campus:             g.cfg.Campus,
				DepartmentCode:     dept.Code,
				DepartmentName:     dept.Name,
				AcquisitionDate:    acqDate,
				Quantity:           1,
				UnitPrice:          item.BaseUnitPrice,
				TotalAmount:        item.BaseUnitPrice.Mul(decimal.NewFromInt(1)),
				ApprovalStatus:     models.ApprovalStatusConfirmed,
				ConfirmationDate:   &confirm,
				AcquisitionMethod:  models.AcquisitionSelfPurchased,
				Remark:             fmt.Sprintf("%s 메인 서버 구축", dept.Name),
				IsBulk:             false,
				Category:           models.CategoryEnterpriseServer,
			})
		}
	}
	return out
}

// simulateServerUnit replaces the stochastic loop for server units. Old
// servers age deterministically into Disuse then Disposal exactly at the
// depreciation horizon; newer ones just keep operating.
func (s *lifecycleSim) simulateServerUnit(unit models.AssetUnit, rng *Rand) unitResult {
	res := newUnitResult(unit)
	st := res.initialState(s)

	// Management tags are mandatory on server hardware.
	res.Unit.TagStatus = models.TagPrinted

	opStart := utils.ClampDate(utils.AddDays(st.cursor, rng.IntBetween(1, 7)), s.cfg.Today)
	st.lastOpStart = opStart
	res.Unit.LastOperationStart = opStart

	res.appendAcquisitionHistory(st.cursor)

	if unit.AcquisitionDate.Year() >= serverRetireCutoffYear {
		return res
	}

	horizonDays := unit.DepreciationYears*365 + rng.IntBetween(0, 60)
	disuseDate := utils.ClampDate(utils.AddDays(unit.AcquisitionDate, horizonDays), s.cfg.Today)

	res.Disuses = append(res.Disuses, models.DisuseRequest{
		DisuseDate:        disuseDate,
		ConfirmedDate:     &disuseDate,
		RegistrarID:       models.StaffActor.ID,
		RegistrarName:     models.StaffActor.Name,
		ApprovalStatus:    models.ApprovalStatusConfirmed,
		CatalogueNumber:   unit.CatalogueNumber,
		DisplayName:       unit.DisplayName,
		AssetID:           unit.AssetID,
		AcquisitionDate:   unit.AcquisitionDate,
		Amount:            unit.Amount,
		CleanupDate:       unit.CleanupDate,
		DepreciationYears: unit.DepreciationYears,
		DepartmentName:    unit.DepartmentName,
		DisplayedStatus:   models.AssetStatusDisused,
		Condition:         models.ConditionScrap,
		Reason:            models.ServerDisuseReason,
	})
	res.Unit.Status = models.AssetStatusDisused
	res.Unit.Condition = models.ConditionScrap
	res.appendHistory(disuseDate, models.AssetStatusOperating, models.AssetStatusDisused,
		models.ServerDisuseReason, models.AdminActor)

	disposalDate := utils.ClampDate(utils.AddDays(disuseDate, rng.IntBetween(30, 90)), s.cfg.Today)
	res.Disposals = append(res.Disposals, models.DisposalRequest{
		DisposalDate:      disposalDate,
		ConfirmedDate:     &disposalDate,
		DisuseDate:        disuseDate,
		Method:            models.DisposalSale,
		RegistrarID:       models.StaffActor.ID,
		RegistrarName:     models.StaffActor.Name,
		ApprovalStatus:    models.ApprovalStatusConfirmed,
		CatalogueNumber:   unit.CatalogueNumber,
		DisplayName:       unit.DisplayName,
		AssetID:           unit.AssetID,
		AcquisitionDate:   unit.AcquisitionDate,
		Amount:            unit.Amount,
		CleanupDate:       unit.CleanupDate,
		DepreciationYears: unit.DepreciationYears,
		Condition:         models.ConditionScrap,
		Reason:            models.ServerDisuseReason,
	})
	res.Unit.Status = models.AssetStatusDisposed
	res.appendHistory(disposalDate, models.AssetStatusDisused, models.AssetStatusDisposed,
		fmt.Sprintf("%s 완료", models.DisposalSale.Label()), models.AdminActor)

	return res
}
