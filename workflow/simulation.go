package workflow

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
)

// Result is one complete generated dataset: every ledger the exporters write.
type Result struct {
	RunID       uuid.UUID
	GeneratedAt time.Time

	Batches   []models.AcquisitionBatch
	Units     []models.AssetUnit
	Transfers []models.TransferRequest
	Returns   []models.ReturnRequest
	Disuses   []models.DisuseRequest
	Disposals []models.DisposalRequest
	History   []models.HistoryRecord
}

// RunSimulation produces the full dataset for cfg. The same cfg always yields
// an identical Result apart from RunID and GeneratedAt.
//
// Per-unit lifecycles draw from child generators keyed by (seed, asset id),
// so unit simulation order does not affect any unit's outcome.
func RunSimulation(cfg *config.RunConfig, log *logrus.Logger) (*Result, error) {
	items, err := models.ResolveCatalogue(models.DefaultCatalogue)
	if err != nil {
		config.LogError(log, "workflow", "RunSimulation", "resolve catalogue master data", nil, err)
		return nil, err
	}
	depts, err := models.ResolveDepartments(models.DefaultDepartments)
	if err != nil {
		config.LogError(log, "workflow", "RunSimulation", "resolve department registry", nil, err)
		return nil, err
	}

	rng := NewRand(cfg.Seed)

	gen := NewAcquisitionGenerator(cfg, items, depts, rng, log)
	batches := gen.Generate()

	units := ExpandConfirmedBatches(batches)
	AssignAssetIDs(units)

	allItems := append(append([]models.CatalogueItem{}, items...), models.ServerItem)
	sim := newLifecycleSim(cfg, allItems, depts)

	res := &Result{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Batches:     batches,
	}
	for _, unit := range units {
		unitRng := ChildOf(cfg.Seed, unit.AssetID)
		ur := sim.SimulateUnit(unit, unitRng)

		res.Units = append(res.Units, ur.Unit)
		res.Transfers = append(res.Transfers, ur.Transfers...)
		res.Returns = append(res.Returns, ur.Returns...)
		res.Disuses = append(res.Disuses, ur.Disuses...)
		res.Disposals = append(res.Disposals, ur.Disposals...)
		res.History = append(res.History, ur.History...)
	}

	sortLedgers(res)

	log.WithFields(logrus.Fields{
		"runId":     res.RunID,
		"seed":      cfg.Seed,
		"reference": utils.FormatDate(cfg.Today),
		"batches":   len(res.Batches),
		"units":     len(res.Units),
		"transfers": len(res.Transfers),
		"returns":   len(res.Returns),
		"disuses":   len(res.Disuses),
		"disposals": len(res.Disposals),
		"history":   len(res.History),
	}).Info("simulation finished")

	return res, nil
}

// sortLedgers fixes the presentation order of every ledger so that output is
// stable regardless of how unit results were merged. Per-asset record order
// is preserved by the secondary asset-id key plus stable sorting.
func sortLedgers(res *Result) {
	sort.SliceStable(res.Transfers, func(i, j int) bool {
		a, b := res.Transfers[i], res.Transfers[j]
		if !a.RequestDate.Equal(b.RequestDate) {
			return a.RequestDate.Before(b.RequestDate)
		}
		return a.AssetID < b.AssetID
	})
	sort.SliceStable(res.Returns, func(i, j int) bool {
		a, b := res.Returns[i], res.Returns[j]
		if !a.ReturnDate.Equal(b.ReturnDate) {
			return a.ReturnDate.Before(b.ReturnDate)
		}
		return a.AssetID < b.AssetID
	})
	sort.SliceStable(res.Disuses, func(i, j int) bool {
		a, b := res.Disuses[i], res.Disuses[j]
		if !a.DisuseDate.Equal(b.DisuseDate) {
			return a.DisuseDate.Before(b.DisuseDate)
		}
		return a.AssetID < b.AssetID
	})
	sort.SliceStable(res.Disposals, func(i, j int) bool {
		a, b := res.Disposals[i], res.Disposals[j]
		if !a.DisposalDate.Equal(b.DisposalDate) {
			return a.DisposalDate.Before(b.DisposalDate)
		}
		return a.AssetID < b.AssetID
	})
	sort.SliceStable(res.History, func(i, j int) bool {
		a, b := res.History[i], res.History[j]
		if !a.ChangeAt.Equal(b.ChangeAt) {
			return a.ChangeAt.Before(b.ChangeAt)
		}
		return a.AssetID < b.AssetID
	})
}
