package workflow

import (
	"testing"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
)

func TestInjectServerBatches_ScriptedRows(t *testing.T) {
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(cfg.Seed), testLogger())

	batches := g.injectServerBatches()
	if len(batches) != 3 {
		t.Fatalf("expected 3 scripted server rows (2 facilities + 1 student services), got %d", len(batches))
	}

	perDept := map[string]int{}
	for _, b := range batches {
		perDept[b.DepartmentCode]++

		if b.ApprovalStatus != models.ApprovalStatusConfirmed {
			t.Fatalf("server batch not confirmed: %s", b.ApprovalStatus)
		}
		if b.Quantity != 1 {
			t.Fatalf("server batch quantity %d, want 1", b.Quantity)
		}
		if b.AcquisitionDate.Before(serverWindowFrom) || b.AcquisitionDate.After(serverWindowTo) {
			t.Fatalf("server acquisition %v outside the 2016-2018 window", b.AcquisitionDate)
		}
		if b.ConfirmationDate == nil || b.ConfirmationDate.Before(b.AcquisitionDate) {
			t.Fatal("server batch missing a valid confirmation date")
		}
		if !b.UnitPrice.Equal(models.ServerItem.BaseUnitPrice) {
			t.Fatalf("server price %s, want the flat catalogue price %s", b.UnitPrice, models.ServerItem.BaseUnitPrice)
		}
	}
	if perDept["A351"] != 2 || perDept["A320"] != 1 {
		t.Fatalf("server allocation wrong: %v", perDept)
	}
}

func TestServerUnits_AgedFleetFullyDisposed(t *testing.T) {
	cfg := config.Default()
	res, err := RunSimulation(cfg, testLogger())
	if err != nil {
		t.Fatalf("RunSimulation: %v", err)
	}

	servers := 0
	for _, u := range res.Units {
		if u.Category != models.CategoryEnterpriseServer {
			continue
		}
		servers++

		if u.TagStatus != models.TagPrinted {
			t.Fatalf("server %s tag not printed", u.AssetID)
		}
		// The whole scripted window predates the retirement cutoff, so every
		// server ends its life sold off.
		if u.Status != models.AssetStatusDisposed {
			t.Fatalf("server %s ended %s, want Disposed", u.AssetID, u.Status)
		}

		var disuse *models.DisuseRequest
		for i := range res.Disuses {
			if res.Disuses[i].AssetID == u.AssetID {
				disuse = &res.Disuses[i]
			}
		}
		if disuse == nil || disuse.ApprovalStatus != models.ApprovalStatusConfirmed {
			t.Fatalf("server %s lacks a confirmed disuse row", u.AssetID)
		}
		if disuse.Reason != models.ServerDisuseReason {
			t.Fatalf("server %s disuse reason %q", u.AssetID, disuse.Reason)
		}

		var disposal *models.DisposalRequest
		for i := range res.Disposals {
			if res.Disposals[i].AssetID == u.AssetID {
				disposal = &res.Disposals[i]
			}
		}
		if disposal == nil || disposal.ApprovalStatus != models.ApprovalStatusConfirmed {
			t.Fatalf("server %s lacks a confirmed disposal row", u.AssetID)
		}
		if disposal.Method != models.DisposalSale {
			t.Fatalf("server %s disposed by %s, want Sale", u.AssetID, disposal.Method)
		}
		if disposal.DisposalDate.Before(disuse.DisuseDate) {
			t.Fatalf("server %s disposal precedes its disuse", u.AssetID)
		}
	}
	if servers != 3 {
		t.Fatalf("expected 3 server units, got %d", servers)
	}
}
