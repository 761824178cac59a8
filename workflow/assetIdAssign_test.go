package workflow

import (
	"math/rand"
	"regexp"
	"sort"
	"testing"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
)

var assetIDPattern = regexp.MustCompile(`^M(\d{4})(\d{5})$`)

func generateUnits(t *testing.T) []models.AssetUnit {
	t.Helper()
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(cfg.Seed), testLogger())
	units := ExpandConfirmedBatches(g.Generate())
	if len(units) == 0 {
		t.Fatal("no units expanded from confirmed batches")
	}
	return units
}

func TestExpandConfirmedBatches_OnlyConfirmed(t *testing.T) {
	items, depts := testMasterData(t)
	cfg := config.Default()
	g := NewAcquisitionGenerator(cfg, items, depts, NewRand(cfg.Seed), testLogger())
	batches := g.Generate()

	confirmedQty := 0
	for _, b := range batches {
		if b.Confirmed() {
			confirmedQty += b.Quantity
		}
	}

	units := ExpandConfirmedBatches(batches)
	if len(units) != confirmedQty {
		t.Fatalf("expected %d units from confirmed quantities, got %d", confirmedQty, len(units))
	}
	for _, u := range units {
		if u.ApprovalStatus != models.ApprovalStatusConfirmed {
			t.Fatalf("unit expanded from non-confirmed batch: %s", u.ApprovalStatus)
		}
		if u.Status != models.AssetStatusOperating || u.Condition != models.ConditionNew {
			t.Fatalf("fresh unit must start Operating/New, got %s/%s", u.Status, u.Condition)
		}
	}
}

func TestAssignAssetIDs_FormatAndContiguity(t *testing.T) {
	units := generateUnits(t)
	AssignAssetIDs(units)

	seqsByYear := map[string][]int{}
	for _, u := range units {
		m := assetIDPattern.FindStringSubmatch(u.AssetID)
		if m == nil {
			t.Fatalf("asset id %q does not match M<year><5-digit seq>", u.AssetID)
		}
		if m[1] != u.AcquisitionDate.Format("2006") {
			t.Fatalf("asset id %q year does not match acquisition date %v", u.AssetID, u.AcquisitionDate)
		}
		seq := 0
		for _, c := range m[2] {
			seq = seq*10 + int(c-'0')
		}
		seqsByYear[m[1]] = append(seqsByYear[m[1]], seq)
	}

	for year, seqs := range seqsByYear {
		sort.Ints(seqs)
		for i, s := range seqs {
			if s != i+1 {
				t.Fatalf("year %s sequences not contiguous from 1: %v...", year, seqs[:i+1])
			}
		}
	}
}

func TestAssignAssetIDs_ShuffleInvariant(t *testing.T) {
	units := generateUnits(t)

	shuffled := make([]models.AssetUnit, len(units))
	copy(shuffled, units)
	rand.New(rand.NewSource(99)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	AssignAssetIDs(units)
	AssignAssetIDs(shuffled)

	// The id→content mapping must be identical regardless of input order.
	byID := map[string]string{}
	for i := range units {
		byID[units[i].AssetID] = rowDigest(units[i])
	}
	for i := range shuffled {
		if byID[shuffled[i].AssetID] != rowDigest(shuffled[i]) {
			t.Fatalf("asset id %s bound to different content after shuffle", shuffled[i].AssetID)
		}
	}
}
