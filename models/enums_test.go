package models

import "testing"

func TestAssetConditionGood(t *testing.T) {
	good := []AssetCondition{ConditionNew, ConditionSecondHand}
	bad := []AssetCondition{ConditionNeedsRepair, ConditionScrap, ConditionUnusable}

	for _, c := range good {
		if !c.Good() {
			t.Fatalf("condition %s should count as good", c)
		}
	}
	for _, c := range bad {
		if c.Good() {
			t.Fatalf("condition %s should not count as good", c)
		}
	}
}

func TestDisposalMethodLabel(t *testing.T) {
	cases := map[DisposalMethod]string{
		DisposalSale:  "매각",
		DisposalScrap: "폐기",
		DisposalLoss:  "멸실",
		DisposalTheft: "도난",
	}
	for m, expected := range cases {
		if got := m.Label(); got != expected {
			t.Fatalf("Label(%s) expected %s, got %s", m, expected, got)
		}
	}
}

func TestEnumValueRejectsInvalid(t *testing.T) {
	if _, err := ApprovalStatus("Approved").Value(); err == nil {
		t.Fatal("expected error for unknown approval status")
	}
	if _, err := AssetStatus("Scrapped").Value(); err == nil {
		t.Fatal("expected error for unknown asset status")
	}
	if _, err := AssetStatusNone.Value(); err != nil {
		t.Fatalf("sentinel status must be valuable: %v", err)
	}
}

func TestEnumScanRoundTrip(t *testing.T) {
	v, err := DisposalSale.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var m DisposalMethod
	if err := m.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m != DisposalSale {
		t.Fatalf("round trip expected %s, got %s", DisposalSale, m)
	}
}
