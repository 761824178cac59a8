package models

import (
	"fmt"
	"strings"

	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
	"github.com/shopspring/decimal"
)

// ItemCategory is the closed set of quota/behaviour classes a catalogue item
// belongs to. It is resolved exactly once when master data is loaded; the
// simulation never matches display-name substrings again.
type ItemCategory string

const (
	CategoryCoreIT           ItemCategory = "CoreITEquipment"
	CategoryPeripheral       ItemCategory = "PeripheralDevice"
	CategoryNetworkInfra     ItemCategory = "NetworkInfrastructure"
	CategoryBulkFurniture    ItemCategory = "BulkFurniture"
	CategoryInstructional    ItemCategory = "InstructionalFixture"
	CategoryEnterpriseServer ItemCategory = "EnterpriseServer"
	CategoryGeneral          ItemCategory = "GeneralEquipment"
)

// CatalogueItem is one G2B master entry. Category, Lifetime and BulkEligible
// are derived fields filled in by ResolveCatalogue.
type CatalogueItem struct {
	ClassificationCode string
	IdentifierCode     string
	DisplayName        string
	ModelDescription   string
	DepreciationYears  int
	BaseUnitPrice      decimal.Decimal

	Category     ItemCategory
	Lifetime     LifetimeStats
	BulkEligible bool
}

// CatalogueNumber is the full G2B listing number (classification + identifier).
func (c CatalogueItem) CatalogueNumber() string {
	return c.ClassificationCode + c.IdentifierCode
}

// Department is one operating department of the registry.
type Department struct {
	Code        string
	Name        string
	ScaleWeight float64

	// Derived traits, resolved at registry load.
	IsEngineering bool // software/engineering unit: higher computing quota
	IsHeavyInfra  bool // facilities/software/engineering: owns network gear
}

// Exact display names per category. The combi desk-chair item deliberately
// falls through to GeneralEquipment: its quota behaves like a catch-all item.
var categoryByDisplayName = map[string]ItemCategory{
	"노트북컴퓨터":  CategoryCoreIT,
	"데스크톱컴퓨터": CategoryCoreIT,
	"액정모니터":   CategoryCoreIT,

	"레이저프린터": CategoryPeripheral,
	"스캐너":    CategoryPeripheral,
	"다기능복사기": CategoryPeripheral,
	"공기청정기":  CategoryPeripheral,
	"세단기":    CategoryPeripheral,

	"네트워크라우터":      CategoryNetworkInfra,
	"네트워크시스템장비용랙":  CategoryNetworkInfra,
	"하드디스크드라이브":    CategoryNetworkInfra,
	"허브":           CategoryNetworkInfra,
	"플래시메모리저장장치":   CategoryNetworkInfra,

	"책상":    CategoryBulkFurniture,
	"작업용의자": CategoryBulkFurniture,

	"인터랙티브화이트보드및액세서리": CategoryInstructional,
	"칠판보조장":           CategoryInstructional,
}

// PC-class and furniture items may be bought in classroom-sized bulk batches.
var bulkEligibleDisplayNames = map[string]bool{
	"노트북컴퓨터":  true,
	"데스크톱컴퓨터": true,
	"책상":      true,
	"작업용의자":   true,
}

func resolveCategory(displayName string) ItemCategory {
	if strings.Contains(displayName, "통신서버") {
		return CategoryEnterpriseServer
	}
	if cat, ok := categoryByDisplayName[displayName]; ok {
		return cat
	}
	return CategoryGeneral
}

const (
	engineeringKeywordSoftware = "소프트웨어"
	engineeringKeywordEng      = "공학"
	facilitiesKeyword          = "시설"
)

func resolveDepartmentTraits(d *Department) {
	d.IsEngineering = strings.Contains(d.Name, engineeringKeywordSoftware) ||
		strings.Contains(d.Name, engineeringKeywordEng)
	d.IsHeavyInfra = d.IsEngineering || strings.Contains(d.Name, facilitiesKeyword)
}

// ResolveCatalogue validates the item list and fills in every derived field.
// Missing or nonsensical master entries are fatal configuration errors.
func ResolveCatalogue(items []CatalogueItem) ([]CatalogueItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty catalogue", utils.ErrorInvalidMasterData)
	}
	out := make([]CatalogueItem, len(items))
	for i, item := range items {
		if item.ClassificationCode == "" || item.IdentifierCode == "" || item.DisplayName == "" {
			return nil, fmt.Errorf("%w: catalogue entry %d has empty codes", utils.ErrorInvalidMasterData, i)
		}
		if item.DepreciationYears <= 0 {
			return nil, fmt.Errorf("%w: item %q has depreciation years %d",
				utils.ErrorInvalidMasterData, item.DisplayName, item.DepreciationYears)
		}
		if !item.BaseUnitPrice.IsPositive() {
			return nil, fmt.Errorf("%w: item %q has base price %s",
				utils.ErrorInvalidMasterData, item.DisplayName, item.BaseUnitPrice)
		}
		item.Category = resolveCategory(item.DisplayName)
		item.Lifetime = resolveLifetime(item.DisplayName)
		item.BulkEligible = bulkEligibleDisplayNames[item.DisplayName]
		out[i] = item
	}
	return out, nil
}

// ResolveDepartments validates the department list and resolves its traits.
func ResolveDepartments(depts []Department) ([]Department, error) {
	if len(depts) == 0 {
		return nil, fmt.Errorf("%w: empty department registry", utils.ErrorInvalidMasterData)
	}
	out := make([]Department, len(depts))
	for i, d := range depts {
		if d.Code == "" || d.Name == "" {
			return nil, fmt.Errorf("%w: department entry %d has empty code or name", utils.ErrorInvalidMasterData, i)
		}
		if d.ScaleWeight <= 0 {
			return nil, fmt.Errorf("%w: department %q has scale weight %v",
				utils.ErrorInvalidMasterData, d.Name, d.ScaleWeight)
		}
		resolveDepartmentTraits(&d)
		out[i] = d
	}
	return out, nil
}
