package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetUnit is one physical, individually tracked unit expanded from a
// confirmed acquisition batch. It is mutated only by the lifecycle simulator
// and never deleted: the terminal state is Disposed, not removal.
//
// The operation master ledger is a flat projection of this struct.
type AssetUnit struct {
	AssetID string `gorm:"primaryKey;size:10" json:"asset_id"`

	CatalogueNumber   string       `gorm:"size:16;index" json:"catalogue_number"`
	DisplayName       string       `gorm:"size:100" json:"display_name"`
	ModelDescription  string       `gorm:"size:255" json:"model_description"`
	Category          ItemCategory `gorm:"size:24;index" json:"category"`
	DepreciationYears int          `json:"depreciation_years"`

	Campus            string            `gorm:"size:20" json:"campus"`
	AcquisitionDate   time.Time         `json:"acquisition_date"`
	Amount            decimal.Decimal   `gorm:"type:decimal(18,0)" json:"amount"`
	CleanupDate       *time.Time        `json:"cleanup_date"`
	AcquisitionMethod AcquisitionMethod `gorm:"size:16" json:"acquisition_method"`
	ApprovalStatus    ApprovalStatus    `gorm:"size:10" json:"approval_status"`
	Remark            string            `gorm:"size:255" json:"remark"`

	DepartmentCode string `gorm:"size:8;index" json:"department_code"`
	DepartmentName string `gorm:"size:100" json:"department_name"`

	Status    AssetStatus    `gorm:"size:12" json:"status"`
	Condition AssetCondition `gorm:"size:12" json:"condition"`
	TagStatus TagStatus      `gorm:"size:12" json:"tag_status"`

	ReuseCycleCount     int       `json:"reuse_cycle_count"`
	NaturalLifetimeDays int       `json:"natural_lifetime_days"`
	LastOperationStart  time.Time `json:"last_operation_start"`

	// Date the current operating assignment was confirmed; shown in the
	// operation master.
	OperationConfirmedDate time.Time `json:"operation_confirmed_date"`
}

func (AssetUnit) TableName() string {
	return "asset_units"
}

// AgeDays is the unit's age relative to ref, counted from acquisition.
func (u AssetUnit) AgeDays(ref time.Time) int {
	return int(ref.Sub(u.AcquisitionDate).Hours() / 24)
}

// PastNaturalLifetime reports whether the unit reached its sampled physical
// end-of-life threshold at ref.
func (u AssetUnit) PastNaturalLifetime(ref time.Time) bool {
	return u.AgeDays(ref) >= u.NaturalLifetimeDays
}

// LifecycleEvent is the outcome of one event-decision step for an operating
// unit. Ephemeral: decided, acted on, and discarded; never persisted.
type LifecycleEvent struct {
	Type EventType
	Date time.Time
}
