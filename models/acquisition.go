package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AcquisitionBatch is one purchase transaction covering Quantity physical
// units of one catalogue item for one department. Immutable once written to
// the acquisition ledger.
//
// Invariant: TotalAmount = UnitPrice (already floored to 1,000) × Quantity.
type AcquisitionBatch struct {
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`

	CatalogueNumber    string `gorm:"size:16;index" json:"catalogue_number"`
	DisplayName        string `gorm:"size:100" json:"display_name"`
	ClassificationCode string `gorm:"size:8" json:"classification_code"`
	IdentifierCode     string `gorm:"size:8" json:"identifier_code"`
	ModelDescription   string `gorm:"size:255" json:"model_description"`
	DepreciationYears  int    `json:"depreciation_years"`

	Campus         string `gorm:"size:20" json:"campus"`
	DepartmentCode string `gorm:"size:8;index" json:"department_code"`
	DepartmentName string `gorm:"size:100" json:"department_name"`

	AcquisitionDate  time.Time       `json:"acquisition_date"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(18,0)" json:"unit_price"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(18,0)" json:"total_amount"`
	ApprovalStatus   ApprovalStatus  `gorm:"size:10" json:"approval_status"`
	ConfirmationDate *time.Time      `json:"confirmation_date"`

	AcquisitionMethod AcquisitionMethod `gorm:"size:16" json:"acquisition_method"`
	Remark            string            `gorm:"size:255" json:"remark"`
	IsBulk            bool              `json:"is_bulk"`

	// Derived at generation time; not part of the ledger projection.
	Category ItemCategory `gorm:"size:24" json:"category"`
}

func (AcquisitionBatch) TableName() string {
	return "acquisition_batches"
}

// Confirmed reports whether the batch passed inspection and produces units.
func (b AcquisitionBatch) Confirmed() bool {
	return b.ApprovalStatus == ApprovalStatusConfirmed
}
