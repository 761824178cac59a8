package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest is one operation-transfer application (direct department
// handover, or re-commissioning of a returned unit).
type TransferRequest struct {
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`

	RequestDate    time.Time  `json:"request_date"`
	RegisteredDate time.Time  `json:"registered_date"`
	ConfirmedDate  *time.Time `json:"confirmed_date"`

	RegistrarID   string `gorm:"size:20" json:"registrar_id"`
	RegistrarName string `gorm:"size:40" json:"registrar_name"`

	ApprovalStatus  ApprovalStatus `gorm:"size:10" json:"approval_status"`
	CatalogueNumber string         `gorm:"size:16" json:"catalogue_number"`
	DisplayName     string         `gorm:"size:100" json:"display_name"`
	AssetID         string         `gorm:"size:10;index" json:"asset_id"`

	AcquisitionDate time.Time       `json:"acquisition_date"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,0)" json:"amount"`

	DepartmentName string       `gorm:"size:100" json:"department_name"`
	Detail         string       `gorm:"size:255" json:"detail"`
	TransferType   TransferType `gorm:"size:16" json:"transfer_type"`

	// Status the asset displays after this request was resolved: advanced on
	// Confirmed, unchanged otherwise.
	DisplayedStatus AssetStatus `gorm:"size:12" json:"displayed_status"`
}

func (TransferRequest) TableName() string { return "transfer_requests" }

// ReturnRequest is one return application.
type ReturnRequest struct {
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`

	ReturnDate    time.Time  `json:"return_date"`
	ConfirmedDate *time.Time `json:"confirmed_date"`

	RegistrarID   string `gorm:"size:20" json:"registrar_id"`
	RegistrarName string `gorm:"size:40" json:"registrar_name"`

	ApprovalStatus  ApprovalStatus `gorm:"size:10" json:"approval_status"`
	CatalogueNumber string         `gorm:"size:16" json:"catalogue_number"`
	DisplayName     string         `gorm:"size:100" json:"display_name"`
	AssetID         string         `gorm:"size:10;index" json:"asset_id"`

	AcquisitionDate time.Time       `json:"acquisition_date"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,0)" json:"amount"`
	CleanupDate     *time.Time      `json:"cleanup_date"`

	DepartmentName  string         `gorm:"size:100" json:"department_name"`
	DisplayedStatus AssetStatus    `gorm:"size:12" json:"displayed_status"`
	Condition       AssetCondition `gorm:"size:12" json:"condition"`
	Reason          string         `gorm:"size:60" json:"reason"`
}

func (ReturnRequest) TableName() string { return "return_requests" }

// DisuseRequest is one disuse (decommissioning) application.
type DisuseRequest struct {
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`

	DisuseDate    time.Time  `json:"disuse_date"`
	ConfirmedDate *time.Time `json:"confirmed_date"`

	RegistrarID   string `gorm:"size:20" json:"registrar_id"`
	RegistrarName string `gorm:"size:40" json:"registrar_name"`

	ApprovalStatus  ApprovalStatus `gorm:"size:10" json:"approval_status"`
	CatalogueNumber string         `gorm:"size:16" json:"catalogue_number"`
	DisplayName     string         `gorm:"size:100" json:"display_name"`
	AssetID         string         `gorm:"size:10;index" json:"asset_id"`

	AcquisitionDate   time.Time       `json:"acquisition_date"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,0)" json:"amount"`
	CleanupDate       *time.Time      `json:"cleanup_date"`
	DepreciationYears int             `json:"depreciation_years"`

	DepartmentName  string         `gorm:"size:100" json:"department_name"`
	DisplayedStatus AssetStatus    `gorm:"size:12" json:"displayed_status"`
	Condition       AssetCondition `gorm:"size:12" json:"condition"`
	Reason          string         `gorm:"size:60" json:"reason"`
}

func (DisuseRequest) TableName() string { return "disuse_requests" }

// DisposalRequest is one disposal application; a confirmed one ends the
// asset's story.
type DisposalRequest struct {
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`

	DisposalDate  time.Time  `json:"disposal_date"`
	ConfirmedDate *time.Time `json:"confirmed_date"`
	DisuseDate    time.Time  `json:"disuse_date"`

	Method DisposalMethod `gorm:"size:10" json:"method"`

	RegistrarID   string `gorm:"size:20" json:"registrar_id"`
	RegistrarName string `gorm:"size:40" json:"registrar_name"`

	ApprovalStatus  ApprovalStatus `gorm:"size:10" json:"approval_status"`
	CatalogueNumber string         `gorm:"size:16" json:"catalogue_number"`
	DisplayName     string         `gorm:"size:100" json:"display_name"`
	AssetID         string         `gorm:"size:10;index" json:"asset_id"`

	AcquisitionDate   time.Time       `json:"acquisition_date"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,0)" json:"amount"`
	CleanupDate       *time.Time      `json:"cleanup_date"`
	DepreciationYears int             `json:"depreciation_years"`

	Condition AssetCondition `gorm:"size:12" json:"condition"`
	Reason    string         `gorm:"size:60" json:"reason"`
}

func (DisposalRequest) TableName() string { return "disposal_requests" }

// HistoryRecord is one append-only audit entry. Every confirmed transition
// writes one; none are ever mutated or deleted.
type HistoryRecord struct {
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`

	AssetID  string    `gorm:"size:10;index" json:"asset_id"`
	ChangeAt time.Time `gorm:"index" json:"change_at"`

	PreviousStatus AssetStatus `gorm:"size:12" json:"previous_status"`
	NewStatus      AssetStatus `gorm:"size:12" json:"new_status"`
	Reason         string      `gorm:"size:100" json:"reason"`

	ActorName     string `gorm:"size:40" json:"actor_name"`
	ActorID       string `gorm:"size:20" json:"actor_id"`
	RegistrarName string `gorm:"size:40" json:"registrar_name"`
	RegistrarID   string `gorm:"size:20" json:"registrar_id"`
}

func (HistoryRecord) TableName() string { return "history_records" }
