package models

import (
	"database/sql/driver"
	"fmt"
)

// ApprovalStatus is the 3-way outcome gating whether a proposed state change
// takes effect.
type ApprovalStatus string

const (
	ApprovalStatusConfirmed ApprovalStatus = "Confirmed"
	ApprovalStatusPending   ApprovalStatus = "Pending"
	ApprovalStatusRejected  ApprovalStatus = "Rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusConfirmed, ApprovalStatusPending, ApprovalStatusRejected:
		return true
	}
	return false
}

func (s ApprovalStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid approval status %q", string(s))
	}
	return string(s), nil
}

func (s *ApprovalStatus) Scan(v interface{}) error {
	return scanEnum(v, (*string)(s), "approval status")
}

// AssetStatus is an asset's displayed operational state.
// AssetStatusNone is the sentinel previous-status of the very first history
// record of every asset.
type AssetStatus string

const (
	AssetStatusNone      AssetStatus = "-"
	AssetStatusAcquired  AssetStatus = "Acquired"
	AssetStatusOperating AssetStatus = "Operating"
	AssetStatusReturned  AssetStatus = "Returned"
	AssetStatusDisused   AssetStatus = "Disused"
	AssetStatusDisposed  AssetStatus = "Disposed"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusNone, AssetStatusAcquired, AssetStatusOperating,
		AssetStatusReturned, AssetStatusDisused, AssetStatusDisposed:
		return true
	}
	return false
}

func (s AssetStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid asset status %q", string(s))
	}
	return string(s), nil
}

func (s *AssetStatus) Scan(v interface{}) error {
	return scanEnum(v, (*string)(s), "asset status")
}

// AssetCondition is the physical condition recorded on return and carried
// into disuse/disposal processing.
type AssetCondition string

const (
	ConditionNew         AssetCondition = "New"
	ConditionSecondHand  AssetCondition = "SecondHand"
	ConditionNeedsRepair AssetCondition = "NeedsRepair"
	ConditionScrap       AssetCondition = "Scrap"
	ConditionUnusable    AssetCondition = "Unusable"
)

func (c AssetCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionSecondHand, ConditionNeedsRepair,
		ConditionScrap, ConditionUnusable:
		return true
	}
	return false
}

// Good reports whether the condition selects the favourable disposal-method
// distribution.
func (c AssetCondition) Good() bool {
	return c == ConditionNew || c == ConditionSecondHand
}

func (c AssetCondition) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid asset condition %q", string(c))
	}
	return string(c), nil
}

func (c *AssetCondition) Scan(v interface{}) error {
	return scanEnum(v, (*string)(c), "asset condition")
}

type AcquisitionMethod string

const (
	AcquisitionSelfPurchased AcquisitionMethod = "SelfPurchased"
	AcquisitionSelfProduced  AcquisitionMethod = "SelfProduced"
	AcquisitionDonated       AcquisitionMethod = "Donated"
)

func (m AcquisitionMethod) Valid() bool {
	switch m {
	case AcquisitionSelfPurchased, AcquisitionSelfProduced, AcquisitionDonated:
		return true
	}
	return false
}

func (m AcquisitionMethod) Value() (driver.Value, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid acquisition method %q", string(m))
	}
	return string(m), nil
}

func (m *AcquisitionMethod) Scan(v interface{}) error {
	return scanEnum(v, (*string)(m), "acquisition method")
}

type DisposalMethod string

const (
	DisposalSale  DisposalMethod = "Sale"
	DisposalScrap DisposalMethod = "Scrap"
	DisposalLoss  DisposalMethod = "Loss"
	DisposalTheft DisposalMethod = "Theft"
)

func (m DisposalMethod) Valid() bool {
	switch m {
	case DisposalSale, DisposalScrap, DisposalLoss, DisposalTheft:
		return true
	}
	return false
}

// Label is the Korean ledger vocabulary for the method, used in history
// reasons and remark text.
func (m DisposalMethod) Label() string {
	switch m {
	case DisposalSale:
		return "매각"
	case DisposalScrap:
		return "폐기"
	case DisposalLoss:
		return "멸실"
	case DisposalTheft:
		return "도난"
	}
	return string(m)
}

func (m DisposalMethod) Value() (driver.Value, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid disposal method %q", string(m))
	}
	return string(m), nil
}

func (m *DisposalMethod) Scan(v interface{}) error {
	return scanEnum(v, (*string)(m), "disposal method")
}

// TransferType distinguishes the two operation-transfer request flavours.
type TransferType string

const (
	TransferDirect TransferType = "DirectTransfer"
	TransferReuse  TransferType = "Reuse"
)

func (t TransferType) Valid() bool {
	return t == TransferDirect || t == TransferReuse
}

func (t TransferType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid transfer type %q", string(t))
	}
	return string(t), nil
}

func (t *TransferType) Scan(v interface{}) error {
	return scanEnum(v, (*string)(t), "transfer type")
}

// TagStatus records whether the physical management tag was printed.
type TagStatus string

const (
	TagPrinted    TagStatus = "Printed"
	TagNotPrinted TagStatus = "NotPrinted"
)

func (t TagStatus) Valid() bool {
	return t == TagPrinted || t == TagNotPrinted
}

func (t TagStatus) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tag status %q", string(t))
	}
	return string(t), nil
}

func (t *TagStatus) Scan(v interface{}) error {
	return scanEnum(v, (*string)(t), "tag status")
}

// EventType is the per-step lifecycle event decision. It is ephemeral: the
// simulator computes it fresh each step and never persists it.
type EventType string

const (
	EventNone              EventType = "None"
	EventReturn            EventType = "Return"
	EventDirectTransfer    EventType = "DirectTransfer"
	EventDisuseApplication EventType = "DisuseApplication"
)

func scanEnum(v interface{}, dst *string, what string) error {
	switch s := v.(type) {
	case string:
		*dst = s
	case []byte:
		*dst = string(s)
	default:
		return fmt.Errorf("%s must be a string, got %T", what, v)
	}
	return nil
}
