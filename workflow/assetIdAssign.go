package workflow

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
)

// ExpandConfirmedBatches turns the acquisition ledger into one row per
// physical unit: only confirmed batches produce units, the batch amount is
// divided down to the per-unit price and the quantity collapses to 1.
func ExpandConfirmedBatches(batches []models.AcquisitionBatch) []models.AssetUnit {
	var units []models.AssetUnit
	for _, b := range batches {
		if !b.Confirmed() {
			continue
		}
		opConfirmed := b.AcquisitionDate
		if b.ConfirmationDate != nil {
			opConfirmed = *b.ConfirmationDate
		}
		for i := 0; i < b.Quantity; i++ {
			units = append(units, models.AssetUnit{
				CatalogueNumber:        b.CatalogueNumber,
				DisplayName:            b.DisplayName,
				ModelDescription:       b.ModelDescription,
				Category:               b.Category,
				DepreciationYears:      b.DepreciationYears,
				Campus:                 b.Campus,
				AcquisitionDate:        b.AcquisitionDate,
				Amount:                 b.UnitPrice,
				CleanupDate:            b.ConfirmationDate,
				AcquisitionMethod:      b.AcquisitionMethod,
				ApprovalStatus:         b.ApprovalStatus,
				Remark:                 b.Remark,
				DepartmentCode:         b.DepartmentCode,
				DepartmentName:         b.DepartmentName,
				Status:                 models.AssetStatusOperating,
				Condition:              models.ConditionNew,
				TagStatus:              models.TagNotPrinted,
				ReuseCycleCount:        0,
				LastOperationStart:     opConfirmed,
				OperationConfirmedDate: opConfirmed,
			})
		}
	}
	return units
}

// AssignAssetIDs stamps every unit with an id of the form M<year><5-digit
// sequence>, sequences contiguous from 1 within each acquisition year.
//
// The assignment is a pure function of row content, not of row position:
// units are ranked by a composite key ending in a full-row content digest,
// under a stable sort, so reshuffled input still yields the identical
// id→content mapping. Units are modified in place, input order preserved.
func AssignAssetIDs(units []models.AssetUnit) {
	order := make([]int, len(units))
	for i := range order {
		order[i] = i
	}

	digests := make([]string, len(units))
	for i := range units {
		digests[i] = rowDigest(units[i])
	}

	sort.SliceStable(order, func(a, b int) bool {
		ua, ub := units[order[a]], units[order[b]]
		if ya, yb := ua.AcquisitionDate.Year(), ub.AcquisitionDate.Year(); ya != yb {
			return ya < yb
		}
		if ua.DepartmentCode != ub.DepartmentCode {
			return ua.DepartmentCode < ub.DepartmentCode
		}
		if ua.CatalogueNumber != ub.CatalogueNumber {
			return ua.CatalogueNumber < ub.CatalogueNumber
		}
		if c := ua.Amount.Cmp(ub.Amount); c != 0 {
			return c < 0
		}
		if !ua.AcquisitionDate.Equal(ub.AcquisitionDate) {
			return ua.AcquisitionDate.Before(ub.AcquisitionDate)
		}
		if ua.Remark != ub.Remark {
			return ua.Remark < ub.Remark
		}
		return digests[order[a]] < digests[order[b]]
	})

	seqByYear := make(map[int]int)
	for _, idx := range order {
		year := units[idx].AcquisitionDate.Year()
		seqByYear[year]++
		units[idx].AssetID = fmt.Sprintf("M%d%05d", year, seqByYear[year])
	}
}

// rowDigest hashes every content field of the unit row. It is the final
// tie-breaker of the id sort, so two rows get the same rank only when their
// entire content is identical.
func rowDigest(u models.AssetUnit) string {
	h := sha256.New()
	fields := []string{
		u.CatalogueNumber,
		u.DisplayName,
		u.ModelDescription,
		string(u.Category),
		strconv.Itoa(u.DepreciationYears),
		u.Campus,
		utils.FormatDate(u.AcquisitionDate),
		u.Amount.String(),
		utils.FormatDatePtr(u.CleanupDate),
		string(u.AcquisitionMethod),
		string(u.ApprovalStatus),
		u.Remark,
		u.DepartmentCode,
		u.DepartmentName,
	}
	h.Write([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(h.Sum(nil))
}
