package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
	"bitbucket.org/mmdatafocus/assetseed_backend/workflow"
)

// ledgerSheet is one exportable ledger: the CSV writer and the workbook
// writer both consume the same projection, so the two sinks can never drift.
type ledgerSheet struct {
	Name     string
	FileName string
	Headers  []string
	Rows     [][]string
}

func fmtAmount(d decimal.Decimal) string { return d.StringFixed(0) }

func fmtInt(n int) string { return strconv.Itoa(n) }

func fmtTimestamp(t time.Time) string { return t.Format(utils.TimestampLayout) }

// ledgerSheets projects every ledger of res into its fixed column order.
// Headers are always present, rows may be empty.
func ledgerSheets(res *workflow.Result) []ledgerSheet {
	acq := ledgerSheet{
		Name:     "AcquisitionLedger",
		FileName: "acquisition_ledger.csv",
		Headers: []string{
			"물품목록번호", "물품명", "규격", "내용연수", "캠퍼스",
			"부서코드", "부서명", "취득일자", "수량", "단가",
			"취득금액", "승인상태", "확정일자", "취득방법", "비고",
		},
	}
	for _, b := range res.Batches {
		acq.Rows = append(acq.Rows, []string{
			b.CatalogueNumber, b.DisplayName, b.ModelDescription,
			fmtInt(b.DepreciationYears), b.Campus,
			b.DepartmentCode, b.DepartmentName,
			utils.FormatDate(b.AcquisitionDate), fmtInt(b.Quantity),
			fmtAmount(b.UnitPrice), fmtAmount(b.TotalAmount),
			string(b.ApprovalStatus), utils.FormatDatePtr(b.ConfirmationDate),
			string(b.AcquisitionMethod), b.Remark,
		})
	}

	ops := ledgerSheet{
		Name:     "OperationMaster",
		FileName: "operation_master.csv",
		Headers: []string{
			"자산번호", "물품목록번호", "물품명", "규격", "내용연수", "캠퍼스",
			"취득일자", "취득금액", "정리일자", "취득방법", "승인상태", "비고",
			"부서코드", "부서명", "운용상태", "물품상태", "출력상태",
			"재사용횟수", "운용확정일자",
		},
	}
	for _, u := range res.Units {
		ops.Rows = append(ops.Rows, []string{
			u.AssetID, u.CatalogueNumber, u.DisplayName, u.ModelDescription,
			fmtInt(u.DepreciationYears), u.Campus,
			utils.FormatDate(u.AcquisitionDate), fmtAmount(u.Amount),
			utils.FormatDatePtr(u.CleanupDate), string(u.AcquisitionMethod),
			string(u.ApprovalStatus), u.Remark,
			u.DepartmentCode, u.DepartmentName,
			string(u.Status), string(u.Condition), string(u.TagStatus),
			fmtInt(u.ReuseCycleCount), utils.FormatDate(u.OperationConfirmedDate),
		})
	}

	transfers := ledgerSheet{
		Name:     "TransferRequests",
		FileName: "transfer_requests.csv",
		Headers: []string{
			"신청일자", "등록일자", "확정일자", "등록자ID", "등록자명", "승인상태",
			"물품목록번호", "물품명", "자산번호", "취득일자", "취득금액",
			"운용부서", "신청내용", "전환유형", "운용상태",
		},
	}
	for _, t := range res.Transfers {
		transfers.Rows = append(transfers.Rows, []string{
			utils.FormatDate(t.RequestDate), utils.FormatDate(t.RegisteredDate),
			utils.FormatDatePtr(t.ConfirmedDate), t.RegistrarID, t.RegistrarName,
			string(t.ApprovalStatus),
			t.CatalogueNumber, t.DisplayName, t.AssetID,
			utils.FormatDate(t.AcquisitionDate), fmtAmount(t.Amount),
			t.DepartmentName, t.Detail, string(t.TransferType),
			string(t.DisplayedStatus),
		})
	}

	returns := ledgerSheet{
		Name:     "ReturnRequests",
		FileName: "return_requests.csv",
		Headers: []string{
			"반납일자", "확정일자", "등록자ID", "등록자명", "승인상태",
			"물품목록번호", "물품명", "자산번호", "취득일자", "취득금액",
			"정리일자", "운용부서", "운용상태", "물품상태", "반납사유",
		},
	}
	for _, r := range res.Returns {
		returns.Rows = append(returns.Rows, []string{
			utils.FormatDate(r.ReturnDate), utils.FormatDatePtr(r.ConfirmedDate),
			r.RegistrarID, r.RegistrarName, string(r.ApprovalStatus),
			r.CatalogueNumber, r.DisplayName, r.AssetID,
			utils.FormatDate(r.AcquisitionDate), fmtAmount(r.Amount),
			utils.FormatDatePtr(r.CleanupDate), r.DepartmentName,
			string(r.DisplayedStatus), string(r.Condition), r.Reason,
		})
	}

	disuses := ledgerSheet{
		Name:     "DisuseRequests",
		FileName: "disuse_requests.csv",
		Headers: []string{
			"불용일자", "확정일자", "등록자ID", "등록자명", "승인상태",
			"물품목록번호", "물품명", "자산번호", "취득일자", "취득금액",
			"정리일자", "내용연수", "운용부서", "운용상태", "물품상태", "불용사유",
		},
	}
	for _, d := range res.Disuses {
		disuses.Rows = append(disuses.Rows, []string{
			utils.FormatDate(d.DisuseDate), utils.FormatDatePtr(d.ConfirmedDate),
			d.RegistrarID, d.RegistrarName, string(d.ApprovalStatus),
			d.CatalogueNumber, d.DisplayName, d.AssetID,
			utils.FormatDate(d.AcquisitionDate), fmtAmount(d.Amount),
			utils.FormatDatePtr(d.CleanupDate), fmtInt(d.DepreciationYears),
			d.DepartmentName, string(d.DisplayedStatus), string(d.Condition),
			d.Reason,
		})
	}

	disposals := ledgerSheet{
		Name:     "DisposalRequests",
		FileName: "disposal_requests.csv",
		Headers: []string{
			"처분일자", "확정일자", "불용일자", "처분방식", "등록자ID", "등록자명",
			"승인상태", "물품목록번호", "물품명", "자산번호", "취득일자",
			"취득금액", "정리일자", "내용연수", "물품상태", "불용사유",
		},
	}
	for _, d := range res.Disposals {
		disposals.Rows = append(disposals.Rows, []string{
			utils.FormatDate(d.DisposalDate), utils.FormatDatePtr(d.ConfirmedDate),
			utils.FormatDate(d.DisuseDate), string(d.Method),
			d.RegistrarID, d.RegistrarName, string(d.ApprovalStatus),
			d.CatalogueNumber, d.DisplayName, d.AssetID,
			utils.FormatDate(d.AcquisitionDate), fmtAmount(d.Amount),
			utils.FormatDatePtr(d.CleanupDate), fmtInt(d.DepreciationYears),
			string(d.Condition), d.Reason,
		})
	}

	history := ledgerSheet{
		Name:     "HistoryLedger",
		FileName: "history_ledger.csv",
		Headers: []string{
			"자산번호", "변경일시", "변경전상태", "변경후상태", "변경사유",
			"처리자명", "처리자ID", "등록자명", "등록자ID",
		},
	}
	for _, h := range res.History {
		history.Rows = append(history.Rows, []string{
			h.AssetID, fmtTimestamp(h.ChangeAt),
			string(h.PreviousStatus), string(h.NewStatus), h.Reason,
			h.ActorName, h.ActorID, h.RegistrarName, h.RegistrarID,
		})
	}

	return []ledgerSheet{acq, ops, transfers, returns, disuses, disposals, history}
}
