package workflow

import (
	"time"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
)

// approvalStage selects the processing-delay band of a confirmed outcome.
type approvalStage int

const (
	stageTransfer approvalStage = iota
	stageReturn
	stageDisuse
	stageDisposal
)

// gateOutcome is a resolved approval: the drawn status, the date the request
// is recorded with, and the confirmed/processed date (meaningful only when
// Status is Confirmed).
type gateOutcome struct {
	Status      models.ApprovalStatus
	RequestDate time.Time
	ConfirmDate time.Time
}

// Confirmed reports whether the gate let the transition through.
func (o gateOutcome) Confirmed() bool {
	return o.Status == models.ApprovalStatusConfirmed
}

func stageDelay(rng *Rand, stage approvalStage) int {
	switch stage {
	case stageDisuse:
		return rng.IntBetween(14, 30)
	case stageDisposal:
		return rng.IntBetween(30, 90)
	default:
		return rng.IntBetween(3, 14)
	}
}

// resolveApproval draws a 3-way approval outcome and computes its dates.
//
// A Pending outcome pins the recorded date into the bounded recent window
// [max(base, cutoff), today]: decade-old pending paperwork would be
// implausible in seed data. A Confirmed outcome processes after the
// stage-specific delay, clamped to today. A Rejected outcome keeps the base
// date as-is.
func resolveApproval(rng *Rand, cfg *config.RunConfig, base time.Time, w config.ApprovalWeights, stage approvalStage) gateOutcome {
	status := drawApproval(rng, w)
	out := gateOutcome{Status: status, RequestDate: base, ConfirmDate: base}

	switch status {
	case models.ApprovalStatusPending:
		minAllowed := utils.ClampDate(utils.MaxDate(base, cfg.RecentPendingCutoff), cfg.Today)
		pinned := rng.DateBetween(minAllowed, cfg.Today)
		out.RequestDate = pinned
		out.ConfirmDate = pinned
	case models.ApprovalStatusConfirmed:
		out.ConfirmDate = utils.ClampDate(utils.AddDays(base, stageDelay(rng, stage)), cfg.Today)
	}
	return out
}

// resolveTransferApproval handles the operation-transfer gate, whose
// distribution depends on how recent the request is: only fresh requests can
// plausibly still sit Pending.
func resolveTransferApproval(rng *Rand, cfg *config.RunConfig, base time.Time) gateOutcome {
	var w config.ApprovalWeights
	if utils.DaysBetween(base, cfg.Today) <= 14 {
		w = config.ApprovalWeights{Confirmed: 0.5, Pending: 0.4, Rejected: 0.1}
	} else {
		w = config.ApprovalWeights{Confirmed: 0.99, Pending: 0, Rejected: 0.01}
	}
	return resolveApproval(rng, cfg, base, w, stageTransfer)
}

func drawApproval(rng *Rand, w config.ApprovalWeights) models.ApprovalStatus {
	switch rng.PickIndex([]float64{w.Confirmed, w.Pending, w.Rejected}) {
	case 0:
		return models.ApprovalStatusConfirmed
	case 1:
		return models.ApprovalStatusPending
	default:
		return models.ApprovalStatusRejected
	}
}
