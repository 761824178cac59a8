package workflow

import (
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
)

// unitResult is everything one unit's simulation produced. Units never write
// into shared ledgers directly; the orchestrator merges results afterwards,
// which keeps per-unit simulation order-independent and parallelizable.
type unitResult struct {
	Unit      models.AssetUnit
	Transfers []models.TransferRequest
	Returns   []models.ReturnRequest
	Disuses   []models.DisuseRequest
	Disposals []models.DisposalRequest
	History   []models.HistoryRecord
}

func newUnitResult(u models.AssetUnit) unitResult {
	return unitResult{Unit: u}
}

// unitState is the mutable walking state of one unit's simulation, owned by
// the simulating goroutine and threaded through the step functions.
type unitState struct {
	cursor      time.Time
	lastOpStart time.Time
	condition   models.AssetCondition
	deptCode    string
	deptName    string
	reuseCount  int
	limitDays   int
}

func (r *unitResult) initialState(s *lifecycleSim) *unitState {
	cleanup := r.Unit.AcquisitionDate
	if r.Unit.CleanupDate != nil {
		cleanup = *r.Unit.CleanupDate
	}
	return &unitState{
		cursor:      cleanup,
		lastOpStart: r.Unit.LastOperationStart,
		condition:   models.ConditionNew,
		deptCode:    r.Unit.DepartmentCode,
		deptName:    r.Unit.DepartmentName,
	}
}

func (r *unitResult) appendHistory(date time.Time, prev, next models.AssetStatus, reason string, actor models.Actor) {
	r.History = append(r.History, models.HistoryRecord{
		AssetID:        r.Unit.AssetID,
		ChangeAt:       date,
		PreviousStatus: prev,
		NewStatus:      next,
		Reason:         reason,
		ActorName:      actor.Name,
		ActorID:        actor.ID,
		RegistrarName:  actor.Name,
		RegistrarID:    actor.ID,
	})
}

// appendAcquisitionHistory writes the mandatory opening pair of every asset:
// acquisition at midnight, operating registration one second later, so the
// same-day records keep a defined order.
func (r *unitResult) appendAcquisitionHistory(cleanup time.Time) {
	acqAt := utils.AtMidnight(cleanup)
	r.appendHistory(acqAt, models.AssetStatusNone, models.AssetStatusAcquired, "신규 취득", models.StaffActor)
	r.appendHistory(acqAt.Add(time.Second), models.AssetStatusAcquired, models.AssetStatusOperating, "신규 운용 등재", models.StaffActor)
}

// lifecycleSim drives every unit through the operating loop.
type lifecycleSim struct {
	cfg                 *config.RunConfig
	depts               []models.Department
	lifetimeByCatalogue map[string]models.LifetimeStats
}

func newLifecycleSim(cfg *config.RunConfig, items []models.CatalogueItem, depts []models.Department) *lifecycleSim {
	lifetimes := make(map[string]models.LifetimeStats, len(items))
	for _, item := range items {
		lifetimes[item.CatalogueNumber()] = item.Lifetime
	}
	return &lifecycleSim{cfg: cfg, depts: depts, lifetimeByCatalogue: lifetimes}
}

type returnOutcome int

const (
	returnEnd returnOutcome = iota
	returnReuse
	returnDisuse
)

type disuseTrigger int

const (
	disuseTriggerNaturalEOL disuseTrigger = iota
	disuseTriggerCascade
)

// SimulateUnit walks one unit from initial operation through zero or more
// return/reuse cycles to an optional terminal disuse+disposal. rng must be
// the unit's own child generator.
func (s *lifecycleSim) SimulateUnit(unit models.AssetUnit, rng *Rand) unitResult {
	if unit.Category == models.CategoryEnterpriseServer {
		return s.simulateServerUnit(unit, rng)
	}

	res := newUnitResult(unit)
	st := res.initialState(s)

	// Physical end-of-life threshold, sampled once per unit. This governs the
	// disuse trigger; the legal depreciation years only schedule replacement
	// purchases.
	stats := s.lifetimeByCatalogue[unit.CatalogueNumber]
	if stats.MeanYears == 0 {
		stats = models.LifetimeStats{MeanYears: 8.0, StddevYears: 2.0}
	}
	years := rng.Normal(stats.MeanYears, stats.StddevYears)
	if years < 1.0 {
		years = 1.0
	}
	st.limitDays = int(years * 365)
	res.Unit.NaturalLifetimeDays = st.limitDays

	if rng.Chance(s.cfg.ProbTagPrinted) {
		res.Unit.TagStatus = models.TagPrinted
	}

	res.appendAcquisitionHistory(st.cursor)

	for st.reuseCount < s.cfg.MaxReuseCycles {
		ev := s.determineEvent(&res.Unit, st, rng)

		switch ev.Type {
		case models.EventNone:
			return res

		case models.EventDirectTransfer:
			st.cursor = ev.Date
			newDept := Choice(rng, s.depts)
			if !s.performTransfer(&res, st, rng, newDept, models.TransferDirect) {
				return res
			}

		case models.EventReturn:
			outcome, reason := s.processReturn(&res, st, rng, ev.Date)
			switch outcome {
			case returnReuse:
				newDept := Choice(rng, s.depts)
				if !s.performTransfer(&res, st, rng, newDept, models.TransferReuse) {
					return res
				}
			case returnDisuse:
				s.processDisuse(&res, st, rng, disuseTriggerCascade, reason)
				return res
			default:
				return res
			}

		case models.EventDisuseApplication:
			st.cursor = ev.Date
			s.processDisuse(&res, st, rng, disuseTriggerNaturalEOL, "")
			return res
		}
	}
	return res
}

// determineEvent decides what happens to an operating unit this step, in
// strict priority order: physical end-of-life dominates, then the rare direct
// transfer, then administrative returns. Computed fresh each step, never
// stored.
func (s *lifecycleSim) determineEvent(unit *models.AssetUnit, st *unitState, rng *Rand) models.LifecycleEvent {
	ageDays := unit.AgeDays(s.cfg.Today)
	daysSinceUse := utils.DaysBetween(st.lastOpStart, s.cfg.Today)

	// 1. Natural lifetime reached: the unit must apply for disuse.
	if ageDays >= st.limitDays {
		eol := utils.AddDays(unit.AcquisitionDate, st.limitDays)
		date := utils.MaxDate(utils.ClampDate(eol, s.cfg.Today), st.cursor)
		return models.LifecycleEvent{Type: models.EventDisuseApplication, Date: date}
	}

	// 2. Direct department handover, only for settled units with plenty of
	// life left.
	if daysSinceUse > 90 && float64(ageDays) < 0.8*float64(st.limitDays) && rng.Chance(s.cfg.ProbDirectTransfer) {
		date := utils.AddDays(st.cursor, rng.IntBetween(10, 180))
		if !date.After(s.cfg.Today) {
			return models.LifecycleEvent{Type: models.EventDirectTransfer, Date: date}
		}
	}

	// 3. Administrative return: a rare early return, else an age-driven one.
	if rng.Chance(s.cfg.ProbEarlyReturn) {
		date := utils.AddDays(st.cursor, rng.IntBetween(1, 30))
		if !date.After(s.cfg.Today) {
			return models.LifecycleEvent{Type: models.EventReturn, Date: date}
		}
	}
	if ageDays > 365*3 {
		p := s.cfg.ProbReturnOver3y
		if ageDays > 365*5 {
			p = s.cfg.ProbReturnOver5y
		}
		if rng.Chance(p) && daysSinceUse >= 30 {
			date := utils.AddDays(st.cursor, rng.IntBetween(30, 365))
			if !date.After(s.cfg.Today) {
				return models.LifecycleEvent{Type: models.EventReturn, Date: date}
			}
		}
	}

	return models.LifecycleEvent{Type: models.EventNone, Date: s.cfg.Today}
}

// processReturn records a return application and, when confirmed, decides
// whether the unit is re-commissioned or cascades into disuse.
func (s *lifecycleSim) processReturn(res *unitResult, st *unitState, rng *Rand, eventDate time.Time) (returnOutcome, string) {
	reason := rng.PickString(models.ReturnReasons, models.ReturnReasonWeights)

	var condition models.AssetCondition
	switch reason {
	case models.ReturnReasonSurplus:
		condition = models.ConditionNew
	case models.ReturnReasonProjectEnd:
		condition = []models.AssetCondition{
			models.ConditionNew, models.ConditionSecondHand, models.ConditionNeedsRepair,
		}[rng.PickIndex([]float64{0.4, 0.5, 0.1})]
	default: // shared conversion
		condition = []models.AssetCondition{
			models.ConditionNew, models.ConditionSecondHand,
		}[rng.PickIndex([]float64{0.3, 0.7})]
	}
	st.condition = condition

	gate := resolveApproval(rng, s.cfg, eventDate, s.cfg.ApprovalReturn, stageReturn)

	displayed := models.AssetStatusOperating
	var confirmPtr *time.Time
	if gate.Confirmed() {
		displayed = models.AssetStatusReturned
		c := gate.ConfirmDate
		confirmPtr = &c
	}

	res.Returns = append(res.Returns, models.ReturnRequest{
		ReturnDate:      gate.RequestDate,
		ConfirmedDate:   confirmPtr,
		RegistrarID:     models.StaffActor.ID,
		RegistrarName:   models.StaffActor.Name,
		ApprovalStatus:  gate.Status,
		CatalogueNumber: res.Unit.CatalogueNumber,
		DisplayName:     res.Unit.DisplayName,
		AssetID:         res.Unit.AssetID,
		AcquisitionDate: res.Unit.AcquisitionDate,
		Amount:          res.Unit.Amount,
		CleanupDate:     res.Unit.CleanupDate,
		DepartmentName:  st.deptName,
		DisplayedStatus: displayed,
		Condition:       condition,
		Reason:          reason,
	})

	if !gate.Confirmed() {
		return returnEnd, reason
	}

	res.Unit.Status = models.AssetStatusReturned
	res.Unit.Condition = condition
	res.Unit.DepartmentCode = ""
	res.Unit.DepartmentName = ""
	res.appendHistory(gate.ConfirmDate, models.AssetStatusOperating, models.AssetStatusReturned, reason, models.StaffActor)
	st.cursor = gate.ConfirmDate

	// Reuse is only plausible for near-new stock: brand new, or second hand
	// that was in service briefly.
	daysUsed := utils.DaysBetween(st.lastOpStart, gate.ConfirmDate)
	canReuse := condition == models.ConditionNew ||
		(condition == models.ConditionSecondHand && daysUsed <= s.cfg.RecentUseLimitDays)
	if canReuse && rng.Chance(s.cfg.ProbReuseFromReturn) {
		return returnReuse, reason
	}
	return returnDisuse, reason
}

// performTransfer files an operation-transfer request (direct handover or
// reuse of a returned unit) and applies it when confirmed. Both flavours
// consume one reuse cycle. Returns false when the unit's story stops here.
func (s *lifecycleSim) performTransfer(res *unitResult, st *unitState, rng *Rand, newDept models.Department, ttype models.TransferType) bool {
	reqDate := st.cursor
	if ttype == models.TransferReuse {
		reqDate = utils.AddDays(st.cursor, rng.IntBetween(1, 7))
	}
	if reqDate.After(s.cfg.Today) {
		return false
	}

	st.reuseCount++
	res.Unit.ReuseCycleCount = st.reuseCount

	prevStatus := models.AssetStatusOperating
	detail := fmt.Sprintf("%s로 운용전환(직접인계) 신청", newDept.Name)
	historyReason := fmt.Sprintf("운용전환(직접) 승인 (%s)", newDept.Name)
	if ttype == models.TransferReuse {
		prevStatus = models.AssetStatusReturned
		detail = fmt.Sprintf("%s에서 운용전환(재사용) 신청(재사용 %d회차)", newDept.Name, st.reuseCount)
		historyReason = fmt.Sprintf("운용전환(재사용) 승인 (%s)", newDept.Name)
	}

	gate := resolveTransferApproval(rng, s.cfg, reqDate)

	displayed := prevStatus
	var confirmPtr *time.Time
	if gate.Confirmed() {
		displayed = models.AssetStatusOperating
		c := gate.ConfirmDate
		confirmPtr = &c
	}

	res.Transfers = append(res.Transfers, models.TransferRequest{
		RequestDate:     gate.RequestDate,
		RegisteredDate:  gate.RequestDate,
		ConfirmedDate:   confirmPtr,
		RegistrarID:     models.StaffActor.ID,
		RegistrarName:   models.StaffActor.Name,
		ApprovalStatus:  gate.Status,
		CatalogueNumber: res.Unit.CatalogueNumber,
		DisplayName:     res.Unit.DisplayName,
		AssetID:         res.Unit.AssetID,
		AcquisitionDate: res.Unit.AcquisitionDate,
		Amount:          res.Unit.Amount,
		DepartmentName:  newDept.Name,
		Detail:          detail,
		TransferType:    ttype,
		DisplayedStatus: displayed,
	})

	if !gate.Confirmed() {
		return false
	}

	st.deptCode, st.deptName = newDept.Code, newDept.Name
	st.cursor = gate.ConfirmDate
	st.lastOpStart = gate.ConfirmDate

	res.Unit.DepartmentCode = newDept.Code
	res.Unit.DepartmentName = newDept.Name
	res.Unit.Status = models.AssetStatusOperating
	res.Unit.OperationConfirmedDate = gate.ConfirmDate
	res.Unit.LastOperationStart = gate.ConfirmDate
	res.appendHistory(gate.ConfirmDate, prevStatus, models.AssetStatusOperating, historyReason, models.StaffActor)

	return true
}

// processDisuse records a disuse application and, when confirmed, always
// attempts disposal next.
func (s *lifecycleSim) processDisuse(res *unitResult, st *unitState, rng *Rand, trigger disuseTrigger, inheritedReason string) {
	var reason string
	var condition models.AssetCondition
	var prevStatus models.AssetStatus

	switch trigger {
	case disuseTriggerNaturalEOL:
		reason = Choice(rng, models.PhysicalDisuseReasons)
		condition = models.ConditionUnusable
		if reason == models.DisuseReasonBroken {
			condition = models.ConditionScrap
		}
		prevStatus = models.AssetStatusOperating

	default: // cascade from a confirmed return
		switch inheritedReason {
		case models.ReturnReasonSurplus, models.ReturnReasonProjectEnd:
			reason = []string{
				models.DisuseReasonNoReceiver, models.DisuseReasonObsolete,
			}[rng.PickIndex([]float64{0.7, 0.3})]
		default:
			reason = inheritedReason
		}
		condition = st.condition
		prevStatus = models.AssetStatusReturned

		// New surplus stock is mostly warehoused instead of formally
		// disused; its simulated story simply ends.
		if inheritedReason == models.ReturnReasonSurplus && st.condition == models.ConditionNew &&
			rng.Chance(s.cfg.ProbSurplusStore) {
			return
		}
	}

	duDate := utils.ClampDate(utils.AddDays(st.cursor, rng.IntBetween(1, 14)), s.cfg.Today)
	gate := resolveApproval(rng, s.cfg, duDate, s.cfg.ApprovalDisuse, stageDisuse)

	displayed := prevStatus
	var confirmPtr *time.Time
	if gate.Confirmed() {
		displayed = models.AssetStatusDisused
		c := gate.ConfirmDate
		confirmPtr = &c
	}

	res.Disuses = append(res.Disuses, models.DisuseRequest{
		DisuseDate:        gate.RequestDate,
		ConfirmedDate:     confirmPtr,
		RegistrarID:       models.StaffActor.ID,
		RegistrarName:     models.StaffActor.Name,
		ApprovalStatus:    gate.Status,
		CatalogueNumber:   res.Unit.CatalogueNumber,
		DisplayName:       res.Unit.DisplayName,
		AssetID:           res.Unit.AssetID,
		AcquisitionDate:   res.Unit.AcquisitionDate,
		Amount:            res.Unit.Amount,
		CleanupDate:       res.Unit.CleanupDate,
		DepreciationYears: res.Unit.DepreciationYears,
		DepartmentName:    st.deptName,
		DisplayedStatus:   displayed,
		Condition:         condition,
		Reason:            reason,
	})

	if !gate.Confirmed() {
		return
	}

	res.Unit.Status = models.AssetStatusDisused
	res.Unit.Condition = condition
	res.appendHistory(gate.ConfirmDate, prevStatus, models.AssetStatusDisused, reason, models.AdminActor)
	st.cursor = gate.ConfirmDate

	s.processDisposal(res, st, rng, condition, reason)
}

// processDisposal files the disposal that always follows a confirmed disuse.
// A confirmed disposal terminates the unit's story in status Disposed.
func (s *lifecycleSim) processDisposal(res *unitResult, st *unitState, rng *Rand, condition models.AssetCondition, disuseReason string) {
	dpDate := utils.ClampDate(utils.AddDays(st.cursor, rng.IntBetween(1, 14)), s.cfg.Today)

	weights := []float64{0.03, 0.95, 0.01, 0.01}
	if condition.Good() {
		weights = []float64{0.85, 0.13, 0.01, 0.01}
	}
	method := []models.DisposalMethod{
		models.DisposalSale, models.DisposalScrap, models.DisposalLoss, models.DisposalTheft,
	}[rng.PickIndex(weights)]

	gate := resolveApproval(rng, s.cfg, dpDate, s.cfg.ApprovalDisposal, stageDisposal)

	var confirmPtr *time.Time
	if gate.Confirmed() {
		c := gate.ConfirmDate
		confirmPtr = &c
	}

	res.Disposals = append(res.Disposals, models.DisposalRequest{
		DisposalDate:      gate.RequestDate,
		ConfirmedDate:     confirmPtr,
		DisuseDate:        st.cursor,
		Method:            method,
		RegistrarID:       models.StaffActor.ID,
		RegistrarName:     models.StaffActor.Name,
		ApprovalStatus:    gate.Status,
		CatalogueNumber:   res.Unit.CatalogueNumber,
		DisplayName:       res.Unit.DisplayName,
		AssetID:           res.Unit.AssetID,
		AcquisitionDate:   res.Unit.AcquisitionDate,
		Amount:            res.Unit.Amount,
		CleanupDate:       res.Unit.CleanupDate,
		DepreciationYears: res.Unit.DepreciationYears,
		Condition:         condition,
		Reason:            disuseReason,
	})

	if !gate.Confirmed() {
		return
	}

	res.Unit.Status = models.AssetStatusDisposed
	res.appendHistory(gate.ConfirmDate, models.AssetStatusDisused, models.AssetStatusDisposed,
		fmt.Sprintf("%s 완료", method.Label()), models.AdminActor)
}
