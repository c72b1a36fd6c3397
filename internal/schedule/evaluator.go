package schedule

import (
	"math"
	"time"

	"maternal-care-backend/internal/ledger"
)

// gestationWeeks is the full-term length used to derive the estimated
// conception date from an expected delivery date.
const gestationWeeks = 40

// MilestoneStatus is the derived lifecycle state of one milestone. It is
// never stored; it is recomputed from the reference date, today and the
// completion records on every evaluation.
type MilestoneStatus string

const (
	StatusCompleted MilestoneStatus = "completed"
	StatusOverdue   MilestoneStatus = "overdue"
	StatusDue       MilestoneStatus = "due"
	StatusUpcoming  MilestoneStatus = "upcoming"
)

// IsValid checks if the MilestoneStatus is valid
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case StatusCompleted, StatusOverdue, StatusDue, StatusUpcoming:
		return true
	}
	return false
}

// GracePolicy configures the per-domain tolerance between "due" and
// "overdue". The three source screens never agreed on one rule, so the
// windows are configuration rather than constants.
type GracePolicy struct {
	// VaccinationGraceDays is how many days after the due date a vaccine
	// dose stays due before turning overdue.
	VaccinationGraceDays int
	// Checkup windows, in weeks around the target gestational week.
	CheckupEarlyWeeks int
	CheckupLateWeeks  int
	// Pregnancy milestone windows, in weeks around the target week.
	MilestoneEarlyWeeks int
	MilestoneLateWeeks  int
}

// DefaultGracePolicy returns the windows used by the national schedule:
// 14 days for vaccinations, one week either side for prenatal checkups and
// one week early only for pregnancy milestones.
func DefaultGracePolicy() GracePolicy {
	return GracePolicy{
		VaccinationGraceDays: 14,
		CheckupEarlyWeeks:    1,
		CheckupLateWeeks:     1,
		MilestoneEarlyWeeks:  1,
		MilestoneLateWeeks:   0,
	}
}

// TimelineItem pairs a milestone definition with its derived status and,
// when completed, the backing ledger record.
type TimelineItem struct {
	Milestone  MilestoneDef             `json:"milestone"`
	Status     MilestoneStatus          `json:"status"`
	Completion *ledger.CompletionRecord `json:"completion,omitempty"`
}

// TimelineView is the derived projection of one subject's schedule. It is
// transient: recompute it after every ledger write instead of mutating it.
type TimelineView struct {
	Domain               Domain         `json:"domain"`
	Items                []TimelineItem `json:"items"`
	CompletedCount       int            `json:"completed_count"`
	DueCount             int            `json:"due_count"`
	UpcomingCount        int            `json:"upcoming_count"`
	OverdueCount         int            `json:"overdue_count"`
	TotalCount           int            `json:"total_count"`
	CompletionPercentage int            `json:"completion_percentage"`
	NextItem             *TimelineItem  `json:"next_item,omitempty"`
}

// Evaluate computes the timeline view for one subject. It is pure: the only
// clock it sees is the today parameter, it performs no I/O and equal inputs
// always produce equal views, so it is safe to call on every render.
//
// records must be the ledger snapshot for the subject the reference date
// belongs to. referenceDate is a date of birth for vaccination schedules and
// an expected delivery date for gestational ones.
func Evaluate(tmpl *Template, referenceDate, today time.Time, records []ledger.CompletionRecord, grace GracePolicy) TimelineView {
	byMilestone := make(map[string]ledger.CompletionRecord, len(records))
	for _, rec := range records {
		byMilestone[rec.MilestoneID] = rec
	}

	view := TimelineView{Domain: tmpl.Domain}
	view.Items = make([]TimelineItem, 0, len(tmpl.Milestones))

	for _, def := range tmpl.sortedMilestones() {
		item := TimelineItem{Milestone: def}
		if rec, ok := byMilestone[def.ID]; ok && rec.Completed() {
			recCopy := rec
			item.Status = StatusCompleted
			item.Completion = &recCopy
		} else {
			item.Status = milestoneStatus(tmpl.Domain, def.Offset, referenceDate, today, grace)
		}
		view.Items = append(view.Items, item)
	}

	for i := range view.Items {
		switch view.Items[i].Status {
		case StatusCompleted:
			view.CompletedCount++
		case StatusDue:
			view.DueCount++
		case StatusUpcoming:
			view.UpcomingCount++
		case StatusOverdue:
			view.OverdueCount++
		}
		// Overdue items are surfaced as alerts, never as "next up".
		if view.NextItem == nil && (view.Items[i].Status == StatusUpcoming || view.Items[i].Status == StatusDue) {
			view.NextItem = &view.Items[i]
		}
	}

	view.TotalCount = len(view.Items)
	if view.TotalCount > 0 {
		view.CompletionPercentage = int(math.Round(float64(view.CompletedCount) / float64(view.TotalCount) * 100))
	}
	return view
}

func milestoneStatus(domain Domain, offset int, referenceDate, today time.Time, grace GracePolicy) MilestoneStatus {
	if domain.Gestational() {
		early, late := grace.CheckupEarlyWeeks, grace.CheckupLateWeeks
		if domain == DomainPregnancyMilestone {
			early, late = grace.MilestoneEarlyWeeks, grace.MilestoneLateWeeks
		}
		week := GestationalWeek(referenceDate, today)
		switch {
		case week < offset-early:
			return StatusUpcoming
		case week <= offset+late:
			return StatusDue
		default:
			return StatusOverdue
		}
	}

	// Vaccination: offset is months of age, resolved with calendar-month
	// arithmetic so "at 2 months" means the same calendar day two months on.
	dueDate := dateOnly(referenceDate).AddDate(0, offset, 0)
	elapsedDays := daysBetween(dueDate, today)
	switch {
	case elapsedDays < 0:
		return StatusUpcoming
	case elapsedDays <= grace.VaccinationGraceDays:
		return StatusDue
	default:
		return StatusOverdue
	}
}

// GestationalWeek returns the completed weeks of gestation at the given day.
// It is anchored on the estimated conception date (EDD minus 40 weeks), never
// on today directly, so the week does not drift when today changes mid-render.
// Negative before conception.
func GestationalWeek(expectedDelivery, today time.Time) int {
	conception := dateOnly(expectedDelivery).AddDate(0, 0, -gestationWeeks*7)
	return floorDiv(daysBetween(conception, today), 7)
}

// daysBetween returns whole calendar days from a to b, negative when b is
// before a. Both are truncated to dates first so time-of-day and zone cannot
// shift the result.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// floorDiv divides rounding toward negative infinity, so week numbers stay
// monotone across the conception date.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
