package schedule_test

import (
	"testing"
	"time"

	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func vaccinationTemplate() *schedule.Template {
	return &schedule.Template{
		Domain:  schedule.DomainVaccination,
		Version: 1,
		Milestones: []schedule.MilestoneDef{
			{ID: "bcg", Offset: 0, Label: "BCG"},
			{ID: "penta-1", Offset: 2, Label: "Pentavalent 1st dose"},
			{ID: "penta-2", Offset: 4, Label: "Pentavalent 2nd dose"},
		},
	}
}

func completedRecord(subjectID uuid.UUID, milestoneID string, completedAt time.Time) ledger.CompletionRecord {
	return ledger.CompletionRecord{
		SubjectID:     subjectID,
		MilestoneID:   milestoneID,
		CompletedAt:   completedAt,
		SyncStatus:    ledger.SyncStatusPending,
		LocalRevision: 1,
	}
}

func statuses(view schedule.TimelineView) []schedule.MilestoneStatus {
	out := make([]schedule.MilestoneStatus, 0, len(view.Items))
	for _, item := range view.Items {
		out = append(out, item.Status)
	}
	return out
}

func TestEvaluateAllOverdueWhenScheduleLongPast(t *testing.T) {
	// Three doses at 0, 2 and 4 months, child born five months ago, nothing
	// administered, no grace: everything is overdue and nothing is next up.
	today := date(2024, time.June, 15)
	birth := date(2024, time.January, 15)
	grace := schedule.GracePolicy{VaccinationGraceDays: 0}

	view := schedule.Evaluate(vaccinationTemplate(), birth, today, nil, grace)

	assert.Equal(t, []schedule.MilestoneStatus{
		schedule.StatusOverdue, schedule.StatusOverdue, schedule.StatusOverdue,
	}, statuses(view))
	assert.Equal(t, 0, view.CompletionPercentage)
	assert.Equal(t, 3, view.OverdueCount)
	assert.Nil(t, view.NextItem)
}

func TestEvaluateMixedStatuses(t *testing.T) {
	today := date(2024, time.June, 15)
	birth := date(2024, time.March, 15)
	subjectID := uuid.New()
	records := []ledger.CompletionRecord{completedRecord(subjectID, "bcg", today)}

	view := schedule.Evaluate(vaccinationTemplate(), birth, today, records, schedule.DefaultGracePolicy())

	assert.Equal(t, []schedule.MilestoneStatus{
		schedule.StatusCompleted, schedule.StatusOverdue, schedule.StatusUpcoming,
	}, statuses(view))
	assert.Equal(t, 33, view.CompletionPercentage)
	require.NotNil(t, view.NextItem)
	assert.Equal(t, "penta-2", view.NextItem.Milestone.ID)
	require.NotNil(t, view.Items[0].Completion)
	assert.Equal(t, subjectID, view.Items[0].Completion.SubjectID)
}

func TestEvaluateVaccinationGraceWindow(t *testing.T) {
	tmpl := &schedule.Template{
		Domain:     schedule.DomainVaccination,
		Milestones: []schedule.MilestoneDef{{ID: "measles-1", Offset: 9, Label: "Measles 1st dose"}},
	}
	birth := date(2023, time.September, 1)
	grace := schedule.DefaultGracePolicy() // 14 days

	cases := []struct {
		name  string
		today time.Time
		want  schedule.MilestoneStatus
	}{
		{"day before due date", date(2024, time.May, 31), schedule.StatusUpcoming},
		{"on due date", date(2024, time.June, 1), schedule.StatusDue},
		{"last day of grace", date(2024, time.June, 15), schedule.StatusDue},
		{"day after grace", date(2024, time.June, 16), schedule.StatusOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := schedule.Evaluate(tmpl, birth, tc.today, nil, grace)
			assert.Equal(t, tc.want, view.Items[0].Status)
		})
	}
}

func TestEvaluateGestationalWeekWindow(t *testing.T) {
	tmpl := &schedule.Template{
		Domain:     schedule.DomainPrenatalCheckup,
		Milestones: []schedule.MilestoneDef{{ID: "anc-1", Offset: 12, Label: "First ANC visit"}},
	}
	today := date(2024, time.June, 15)
	// Today is exactly 28 weeks before the EDD, i.e. week 12 of pregnancy.
	edd := today.AddDate(0, 0, 28*7)
	grace := schedule.DefaultGracePolicy()

	view := schedule.Evaluate(tmpl, edd, today, nil, grace)
	assert.Equal(t, schedule.StatusDue, view.Items[0].Status)

	cases := []struct {
		name string
		edd  time.Time
		want schedule.MilestoneStatus
	}{
		{"week 10 is upcoming", today.AddDate(0, 0, 30*7), schedule.StatusUpcoming},
		{"week 11 is due (early window)", today.AddDate(0, 0, 29*7), schedule.StatusDue},
		{"week 13 is due (late window)", today.AddDate(0, 0, 27*7), schedule.StatusDue},
		{"week 14 is overdue", today.AddDate(0, 0, 26*7), schedule.StatusOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := schedule.Evaluate(tmpl, tc.edd, today, nil, grace)
			assert.Equal(t, tc.want, view.Items[0].Status)
		})
	}
}

func TestEvaluatePregnancyMilestoneHasNoLateWindow(t *testing.T) {
	tmpl := &schedule.Template{
		Domain:     schedule.DomainPregnancyMilestone,
		Milestones: []schedule.MilestoneDef{{ID: "viability", Offset: 24, Label: "Viability"}},
	}
	today := date(2024, time.June, 15)
	grace := schedule.DefaultGracePolicy()

	atWeek := func(week int) time.Time { return today.AddDate(0, 0, (40-week)*7) }

	assert.Equal(t, schedule.StatusUpcoming, schedule.Evaluate(tmpl, atWeek(22), today, nil, grace).Items[0].Status)
	assert.Equal(t, schedule.StatusDue, schedule.Evaluate(tmpl, atWeek(23), today, nil, grace).Items[0].Status)
	assert.Equal(t, schedule.StatusDue, schedule.Evaluate(tmpl, atWeek(24), today, nil, grace).Items[0].Status)
	assert.Equal(t, schedule.StatusOverdue, schedule.Evaluate(tmpl, atWeek(25), today, nil, grace).Items[0].Status)
}

func TestEvaluateBeforeReferenceDate(t *testing.T) {
	// A birth date in the future is a data-entry artifact, not an error:
	// every milestone is simply upcoming.
	today := date(2024, time.June, 15)
	birth := date(2024, time.August, 1)

	view := schedule.Evaluate(vaccinationTemplate(), birth, today, nil, schedule.DefaultGracePolicy())

	assert.Equal(t, 3, view.UpcomingCount)
	assert.Equal(t, 0, view.OverdueCount)
	require.NotNil(t, view.NextItem)
	assert.Equal(t, "bcg", view.NextItem.Milestone.ID)
}

func TestEvaluateEmptyTemplate(t *testing.T) {
	tmpl := &schedule.Template{Domain: schedule.DomainVaccination}
	view := schedule.Evaluate(tmpl, date(2024, time.January, 1), date(2024, time.June, 1), nil, schedule.DefaultGracePolicy())

	assert.Equal(t, 0, view.TotalCount)
	assert.Equal(t, 0, view.CompletionPercentage)
	assert.Nil(t, view.NextItem)
	assert.Empty(t, view.Items)
}

func TestEvaluateIsPure(t *testing.T) {
	today := date(2024, time.June, 15)
	birth := date(2024, time.February, 2)
	subjectID := uuid.New()
	records := []ledger.CompletionRecord{completedRecord(subjectID, "penta-1", date(2024, time.May, 20))}

	first := schedule.Evaluate(vaccinationTemplate(), birth, today, records, schedule.DefaultGracePolicy())
	second := schedule.Evaluate(vaccinationTemplate(), birth, today, records, schedule.DefaultGracePolicy())

	assert.Equal(t, first, second)
}

func TestEvaluateStatusPartition(t *testing.T) {
	subjectID := uuid.New()
	todays := []time.Time{
		date(2023, time.December, 31),
		date(2024, time.February, 15),
		date(2024, time.April, 1),
		date(2024, time.June, 15),
		date(2025, time.March, 1),
	}
	birth := date(2024, time.January, 10)
	records := []ledger.CompletionRecord{completedRecord(subjectID, "bcg", date(2024, time.January, 11))}

	for _, today := range todays {
		view := schedule.Evaluate(vaccinationTemplate(), birth, today, records, schedule.DefaultGracePolicy())
		for _, item := range view.Items {
			assert.True(t, item.Status.IsValid(), "status %q on %s", item.Status, today)
		}
		sum := view.CompletedCount + view.DueCount + view.UpcomingCount + view.OverdueCount
		assert.Equal(t, view.TotalCount, sum, "partition violated on %s", today)
		assert.GreaterOrEqual(t, view.CompletionPercentage, 0)
		assert.LessOrEqual(t, view.CompletionPercentage, 100)
	}
}

func TestEvaluateCompletionMonotonicity(t *testing.T) {
	subjectID := uuid.New()
	today := date(2024, time.June, 15)
	birth := date(2024, time.January, 15)
	tmpl := vaccinationTemplate()
	grace := schedule.DefaultGracePolicy()

	var records []ledger.CompletionRecord
	prev := schedule.Evaluate(tmpl, birth, today, records, grace)
	for _, id := range []string{"bcg", "penta-1", "penta-2"} {
		records = append(records, completedRecord(subjectID, id, today))
		next := schedule.Evaluate(tmpl, birth, today, records, grace)
		assert.GreaterOrEqual(t, next.CompletionPercentage, prev.CompletionPercentage)
		assert.LessOrEqual(t, next.OverdueCount, prev.OverdueCount)
		prev = next
	}
	assert.Equal(t, 100, prev.CompletionPercentage)
}

func TestEvaluateNextItemIsEarliestActionable(t *testing.T) {
	// Milestones declared out of offset order still evaluate and pick the
	// next item by ascending offset.
	tmpl := &schedule.Template{
		Domain: schedule.DomainVaccination,
		Milestones: []schedule.MilestoneDef{
			{ID: "penta-2", Offset: 4, Label: "Pentavalent 2nd dose"},
			{ID: "bcg", Offset: 0, Label: "BCG"},
			{ID: "penta-1", Offset: 2, Label: "Pentavalent 1st dose"},
		},
	}
	today := date(2024, time.June, 15)
	birth := date(2024, time.June, 1)

	view := schedule.Evaluate(tmpl, birth, today, nil, schedule.DefaultGracePolicy())

	require.NotNil(t, view.NextItem)
	assert.Equal(t, "bcg", view.NextItem.Milestone.ID)
	assert.Equal(t, "bcg", view.Items[0].Milestone.ID)
	assert.Equal(t, "penta-2", view.Items[2].Milestone.ID)

	// Next skips overdue and completed items and lands on the earliest
	// upcoming or due milestone.
	subjectID := uuid.New()
	laterBirth := date(2024, time.January, 15)
	records := []ledger.CompletionRecord{completedRecord(subjectID, "penta-1", today)}
	view = schedule.Evaluate(tmpl, laterBirth, today, records, schedule.DefaultGracePolicy())
	assert.Nil(t, view.NextItem) // bcg overdue, penta-1 completed, penta-2 overdue
}

func TestGestationalWeek(t *testing.T) {
	today := date(2024, time.June, 15)

	assert.Equal(t, 12, schedule.GestationalWeek(today.AddDate(0, 0, 28*7), today))
	assert.Equal(t, 40, schedule.GestationalWeek(today, today))
	assert.Equal(t, 0, schedule.GestationalWeek(today.AddDate(0, 0, 40*7), today))
	// Six days into gestation is still week zero.
	assert.Equal(t, 0, schedule.GestationalWeek(today.AddDate(0, 0, 40*7-6), today))
	// Before the estimated conception date the week goes negative rather
	// than wrapping.
	assert.Equal(t, -1, schedule.GestationalWeek(today.AddDate(0, 0, 40*7+3), today))
}
