// Package metrics publishes pipeline counters through expvar. They are
// served under /debug/vars.
package metrics

import "expvar"

var (
	// PlannerSkipped counts memos that matched no enrichment route.
	PlannerSkipped = expvar.NewInt("planner_skipped")

	// TasksPlanned counts enrichment tasks by kind.
	TasksPlanned = expvar.NewMap("enrichment_tasks_planned")

	// EnrichmentOutcomes counts handled tasks by status (completed, skipped, failed).
	EnrichmentOutcomes = expvar.NewMap("enrichment_outcomes")

	// CapturesProcessed counts successful captures by input type.
	CapturesProcessed = expvar.NewMap("captures_processed")

	// CaptureFailures counts failed captures by the stage that failed.
	CaptureFailures = expvar.NewMap("capture_failures")

	// MemosArchived counts memos auto-archived as garbage at insert time.
	MemosArchived = expvar.NewInt("memos_auto_archived")
)

// MapValue reads one counter of m, zero when absent.
func MapValue(m *expvar.Map, key string) int64 {
	if v, ok := m.Get(key).(*expvar.Int); ok {
		return v.Value()
	}
	return 0
}
