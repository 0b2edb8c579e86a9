// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// recordingWorker logs Start and Stop calls into a shared slice.
type recordingWorker struct {
	id  string
	log *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.log = append(*r.log, "start "+r.id)
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, "stop "+r.id)
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "a", log: &log},
		&recordingWorker{id: "b", log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	expected := []string{"start a", "start b", "stop b", "stop a"}
	if len(log) != len(expected) {
		t.Fatalf("expected %d calls, got %v", len(expected), log)
	}
	for i, v := range expected {
		if log[i] != v {
			t.Errorf("expected log[%d]=%q, got %q", i, v, log[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()

	if ws.Len() != 0 {
		t.Errorf("expected no workers, got %d", ws.Len())
	}
}

func TestWorkers_ZeroValue(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}
