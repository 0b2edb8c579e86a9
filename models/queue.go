// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QueueJobStatus tracks a dispatched enrichment task.
type QueueJobStatus string

const (
	QueueJobPending   QueueJobStatus = "pending"
	QueueJobCompleted QueueJobStatus = "completed"
	QueueJobSkipped   QueueJobStatus = "skipped"
	QueueJobFailed    QueueJobStatus = "failed"
)

// QueueJob is the observable record of one dispatched enrichment task.
type QueueJob struct {
	ID        string         `json:"id"`
	Type      EnrichmentKind `json:"type"`
	MemoID    string         `json:"memoId"`
	Payload   EnrichmentTask `json:"payload"`
	Status    QueueJobStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
