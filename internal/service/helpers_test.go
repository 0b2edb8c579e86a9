package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-keeper/models"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// seqIDs hands out "<prefix>-1", "<prefix>-2", ...
type seqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

var testReceipt = models.CaptureReceipt{
	Username:   "ann",
	Source:     "ios",
	DeviceID:   "phone-1",
	InputType:  models.InputAudio,
	RequestID:  "req-1",
	ReceivedAt: testNow,
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func memoOf(id string, category models.Category, text string) models.Memo {
	return models.Memo{
		ID:              id,
		Username:        "ann",
		TranscriptionID: "tr-1",
		Transcript:      text,
		Category:        category,
		Confidence:      0.9,
		Extracted:       models.Extracted{},
		Tags:            []string{},
	}
}
