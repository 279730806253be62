package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		until       time.Duration
		wantText    string
		wantUrgency Urgency
		wantHours   int
		wantDays    int
	}{
		{"already arrived", -time.Minute, "Now!", UrgencyImminent, 0, 0},
		{"arriving this instant", 0, "Now!", UrgencyImminent, 0, 0},
		{"three minutes out", 3 * time.Minute, "Now!", UrgencyImminent, 0, 0},
		{"ten minutes out", 10 * time.Minute, "10m", UrgencySoon, 0, 0},
		{"twenty minutes out", 20 * time.Minute, "20m", UrgencySoon, 0, 0},
		{"forty five minutes out", 45 * time.Minute, "45m", UrgencyUpcoming, 0, 0},
		{"two hours out", 2 * time.Hour, "2h", UrgencyUpcoming, 2, 0},
		{"five hours out", 5 * time.Hour, "5h", UrgencyLater, 5, 0},
		{"tomorrow", 30 * time.Hour, "1d", UrgencyLater, 30, 1},
		{"next week", 6 * 24 * time.Hour, "6d", UrgencyLater, 144, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(now.Add(tt.until), now)

			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantUrgency, got.Urgency)
			assert.Equal(t, tt.wantHours, got.Hours)
			assert.Equal(t, tt.wantDays, got.Days)
		})
	}
}

func TestClassify_UrgencyBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Boundaries are half-open: exactly five minutes is soon, not imminent.
	assert.Equal(t, UrgencySoon, Classify(now.Add(5*time.Minute), now).Urgency)
	assert.Equal(t, UrgencyUpcoming, Classify(now.Add(30*time.Minute), now).Urgency)
	assert.Equal(t, UrgencyLater, Classify(now.Add(4*time.Hour), now).Urgency)
}

func TestSinceLabel(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"moments ago", 10 * time.Minute, "just now"},
		{"under an hour", 59 * time.Minute, "just now"},
		{"hours ago", 3 * time.Hour, "3h ago"},
		{"yesterday", 26 * time.Hour, "1d ago"},
		{"days ago", 5 * 24 * time.Hour, "5d ago"},
		{"future instant clamps to now", -time.Minute, "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SinceLabel(now.Add(-tt.ago), now))
		})
	}
}
