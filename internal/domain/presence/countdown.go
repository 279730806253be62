package presence

import (
	"fmt"
	"time"
)

// Urgency buckets how soon a future pin's arrival is. Label and urgency are
// derived from the same minute difference so they can never drift apart.
type Urgency string

const (
	// UrgencyImminent is under five minutes away (or already arrived).
	UrgencyImminent Urgency = "imminent"
	// UrgencySoon is five to thirty minutes away.
	UrgencySoon Urgency = "soon"
	// UrgencyUpcoming is thirty minutes to four hours away.
	UrgencyUpcoming Urgency = "upcoming"
	// UrgencyLater is four hours or more away.
	UrgencyLater Urgency = "later"
)

// Urgency boundaries in minutes.
const (
	imminentMins = 5
	soonMins     = 30
	upcomingMins = 4 * 60
)

// Countdown is the derived time-to-arrival view of a future pin.
type Countdown struct {
	Text    string  `json:"text"`
	Urgency Urgency `json:"urgency"`
	Hours   int     `json:"hours"`
	Days    int     `json:"days"`
}

// Classify computes the countdown for an arrival time at the given instant.
// Arrivals at or before now read as "Now!"; for the time-since framing used on
// decayed pins use SinceLabel instead.
func Classify(arrival, now time.Time) Countdown {
	diff := arrival.Sub(now)
	if diff <= 0 {
		return Countdown{Text: "Now!", Urgency: UrgencyImminent}
	}

	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	return Countdown{
		Text:    countdownText(mins, hours, days),
		Urgency: urgencyForMinutes(mins),
		Hours:   hours,
		Days:    days,
	}
}

// countdownText picks the most specific label: days, then hours, then minutes,
// with anything at five minutes or under collapsing to "Now!".
func countdownText(mins, hours, days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case mins > imminentMins:
		return fmt.Sprintf("%dm", mins)
	default:
		return "Now!"
	}
}

func urgencyForMinutes(mins int) Urgency {
	switch {
	case mins < imminentMins:
		return UrgencyImminent
	case mins < soonMins:
		return UrgencySoon
	case mins < upcomingMins:
		return UrgencyUpcoming
	default:
		return UrgencyLater
	}
}

// SinceLabel renders how long ago an instant was, the framing used when a
// ghost or expired pin still shows its arrival: "Nd ago", "Nh ago", or
// "just now" under an hour.
func SinceLabel(then, now time.Time) string {
	diff := now.Sub(then)
	if diff < 0 {
		diff = 0
	}

	days := int(diff.Hours()) / 24
	if days > 0 {
		return fmt.Sprintf("%dd ago", days)
	}

	hours := int(diff.Hours())
	if hours > 0 {
		return fmt.Sprintf("%dh ago", hours)
	}

	return "just now"
}
