// Package slot defines the canonical grid of bookable appointment times.
// Every doctor shares the same grid on every business day; there is no
// per-doctor or per-day customization.
package slot

import "time"

const (
	// Business day boundaries in 24-hour clock. Slots start at openingHour
	// and step by interval; the last slot begins before closingHour.
	openingHour = 9
	closingHour = 17

	interval = 30 * time.Minute

	// Label is the wall-clock format used everywhere a slot crosses a
	// boundary: storage, API responses, booking requests.
	labelFormat = "03:04 PM"
)

// Generate returns the full ordered list of slot labels for one business
// day: "09:00 AM" through "04:30 PM" in 30-minute steps, 16 labels total.
// Deterministic and side-effect free.
func Generate() []string {
	var labels []string
	day := time.Date(0, time.January, 1, openingHour, 0, 0, 0, time.UTC)
	end := time.Date(0, time.January, 1, closingHour, 0, 0, 0, time.UTC)
	for t := day; t.Before(end); t = t.Add(interval) {
		labels = append(labels, t.Format(labelFormat))
	}
	return labels
}

// Subtract returns the labels of all that do not appear in taken,
// preserving the order of all.
func Subtract(all []string, taken []string) []string {
	if len(taken) == 0 {
		return all
	}
	occupied := make(map[string]struct{}, len(taken))
	for _, label := range taken {
		occupied[label] = struct{}{}
	}
	free := make([]string, 0, len(all))
	for _, label := range all {
		if _, ok := occupied[label]; !ok {
			free = append(free, label)
		}
	}
	return free
}

// IsValid reports whether label is one of the canonical grid labels.
func IsValid(label string) bool {
	for _, l := range Generate() {
		if l == label {
			return true
		}
	}
	return false
}
