package sender

import "time"

// Slot is the dispatch point of one item.
type Slot struct {
	Index int
	// At is the offset from job start at which the item is dispatched.
	At time.Duration
	// Remaining is the countdown shown when the item is dispatched.
	Remaining time.Duration
}

// Schedule is the full pacing plan of a job.
type Schedule struct {
	Total time.Duration
	Slots []Slot
}

// Plan spreads n items over n*delay: item i goes out after (i+1)*delay, so the first
// dispatch waits one full delay and the last one lands when the countdown hits zero.
func Plan(n int, delay time.Duration) Schedule {
	if n < 0 {
		n = 0
	}
	if delay < 0 {
		delay = 0
	}
	total := time.Duration(n) * delay
	slots := make([]Slot, n)
	for i := range slots {
		at := time.Duration(i+1) * delay
		slots[i] = Slot{Index: i, At: at, Remaining: total - at}
	}
	return Schedule{Total: total, Slots: slots}
}
