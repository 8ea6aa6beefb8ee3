package engine

// Timer fires once per Interval of accumulated input. Fed frame time it is a
// periodic clock; fed distance it is an odometer.
type Timer struct {
	Interval float64
	acc      float64
}

// NewTimer returns a timer firing every interval units.
func NewTimer(interval float64) Timer {
	return Timer{Interval: interval}
}

// Advance adds amount and returns how many whole intervals elapsed.
// A non-positive interval never fires.
func (t *Timer) Advance(amount float64) int {
	if t.Interval <= 0 || amount <= 0 {
		return 0
	}

	t.acc += amount
	fired := int(t.acc / t.Interval)
	t.acc -= float64(fired) * t.Interval
	return fired
}

// Reset drops any partial interval.
func (t *Timer) Reset() {
	t.acc = 0
}
