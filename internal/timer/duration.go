package timer

// Bounds for a persisted countdown duration.
const (
	MinSeconds = 1
	MaxSeconds = 3600
)

// Total converts a minutes/seconds entry into a duration in seconds,
// treating negative components as zero and clamping the result to
// [MinSeconds, MaxSeconds].
func Total(minutes, seconds int) int {
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}

	total := minutes*60 + seconds
	if total < MinSeconds {
		return MinSeconds
	}
	if total > MaxSeconds {
		return MaxSeconds
	}
	return total
}
