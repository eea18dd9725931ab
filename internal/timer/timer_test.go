package timer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// collect drains the runner's event stream until the deadline, returning
// the received messages.
func collect(r *Runner, d time.Duration) []tea.Msg {
	var out []tea.Msg
	deadline := time.After(d)
	for {
		select {
		case msg := <-r.Events():
			out = append(out, msg)
		case <-deadline:
			return out
		}
	}
}

func countExpired(msgs []tea.Msg, itemID string) int {
	n := 0
	for _, msg := range msgs {
		if e, ok := msg.(ExpiredMsg); ok && e.ItemID == itemID {
			n++
		}
	}
	return n
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	r := NewRunner(10 * time.Millisecond)

	r.Start("a", 50*time.Millisecond)
	msgs := collect(r, 300*time.Millisecond)

	if got := countExpired(msgs, "a"); got != 1 {
		t.Fatalf("expiry count = %d, want 1", got)
	}
	if r.Running("a") {
		t.Error("countdown still registered after expiry")
	}
}

func TestStopBeforeExpirySuppressesSignal(t *testing.T) {
	r := NewRunner(10 * time.Millisecond)

	r.Start("a", 80*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	r.Stop("a")

	msgs := collect(r, 200*time.Millisecond)
	if got := countExpired(msgs, "a"); got != 0 {
		t.Fatalf("expiry count after stop = %d, want 0", got)
	}
}

func TestRestartSupersedesRunningCountdown(t *testing.T) {
	r := NewRunner(10 * time.Millisecond)

	r.Start("a", 40*time.Millisecond)
	r.Start("a", 150*time.Millisecond)

	// The first countdown's deadline passes well inside this window, but
	// only the superseding one may signal.
	msgs := collect(r, 400*time.Millisecond)
	if got := countExpired(msgs, "a"); got != 1 {
		t.Fatalf("expiry count after restart = %d, want 1", got)
	}
}

func TestCountdownsRunIndependently(t *testing.T) {
	r := NewRunner(10 * time.Millisecond)

	r.Start("a", 40*time.Millisecond)
	r.Start("b", 80*time.Millisecond)

	if got := r.ActiveCount(); got != 2 {
		t.Fatalf("active count = %d, want 2", got)
	}

	msgs := collect(r, 300*time.Millisecond)
	if got := countExpired(msgs, "a"); got != 1 {
		t.Errorf("expiry count for a = %d, want 1", got)
	}
	if got := countExpired(msgs, "b"); got != 1 {
		t.Errorf("expiry count for b = %d, want 1", got)
	}
}

func TestStopAllCancelsEverything(t *testing.T) {
	r := NewRunner(10 * time.Millisecond)

	r.Start("a", 60*time.Millisecond)
	r.Start("b", 60*time.Millisecond)
	r.StopAll()

	if got := r.ActiveCount(); got != 0 {
		t.Fatalf("active count after StopAll = %d, want 0", got)
	}

	msgs := collect(r, 200*time.Millisecond)
	if got := countExpired(msgs, "a") + countExpired(msgs, "b"); got != 0 {
		t.Fatalf("expiry count after StopAll = %d, want 0", got)
	}
}

func TestRemainingDerivedFromDeadline(t *testing.T) {
	r := NewRunner(10 * time.Millisecond)

	r.Start("a", 2*time.Second)
	rem, ok := r.Remaining("a")
	if !ok {
		t.Fatal("no countdown registered for a")
	}
	if rem != 2 {
		t.Fatalf("remaining = %d, want 2 (rounded up)", rem)
	}

	r.Stop("a")
	if _, ok := r.Remaining("a"); ok {
		t.Fatal("Remaining reported a stopped countdown")
	}
}

func TestRemainingSecondsRounding(t *testing.T) {
	now := time.Now()
	cases := []struct {
		left time.Duration
		want int
	}{
		{2500 * time.Millisecond, 3},
		{2 * time.Second, 2},
		{1 * time.Millisecond, 1},
		{0, 0},
		{-5 * time.Second, 0},
	}
	for _, tc := range cases {
		if got := remainingSeconds(now.Add(tc.left), now); got != tc.want {
			t.Errorf("remainingSeconds(+%v) = %d, want %d", tc.left, got, tc.want)
		}
	}
}
