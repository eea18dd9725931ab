// Package alarm raises the countdown expiry signal. The signal is
// best-effort: a failure to ring is swallowed, never surfaced, since the
// countdown's completion is the primary signal and has already happened.
package alarm

import (
	"io"
	"os"
)

// Bell rings by writing the terminal bell to its output.
type Bell struct {
	sound string
	out   io.Writer
}

// NewBell creates a Bell for the configured alarm sound name. A nil
// output defaults to stdout.
func NewBell(sound string, out io.Writer) *Bell {
	if out == nil {
		out = os.Stdout
	}
	return &Bell{sound: sound, out: out}
}

// Sound returns the configured alarm sound name.
func (b *Bell) Sound() string {
	return b.sound
}

// Ring emits the alarm. Write failures are ignored.
func (b *Bell) Ring() {
	_, _ = b.out.Write([]byte("\a"))
}
