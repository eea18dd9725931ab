package alarm

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestRingWritesBell(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell("soft", &buf)

	b.Ring()
	if got := buf.String(); got != "\a" {
		t.Fatalf("output = %q, want %q", got, "\a")
	}
}

func TestRingSwallowsWriteErrors(t *testing.T) {
	b := NewBell("soft", failingWriter{})

	// Must not panic; the alarm is best-effort.
	b.Ring()
}

func TestSoundName(t *testing.T) {
	b := NewBell("chime", nil)
	if got := b.Sound(); got != "chime" {
		t.Fatalf("Sound() = %q, want %q", got, "chime")
	}
}
