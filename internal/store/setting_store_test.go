package store_test

import (
	"context"
	"testing"

	"github.com/fweber/routine/tests/testutil"
)

func TestGetSettingFallback(t *testing.T) {
	s := testutil.NewTestStore(t)

	got, err := s.GetSetting(context.Background(), "alarm_sound", "soft")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if got != "soft" {
		t.Fatalf("unset setting = %q, want fallback %q", got, "soft")
	}
}

func TestSetSettingOverwrites(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.SetSetting(ctx, "alarm_sound", "soft"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := s.SetSetting(ctx, "alarm_sound", "chime"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}

	got, err := s.GetSetting(ctx, "alarm_sound", "soft")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if got != "chime" {
		t.Fatalf("setting = %q, want %q", got, "chime")
	}
}
