package store_test

import (
	"context"
	"testing"

	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/tests/testutil"
)

func seedList(t *testing.T, s interface {
	PutList(context.Context, model.List) error
}, id string) {
	t.Helper()
	err := s.PutList(context.Background(), model.List{
		ID: id, Title: "Test", Color: "#4aa3ff", Order: 1,
	})
	if err != nil {
		t.Fatalf("seeding list: %v", err)
	}
}

func TestItemRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedList(t, s, "l1")

	parent := "p1"
	in := model.Item{
		ID:              "i1",
		ListID:          "l1",
		ParentID:        &parent,
		Depth:           2,
		Order:           7,
		Text:            "water the plants",
		Completed:       true,
		TimerEnabled:    true,
		LastDurationSec: 90,
	}
	if err := s.PutItem(ctx, in); err != nil {
		t.Fatalf("PutItem: %v", err)
	}

	items, err := s.GetItemsForList(ctx, "l1")
	if err != nil {
		t.Fatalf("GetItemsForList: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("item count = %d, want 1", len(items))
	}

	got := items[0]
	if got.ID != in.ID || got.Text != in.Text || got.Depth != in.Depth ||
		got.Order != in.Order || got.LastDurationSec != in.LastDurationSec {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, in)
	}
	if !got.Completed || !got.TimerEnabled {
		t.Errorf("flags lost: completed=%v timerEnabled=%v", got.Completed, got.TimerEnabled)
	}
	if got.ParentID == nil || *got.ParentID != parent {
		t.Errorf("ParentID = %v, want %q", got.ParentID, parent)
	}
}

func TestItemsOrderedBySortOrder(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedList(t, s, "l1")

	for _, it := range []model.Item{
		{ID: "c", ListID: "l1", Order: 3, Text: "c"},
		{ID: "a", ListID: "l1", Order: 1, Text: "a"},
		{ID: "b", ListID: "l1", Order: 2, Text: "b"},
	} {
		if err := s.PutItem(ctx, it); err != nil {
			t.Fatalf("PutItem %s: %v", it.ID, err)
		}
	}

	items, err := s.GetItemsForList(ctx, "l1")
	if err != nil {
		t.Fatalf("GetItemsForList: %v", err)
	}

	want := []string{"a", "b", "c"}
	for i, it := range items {
		if it.Text != want[i] {
			t.Fatalf("items[%d] = %q, want %q", i, it.Text, want[i])
		}
	}
}

func TestPutItemReplacesAttachmentSequence(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedList(t, s, "l1")

	it := model.Item{ID: "i1", ListID: "l1", Order: 1, Attachments: []model.Attachment{
		{ID: "a1", Kind: model.KindImage, Name: "first.jpg", Mime: "image/jpeg", Data: []byte{1}},
		{ID: "a2", Kind: model.KindAudio, Name: "second.ogg", Mime: "audio/ogg", Data: []byte{2}},
	}}
	if err := s.PutItem(ctx, it); err != nil {
		t.Fatalf("PutItem: %v", err)
	}

	// Rewriting the record with one attachment drops the other.
	it.Attachments = it.Attachments[1:]
	if err := s.PutItem(ctx, it); err != nil {
		t.Fatalf("PutItem rewrite: %v", err)
	}

	items, err := s.GetItemsForList(ctx, "l1")
	if err != nil {
		t.Fatalf("GetItemsForList: %v", err)
	}
	atts := items[0].Attachments
	if len(atts) != 1 {
		t.Fatalf("attachment count = %d, want 1", len(atts))
	}
	if atts[0].Name != "second.ogg" || atts[0].Kind != model.KindAudio {
		t.Errorf("kept attachment = %+v, want second.ogg", atts[0])
	}
}

func TestAttachmentsKeepInsertionOrder(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedList(t, s, "l1")

	it := model.Item{ID: "i1", ListID: "l1", Order: 1}
	for _, name := range []string{"z.jpg", "a.jpg", "m.jpg"} {
		it.Attachments = append(it.Attachments, model.Attachment{
			ID: "att-" + name, Kind: model.KindImage, Name: name, Data: []byte(name),
		})
	}
	if err := s.PutItem(ctx, it); err != nil {
		t.Fatalf("PutItem: %v", err)
	}

	items, err := s.GetItemsForList(ctx, "l1")
	if err != nil {
		t.Fatalf("GetItemsForList: %v", err)
	}

	want := []string{"z.jpg", "a.jpg", "m.jpg"}
	for i, a := range items[0].Attachments {
		if a.Name != want[i] {
			t.Fatalf("attachments[%d] = %q, want %q (insertion order lost)", i, a.Name, want[i])
		}
	}
}

func TestDeleteItemUnknownIDIsAcked(t *testing.T) {
	s := testutil.NewTestStore(t)

	if err := s.DeleteItem(context.Background(), "missing"); err != nil {
		t.Fatalf("DeleteItem on unknown id returned error: %v", err)
	}
}

func TestDeleteItemCascadesAttachments(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedList(t, s, "l1")

	it := model.Item{ID: "i1", ListID: "l1", Order: 1, Attachments: []model.Attachment{
		{ID: "a1", Kind: model.KindImage, Name: "x.jpg", Data: []byte{1}},
	}}
	if err := s.PutItem(ctx, it); err != nil {
		t.Fatalf("PutItem: %v", err)
	}
	if err := s.DeleteItem(ctx, "i1"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	// Re-inserting the same item must come back attachment-free.
	if err := s.PutItem(ctx, model.Item{ID: "i1", ListID: "l1", Order: 1}); err != nil {
		t.Fatalf("PutItem after delete: %v", err)
	}
	items, err := s.GetItemsForList(ctx, "l1")
	if err != nil {
		t.Fatalf("GetItemsForList: %v", err)
	}
	if n := len(items[0].Attachments); n != 0 {
		t.Fatalf("attachment count after cascade = %d, want 0", n)
	}
}
