package store_test

import (
	"context"
	"testing"

	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/tests/testutil"
)

func TestListRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	in := model.List{ID: "l1", Title: "Sport", Color: "#78d353", Order: 2}
	if err := s.PutList(ctx, in); err != nil {
		t.Fatalf("PutList: %v", err)
	}

	lists, err := s.GetAllLists(ctx)
	if err != nil {
		t.Fatalf("GetAllLists: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("list count = %d, want 1", len(lists))
	}
	if lists[0] != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", lists[0], in)
	}
}

func TestListsOrderedBySortOrder(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	for _, l := range []model.List{
		{ID: "b", Title: "Second", Order: 2},
		{ID: "a", Title: "First", Order: 1},
	} {
		if err := s.PutList(ctx, l); err != nil {
			t.Fatalf("PutList %s: %v", l.ID, err)
		}
	}

	lists, err := s.GetAllLists(ctx)
	if err != nil {
		t.Fatalf("GetAllLists: %v", err)
	}
	if lists[0].ID != "a" || lists[1].ID != "b" {
		t.Fatalf("lists out of order: %v", lists)
	}
}

func TestPutListEmptyIDRejected(t *testing.T) {
	s := testutil.NewTestStore(t)

	if err := s.PutList(context.Background(), model.List{Title: "nameless"}); err == nil {
		t.Fatal("expected error for empty list id, got nil")
	}
}

func TestDeleteListCascadesItems(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.PutList(ctx, model.List{ID: "l1", Title: "Doomed", Order: 1}); err != nil {
		t.Fatalf("PutList: %v", err)
	}
	if err := s.PutList(ctx, model.List{ID: "l2", Title: "Survivor", Order: 2}); err != nil {
		t.Fatalf("PutList: %v", err)
	}

	doomedItem := model.Item{ID: "i1", ListID: "l1", Order: 1, Attachments: []model.Attachment{
		{ID: "a1", Kind: model.KindImage, Name: "x.jpg", Data: []byte{1}},
	}}
	if err := s.PutItem(ctx, doomedItem); err != nil {
		t.Fatalf("PutItem: %v", err)
	}
	if err := s.PutItem(ctx, model.Item{ID: "i2", ListID: "l2", Order: 1}); err != nil {
		t.Fatalf("PutItem: %v", err)
	}

	if err := s.DeleteList(ctx, "l1"); err != nil {
		t.Fatalf("DeleteList: %v", err)
	}

	lists, err := s.GetAllLists(ctx)
	if err != nil {
		t.Fatalf("GetAllLists: %v", err)
	}
	if len(lists) != 1 || lists[0].ID != "l2" {
		t.Fatalf("lists after delete = %v, want only l2", lists)
	}

	gone, err := s.GetItemsForList(ctx, "l1")
	if err != nil {
		t.Fatalf("GetItemsForList: %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("items of deleted list = %d, want 0", len(gone))
	}

	kept, err := s.GetItemsForList(ctx, "l2")
	if err != nil {
		t.Fatalf("GetItemsForList: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("items of surviving list = %d, want 1", len(kept))
	}
}
