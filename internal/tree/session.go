// Package tree owns the in-memory forest of items for one open list:
// sibling ordering, depth, reparenting, cascading delete, and the visible
// sequence. All mutations write through the persistence gateway, and
// structural mutations reload the full item set afterwards so the cache
// never diverges from the durable store.
package tree

import (
	"context"
	"fmt"
	"sort"

	"github.com/fweber/routine/internal/model"
	"github.com/fweber/routine/internal/store"
	"github.com/fweber/routine/internal/timer"
)

// rootKey indexes the children of the (virtual) forest root.
const rootKey = ""

// Patch is a partial item update. Nil fields are left unchanged.
type Patch struct {
	Text            *string
	Completed       *bool
	TimerEnabled    *bool
	LastDurationSec *int
}

// Session is the tree engine for one open list. It is owned by the active
// view: callers sequence operations themselves and must not issue a second
// mutation against the same item before the first one returned.
type Session struct {
	store store.Store
	list  model.List

	items    []model.Item
	byID     map[string]*model.Item
	children map[string][]*model.Item

	showCompleted bool
}

// Open loads the list with the given id and its items, and builds the
// session's parent index.
func Open(ctx context.Context, st store.Store, listID string) (*Session, error) {
	lists, err := st.GetAllLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lists: %w", err)
	}

	var list *model.List
	for i := range lists {
		if lists[i].ID == listID {
			list = &lists[i]
			break
		}
	}
	if list == nil {
		return nil, fmt.Errorf("list %s not found", listID)
	}

	s := &Session{store: st, list: *list}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory item set with the persisted one and
// rebuilds the parent index. The gateway already orders items, but the
// sort is repeated here defensively.
func (s *Session) Reload(ctx context.Context) error {
	items, err := s.store.GetItemsForList(ctx, s.list.ID)
	if err != nil {
		return fmt.Errorf("loading items for list %s: %w", s.list.ID, err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})

	s.items = items
	s.reindex()
	return nil
}

// reindex rebuilds the id arena and the parent -> ordered children index.
func (s *Session) reindex() {
	s.byID = make(map[string]*model.Item, len(s.items))
	s.children = make(map[string][]*model.Item)

	for i := range s.items {
		it := &s.items[i]
		s.byID[it.ID] = it
		key := parentKey(it.ParentID)
		s.children[key] = append(s.children[key], it)
	}
}

// List returns the open list.
func (s *Session) List() model.List {
	return s.list
}

// Items returns every item of the open list in ascending order.
func (s *Session) Items() []model.Item {
	return s.items
}

// Get returns the item with the given id, if present.
func (s *Session) Get(id string) (model.Item, bool) {
	it, ok := s.byID[id]
	if !ok {
		return model.Item{}, false
	}
	return *it, true
}

// ShowCompleted reports whether completed items appear in Visible.
func (s *Session) ShowCompleted() bool {
	return s.showCompleted
}

// SetShowCompleted toggles completed items in the visible sequence.
func (s *Session) SetShowCompleted(show bool) {
	s.showCompleted = show
}

// Visible returns the ordered sequence of items to display: a pre-order,
// depth-first walk from the root, children ascending by order. A completed
// item is skipped when completed items are hidden, but its subtree is still
// traversed, so non-completed descendants stay visible on their own.
func (s *Session) Visible() []model.Item {
	var out []model.Item
	var walk func(key string)
	walk = func(key string) {
		for _, it := range s.children[key] {
			if !it.Completed || s.showCompleted {
				out = append(out, *it)
			}
			walk(it.ID)
		}
	}
	walk(rootKey)
	return out
}

// Create inserts a new empty item under parentID (nil for the root level)
// at the end of its sibling set and persists it. The given depth is
// clamped to the maximum nesting level; callers derive it from the parent
// or the sibling being extended.
func (s *Session) Create(
	ctx context.Context,
	parentID *string,
	depth int,
) (model.Item, error) {
	if depth > model.MaxDepth {
		depth = model.MaxDepth
	}
	if depth < 0 {
		depth = 0
	}

	it := model.Item{
		ID:              store.NewID(),
		ListID:          s.list.ID,
		ParentID:        parentID,
		Depth:           depth,
		Order:           s.nextOrderFor(parentID),
		LastDurationSec: model.DefaultDurationSec,
	}

	if err := s.store.PutItem(ctx, it); err != nil {
		return model.Item{}, fmt.Errorf("creating item: %w", err)
	}
	if err := s.Reload(ctx); err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// Update merges the patch into the item and persists the result. Unknown
// ids are a silent no-op. The in-memory item is only replaced after the
// write succeeds, so a failed write leaves prior state intact.
func (s *Session) Update(ctx context.Context, id string, p Patch) error {
	it, ok := s.byID[id]
	if !ok {
		return nil
	}

	merged := *it
	if p.Text != nil {
		merged.Text = *p.Text
	}
	if p.Completed != nil {
		merged.Completed = *p.Completed
	}
	if p.TimerEnabled != nil {
		merged.TimerEnabled = *p.TimerEnabled
	}
	if p.LastDurationSec != nil {
		merged.LastDurationSec = *p.LastDurationSec
	}

	if err := s.store.PutItem(ctx, merged); err != nil {
		return fmt.Errorf("updating item %s: %w", id, err)
	}
	*it = merged
	return nil
}

// EditDuration validates and clamps a minutes/seconds countdown entry and
// persists it as the item's duration. A currently running countdown for
// the item is not affected.
func (s *Session) EditDuration(ctx context.Context, id string, minutes, seconds int) error {
	total := timer.Total(minutes, seconds)
	return s.Update(ctx, id, Patch{LastDurationSec: &total})
}

// DeleteDeep removes the item and every transitive descendant. The
// closure is computed by fixed-point expansion over the parent relation,
// so the result does not depend on the order items are discovered in.
func (s *Session) DeleteDeep(ctx context.Context, id string) error {
	doomed := map[string]bool{id: true}
	for changed := true; changed; {
		changed = false
		for i := range s.items {
			it := &s.items[i]
			if it.ParentID != nil && doomed[*it.ParentID] && !doomed[it.ID] {
				doomed[it.ID] = true
				changed = true
			}
		}
	}

	for did := range doomed {
		if err := s.store.DeleteItem(ctx, did); err != nil {
			return fmt.Errorf("deleting item %s: %w", did, err)
		}
	}

	return s.Reload(ctx)
}

// Indent nests the item under its immediately preceding sibling. It is a
// no-op when the item is the first of its siblings, already at the maximum
// depth, or unknown.
func (s *Session) Indent(ctx context.Context, id string) error {
	it, ok := s.byID[id]
	if !ok {
		return nil
	}

	sibs := s.children[parentKey(it.ParentID)]
	idx := indexOf(sibs, id)
	if idx <= 0 || it.Depth >= model.MaxDepth {
		return nil
	}

	return s.reparent(ctx, it, sibs[idx-1])
}

// Outdent promotes the item one level, making it a sibling of its current
// parent. It is a no-op at depth 0 or for unknown ids.
func (s *Session) Outdent(ctx context.Context, id string) error {
	it, ok := s.byID[id]
	if !ok {
		return nil
	}
	if it.Depth == 0 || it.ParentID == nil {
		return nil
	}

	var newParent *model.Item
	if parent, ok := s.byID[*it.ParentID]; ok && parent.ParentID != nil {
		newParent = s.byID[*parent.ParentID]
	}

	return s.reparent(ctx, it, newParent)
}

// Move swaps the item with its neighbor in the visible sibling sequence:
// delta > 0 moves it one slot down, delta < 0 one slot up. The swap only
// happens within the same sibling group; at the edges it is a no-op.
func (s *Session) Move(ctx context.Context, id string, delta int) error {
	it, ok := s.byID[id]
	if !ok || delta == 0 {
		return nil
	}

	var sibs []model.Item
	for _, v := range s.Visible() {
		if sameParent(v.ParentID, it.ParentID) {
			sibs = append(sibs, v)
		}
	}

	idx := -1
	for i := range sibs {
		if sibs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	dir := 1
	if delta < 0 {
		dir = -1
	}
	nidx := idx + dir
	if nidx < 0 || nidx >= len(sibs) {
		return nil
	}

	a, b := sibs[idx], sibs[nidx]
	a.Order, b.Order = b.Order, a.Order

	if err := s.store.PutItem(ctx, a); err != nil {
		return fmt.Errorf("reordering item %s: %w", a.ID, err)
	}
	if err := s.store.PutItem(ctx, b); err != nil {
		return fmt.Errorf("reordering item %s: %w", b.ID, err)
	}

	return s.Reload(ctx)
}

// AddAttachment appends the attachment to the item and persists the
// record. Once the item holds the maximum number of attachments, new ones
// are silently dropped; existing attachments are never evicted. Unknown
// ids are a silent no-op.
func (s *Session) AddAttachment(
	ctx context.Context,
	itemID string,
	att model.Attachment,
) error {
	it, ok := s.byID[itemID]
	if !ok {
		return nil
	}
	if len(it.Attachments) >= model.MaxAttachments {
		return nil
	}

	if att.ID == "" {
		att.ID = store.NewID()
	}

	merged := *it
	merged.Attachments = append(
		append([]model.Attachment(nil), it.Attachments...), att,
	)

	if err := s.store.PutItem(ctx, merged); err != nil {
		return fmt.Errorf("attaching to item %s: %w", itemID, err)
	}
	return s.Reload(ctx)
}

// reparent moves the item under newParent (nil for the root level),
// recomputing depth from the new parent and appending it to the new
// sibling set. A move that would make the item its own ancestor is
// rejected as a no-op without a persistence write.
func (s *Session) reparent(
	ctx context.Context,
	it *model.Item,
	newParent *model.Item,
) error {
	if s.wouldCycle(it.ID, newParent) {
		return nil
	}

	var pid *string
	depth := 0
	if newParent != nil {
		pid = &newParent.ID
		depth = newParent.Depth + 1
		if depth > model.MaxDepth {
			depth = model.MaxDepth
		}
	}

	moved := *it
	moved.ParentID = pid
	moved.Depth = depth
	moved.Order = s.nextOrderFor(pid)

	if err := s.store.PutItem(ctx, moved); err != nil {
		return fmt.Errorf("reparenting item %s: %w", it.ID, err)
	}
	return s.Reload(ctx)
}

// wouldCycle walks the ancestor chain of the candidate parent up to the
// root and reports whether the moved item appears in it.
func (s *Session) wouldCycle(movedID string, candidate *model.Item) bool {
	for cur := candidate; cur != nil; {
		if cur.ID == movedID {
			return true
		}
		if cur.ParentID == nil {
			return false
		}
		cur = s.byID[*cur.ParentID]
	}
	return false
}

// nextOrderFor returns one past the maximum order in the sibling set of
// parentID, or 1 when the set is empty.
func (s *Session) nextOrderFor(parentID *string) int {
	sibs := s.children[parentKey(parentID)]
	if len(sibs) == 0 {
		return 1
	}

	max := sibs[0].Order
	for _, sib := range sibs[1:] {
		if sib.Order > max {
			max = sib.Order
		}
	}
	return max + 1
}

func parentKey(parentID *string) string {
	if parentID == nil {
		return rootKey
	}
	return *parentID
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func indexOf(sibs []*model.Item, id string) int {
	for i, sib := range sibs {
		if sib.ID == id {
			return i
		}
	}
	return -1
}
