package model

// Attachment kinds.
const (
	KindImage = "image"
	KindAudio = "audio"
)

// Structural limits of the item forest.
const (
	// MaxDepth is the deepest nesting level (six levels, 0-indexed).
	MaxDepth = 5

	// MaxAttachments caps the number of attachments per item.
	MaxAttachments = 10

	// DefaultDurationSec is the countdown duration assigned to new items.
	DefaultDurationSec = 600
)

// List is a top-level named, colored container of items.
type List struct {
	ID    string `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Color string `json:"color" db:"color"`
	Order int    `json:"order" db:"sort_order"`
}

// Item is a single checklist node. Items form a forest per list via
// ParentID; a nil ParentID marks a root item (depth 0).
type Item struct {
	ID              string  `json:"id" db:"id"`
	ListID          string  `json:"list_id" db:"list_id"`
	ParentID        *string `json:"parent_id,omitempty" db:"parent_id"`
	Depth           int     `json:"depth" db:"depth"`
	Order           int     `json:"order" db:"sort_order"`
	Text            string  `json:"text" db:"text"`
	Completed       bool    `json:"completed" db:"completed"`
	TimerEnabled    bool    `json:"timer_enabled" db:"timer_enabled"`
	LastDurationSec int     `json:"last_duration_sec" db:"last_duration_sec"`

	// Attachments is populated by queries that join the attachments table.
	// Insertion order is preserved; the sequence is owned exclusively by
	// the item and is removed with it.
	Attachments []Attachment `json:"attachments,omitempty" db:"-"`
}

// Root reports whether the item sits at the top level of its list.
func (it Item) Root() bool {
	return it.ParentID == nil
}

// Attachment is an immutable media blob owned by exactly one item.
type Attachment struct {
	ID   string `json:"id" db:"id"`
	Kind string `json:"kind" db:"kind"`
	Name string `json:"name" db:"name"`
	Mime string `json:"mime" db:"mime"`
	Data []byte `json:"data" db:"data"`
}

// Setting is a process-wide key/value pair, created on first write and
// read at startup.
type Setting struct {
	Key   string `json:"key" db:"key"`
	Value string `json:"value" db:"value"`
}
