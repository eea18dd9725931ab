package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
//
// There is intentionally no foreign key from items.parent_id to items.id:
// deep deletion is a tree-engine concern (the engine computes the descendant
// closure itself), and list deletion cascades at the gateway level inside
// DeleteList's transaction.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS lists (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_lists_sort_order ON lists(sort_order);

CREATE TABLE IF NOT EXISTS items (
	id                TEXT PRIMARY KEY,
	list_id           TEXT NOT NULL,
	parent_id         TEXT,
	depth             INTEGER NOT NULL DEFAULT 0 CHECK(depth BETWEEN 0 AND 5),
	sort_order        INTEGER NOT NULL DEFAULT 0,
	text              TEXT NOT NULL DEFAULT '',
	completed         INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
	timer_enabled     INTEGER NOT NULL DEFAULT 0 CHECK(timer_enabled IN (0, 1)),
	last_duration_sec INTEGER NOT NULL DEFAULT 600 CHECK(last_duration_sec >= 0)
);

CREATE INDEX IF NOT EXISTS idx_items_list ON items(list_id);
CREATE INDEX IF NOT EXISTS idx_items_parent ON items(parent_id);
CREATE INDEX IF NOT EXISTS idx_items_list_order ON items(list_id, sort_order);

CREATE TABLE IF NOT EXISTS attachments (
	id       TEXT PRIMARY KEY,
	item_id  TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
	kind     TEXT NOT NULL CHECK(kind IN ('image', 'audio')),
	name     TEXT NOT NULL DEFAULT '',
	mime     TEXT NOT NULL DEFAULT '',
	data     BLOB NOT NULL,
	position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_attachments_item ON attachments(item_id);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT ''
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
