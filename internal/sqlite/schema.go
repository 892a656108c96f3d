package sqlite

// Schema DDL for the session database.
const (
	createAnimations = `CREATE TABLE animations (
    animation_id TEXT PRIMARY KEY,
    animation_type TEXT NOT NULL,
    position INTEGER NOT NULL,
    label TEXT NOT NULL,
    target_selector TEXT NOT NULL,
    body TEXT NOT NULL,
    revision INTEGER NOT NULL DEFAULT 1
);`

	createAnimationsPositionIndex = `CREATE INDEX idx_animations_position ON animations(position);`
)

// schemaDDL lists the statements run on Attach, in order.
var schemaDDL = []string{
	createAnimations,
	createAnimationsPositionIndex,
}
