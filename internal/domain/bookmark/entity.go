package bookmark

import "time"

// Bookmark is a saved folder shortcut
type Bookmark struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Path      string    `db:"path" json:"path"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
