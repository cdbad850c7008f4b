package domain

// Note is a user's text note. Title and Content are nullable in storage.
type Note struct {
	ID      int64   `db:"id" json:"id"`
	UserID  int64   `db:"user_id" json:"user_id"`
	Title   *string `db:"title" json:"title"`
	Content *string `db:"content" json:"content"`
}
