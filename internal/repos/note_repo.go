package repos

import (
	"context"

	"meno/internal/domain"

	"github.com/jmoiron/sqlx"
)

type NoteRepo struct{ db *sqlx.DB }

func NewNoteRepo(db *sqlx.DB) *NoteRepo { return &NoteRepo{db: db} }

// ListForOwner returns the owner's notes in storage scan order.
func (r *NoteRepo) ListForOwner(ctx context.Context, userID int64) ([]domain.Note, error) {
	out := []domain.Note{}
	err := r.db.SelectContext(ctx, &out, `SELECT id,user_id,title,content FROM notes WHERE user_id=?`, userID)
	return out, err
}

func (r *NoteRepo) Create(ctx context.Context, userID int64, title, content *string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notes(user_id,title,content) VALUES(?,?,?)`, userID, title, content)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update reports how many rows matched id AND user_id; 0 means missing or foreign.
func (r *NoteRepo) Update(ctx context.Context, id, userID int64, title, content *string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title=?, content=? WHERE id=? AND user_id=?`, title, content, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *NoteRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *NoteRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM notes`)
	return n, err
}
