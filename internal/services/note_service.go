package services

import (
	"context"

	"meno/internal/domain"
	"meno/internal/repos"
)

// NoteService scopes every note operation to the caller's user id.
type NoteService struct {
	Repo *repos.NoteRepo
}

func NewNoteService(r *repos.NoteRepo) *NoteService { return &NoteService{Repo: r} }

func (s *NoteService) List(ctx context.Context, owner int64) ([]domain.Note, error) {
	return s.Repo.ListForOwner(ctx, owner)
}

func (s *NoteService) Create(ctx context.Context, owner int64, title, content *string) (int64, error) {
	return s.Repo.Create(ctx, owner, title, content)
}

// Update does not tell a missing note apart from someone else's.
func (s *NoteService) Update(ctx context.Context, id, owner int64, title, content *string) error {
	n, err := s.Repo.Update(ctx, id, owner, title, content)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFoundOrForbidden
	}
	return nil
}

func (s *NoteService) Delete(ctx context.Context, id, owner int64) error {
	n, err := s.Repo.Delete(ctx, id, owner)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFoundOrForbidden
	}
	return nil
}
