package handlers

import (
	"meno/internal/config"
	"meno/internal/metrics"
	"meno/internal/repos"
	"meno/internal/services"

	"github.com/jmoiron/sqlx"
)

const apiBase = "/api"

type Deps struct {
	AuthHandler *AuthHandler
	NoteHandler *NoteHandler
	PageHandler *PageHandler
	Tokens      *services.TokenService
	Metrics     *metrics.Metrics
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	noteRepo := repos.NewNoteRepo(db)

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	noteSvc := services.NewNoteService(noteRepo)

	m := metrics.New()
	m.WatchDB(db)

	return &Deps{
		AuthHandler: &AuthHandler{Auth: authSvc, Metrics: m},
		NoteHandler: &NoteHandler{Notes: noteSvc, Metrics: m},
		PageHandler: &PageHandler{APIBase: apiBase},
		Tokens:      tokens,
		Metrics:     m,
	}
}
