package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meno/internal/domain"
	"meno/internal/repos"
	"meno/internal/validate"

	"golang.org/x/crypto/bcrypt"
)

type SignupInput struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type AuthService struct {
	Users      *repos.UserRepo
	Tokens     *TokenService
	BcryptCost int
}

func NewAuthService(users *repos.UserRepo, tokens *TokenService, cost int) *AuthService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{Users: users, Tokens: tokens, BcryptCost: cost}
}

// Signup stores a new user with a bcrypt hash of the password.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (int64, error) {
	missing, err := validate.Struct(in)
	if err != nil {
		return 0, err
	}
	if len(missing) > 0 {
		return 0, ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.BcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	id, err := s.Users.Create(ctx, &domain.User{
		FullName: in.FullName,
		Email:    in.Email,
		Hash:     string(hash),
		Role:     in.Role,
	})
	if errors.Is(err, repos.ErrDuplicate) {
		return 0, ErrConflict
	}
	return id, err
}

// Login checks the password and mints a session token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrBadCreds
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	tok, err := s.Tokens.Issue(u.Claims())
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}
