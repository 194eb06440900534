package usecase

import (
	"context"
	"errors"
	"strings"

	"intern-match/internal/pkg/jwt"
	"intern-match/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (repository.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	accounts repository.AccountRepository
	jwt      jwt.Service
}

func NewAuthUsecase(accounts repository.AccountRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{accounts: accounts, jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.Account, string, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return repository.Account{}, "", "", ErrInvalidCredentials
	}

	acc, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Account{}, "", "", ErrInvalidCredentials
		}
		return repository.Account{}, "", "", ErrInternal
	}
	if acc.Status != "active" {
		return repository.Account{}, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return repository.Account{}, "", "", ErrInvalidCredentials
	}

	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email)
	if err != nil {
		return repository.Account{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return repository.Account{}, "", "", ErrInternal
	}

	acc.PasswordHash = ""
	return acc, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	acc, err := u.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return "", "", ErrInternal
	}

	return access, newRefresh, nil
}
