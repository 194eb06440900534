package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	jwtpkg "intern-match/internal/pkg/jwt"
	"intern-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockAccountRepo struct {
	byEmail map[string]repository.Account
	byID    map[uuid.UUID]repository.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{
		byEmail: map[string]repository.Account{},
		byID:    map[uuid.UUID]repository.Account{},
	}
}

func (m *mockAccountRepo) add(acc repository.Account) {
	m.byEmail[acc.Email] = acc
	m.byID[acc.ID] = acc
}

func (m *mockAccountRepo) FindByEmail(_ context.Context, email string) (repository.Account, error) {
	acc, ok := m.byEmail[email]
	if !ok {
		return repository.Account{}, repository.ErrAccountNotFound
	}
	return acc, nil
}

func (m *mockAccountRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Account, error) {
	acc, ok := m.byID[id]
	if !ok {
		return repository.Account{}, repository.ErrAccountNotFound
	}
	return acc, nil
}

func testAccount(t *testing.T, email, password, status string) repository.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return repository.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Status:       status,
	}
}

func newAuthFixture(t *testing.T) (*Auth, *mockAccountRepo) {
	t.Helper()
	repo := newMockAccountRepo()
	svc := jwtpkg.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	return NewAuthUsecase(repo, svc), repo
}

func TestLogin_Success(t *testing.T) {
	uc, repo := newAuthFixture(t)
	repo.add(testAccount(t, "ana@example.com", "s3cret", "active"))

	acc, access, refresh, err := uc.Login(context.Background(), LoginInput{Email: "  Ana@Example.com ", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens, got access=%q refresh=%q", access, refresh)
	}
	if acc.PasswordHash != "" {
		t.Fatalf("password hash leaked in login response")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, repo := newAuthFixture(t)
	repo.add(testAccount(t, "ana@example.com", "s3cret", "active"))

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAuthFixture(t)

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveAccount(t *testing.T) {
	uc, repo := newAuthFixture(t)
	repo.add(testAccount(t, "ana@example.com", "s3cret", "suspended"))

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "s3cret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_EmptyInput(t *testing.T) {
	uc, _ := newAuthFixture(t)

	if _, _, _, err := uc.Login(context.Background(), LoginInput{}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_Success(t *testing.T) {
	uc, repo := newAuthFixture(t)
	acc := testAccount(t, "ana@example.com", "s3cret", "active")
	repo.add(acc)

	_, _, refresh, err := uc.Login(context.Background(), LoginInput{Email: acc.Email, Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatalf("expected fresh token pair")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	uc, repo := newAuthFixture(t)
	acc := testAccount(t, "ana@example.com", "s3cret", "active")
	repo.add(acc)

	_, access, _, err := uc.Login(context.Background(), LoginInput{Email: acc.Email, Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_EmptyToken(t *testing.T) {
	uc, _ := newAuthFixture(t)

	if _, _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	uc, _ := newAuthFixture(t)

	if _, _, err := uc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
