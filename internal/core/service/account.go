package service

import (
	"context"
	"fmt"

	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/core/domain"
	"github.com/yndnr/teeline-go/internal/core/validation"
	"github.com/yndnr/teeline-go/internal/telemetry/logger"
)

// SessionClient is the transport AccountService needs.
type SessionClient interface {
	Sender
	// ResetCookies forgets the transport-level session.
	ResetCookies() error
}

// AccountService runs the sign-in and profile flows against a Store.
type AccountService struct {
	client SessionClient
	store  *Store
	logger logger.Logger
}

// NewAccountService creates an AccountService. A nil logger discards.
func NewAccountService(client SessionClient, store *Store, l logger.Logger) *AccountService {
	if l == nil {
		l = logger.NewNop()
	}
	return &AccountService{client: client, store: store, logger: l}
}

// Store returns the store the service writes to.
func (s *AccountService) Store() *Store {
	return s.store
}

// Login signs in, stores the session, then loads and stores the account.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.Account, error) {
	if err := validation.Check(validation.FieldUsername, username); err != nil {
		return domain.Account{}, err
	}
	if err := validation.Check(validation.FieldPassword, password); err != nil {
		return domain.Account{}, err
	}

	req := api.NewCreate(api.SessionCreatePath(username, domain.HashPassword(password)))
	resp, err := s.client.Send(ctx, req)
	if err != nil {
		return domain.Account{}, fmt.Errorf("login: %w", err)
	}
	if err := expectStatus(resp, domain.StatusSessionCreated); err != nil {
		return domain.Account{}, err
	}

	hash, _ := resp.String("session_hash")
	session, err := domain.NewSession(hash)
	if err != nil {
		return domain.Account{}, err
	}
	s.store.SetSession(&session)
	s.logger.WithContext(ctx).Info("session created", "username", username)

	return s.RefreshAccount(ctx)
}

// Register creates an account and returns the service's message. It does
// not sign in.
func (s *AccountService) Register(ctx context.Context, username, password, email string) (string, error) {
	if err := validation.Check(validation.FieldUsername, username); err != nil {
		return "", err
	}
	if err := validation.Check(validation.FieldPassword, password); err != nil {
		return "", err
	}
	if err := validation.Check(validation.FieldEmail, email); err != nil {
		return "", err
	}

	req := api.NewCreate(api.AccountCreatePath(username, domain.HashPassword(password), email))
	resp, err := s.client.Send(ctx, req)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if err := expectStatus(resp, domain.StatusAccountCreated); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// RefreshAccount loads the signed-in account and replaces the stored one.
func (s *AccountService) RefreshAccount(ctx context.Context) (domain.Account, error) {
	if _, ok := s.store.Session(); !ok {
		return domain.Account{}, domain.ErrNoSession
	}
	// The service only knows totals that have been synced.
	s.store.WaitSync()

	resp, err := s.client.Send(ctx, api.NewFetch(api.AccountPath()))
	if err != nil {
		return domain.Account{}, fmt.Errorf("fetch account: %w", err)
	}
	if err := expectStatus(resp, domain.StatusOK); err != nil {
		return domain.Account{}, err
	}

	var account domain.Account
	if err := resp.DecodeBody(&account); err != nil {
		return domain.Account{}, fmt.Errorf("fetch account: %w", err)
	}
	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}

	s.store.SetAccount(&account)
	return account, nil
}

// UpdateUsername renames the account and signs out.
func (s *AccountService) UpdateUsername(ctx context.Context, username string) (string, error) {
	if err := validation.Check(validation.FieldUsername, username); err != nil {
		return "", err
	}
	return s.update(ctx, api.UsernameUpdatePath(username), domain.StatusUsernameUpdated)
}

// UpdatePassword changes the password and signs out. confirm must equal
// password.
func (s *AccountService) UpdatePassword(ctx context.Context, password, confirm string) (string, error) {
	if err := validation.Check(validation.FieldPassword, password); err != nil {
		return "", err
	}
	if password != confirm {
		return "", domain.ErrPasswordMismatch
	}
	return s.update(ctx, api.PasswordUpdatePath(domain.HashPassword(password)), domain.StatusPasswordUpdated)
}

// UpdateEmail changes the email address and signs out.
func (s *AccountService) UpdateEmail(ctx context.Context, email string) (string, error) {
	if err := validation.Check(validation.FieldEmail, email); err != nil {
		return "", err
	}
	return s.update(ctx, api.EmailUpdatePath(email), domain.StatusEmailUpdated)
}

// update sends a credential change. The old session is void afterwards,
// so success clears the store.
func (s *AccountService) update(ctx context.Context, path string, want domain.Status) (string, error) {
	if _, ok := s.store.Session(); !ok {
		return "", domain.ErrNoSession
	}

	resp, err := s.client.Send(ctx, api.NewUpdate(path))
	if err != nil {
		return "", fmt.Errorf("update: %w", err)
	}
	if err := expectStatus(resp, want); err != nil {
		return "", err
	}

	s.Logout()
	return resp.Message, nil
}

// Logout clears the store and the transport session.
func (s *AccountService) Logout() {
	s.store.Clear()
	if err := s.client.ResetCookies(); err != nil {
		s.logger.Warn("reset cookies failed", "error", err)
	}
}

// AddPoints adds points to the stored account. See Store.AddPoints.
func (s *AccountService) AddPoints(ctx context.Context, amount int) (bool, error) {
	return s.store.AddPoints(ctx, amount)
}

// AvatarURL returns the Gravatar URL for the stored account.
func (s *AccountService) AvatarURL(size int) (string, error) {
	account, ok := s.store.Account()
	if !ok {
		return "", domain.ErrNoAccount
	}
	return domain.AvatarURL(account.Email, size), nil
}
