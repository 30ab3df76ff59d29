package client

import (
	"context"
	"sync"

	authapimodels "workorbit-backend/models/api/auth"
)

// AuthStore holds the client-side session: the bearer token lives on the
// underlying Client, the resolved profile is cached here.
type AuthStore struct {
	client *Client

	mu   sync.RWMutex
	user *authapimodels.UserView
}

func NewAuthStore(c *Client) *AuthStore {
	return &AuthStore{client: c}
}

func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user := resp.User
	s.user = &user
	return nil
}

func (s *AuthStore) Signup(ctx context.Context, req authapimodels.RegisterRequest) error {
	_, err := s.client.Register(ctx, req)
	return err
}

// FetchUser refreshes the cached profile from the server.
func (s *AuthStore) FetchUser(ctx context.Context) error {
	resp, err := s.client.Me(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &resp
	return nil
}

func (s *AuthStore) User() *authapimodels.UserView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.client.Logout()
}
