package session

import (
	"context"
	"sync"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

// MemoryStore is an in-process TokenStore. It backs deployments without
// redis and the deterministic fakes in tests.
type MemoryStore struct {
	mu    sync.Mutex
	user  *domain.User
	token string
	subs  []chan string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil && Valid(s.user.Token) {
		return s.user.Token, nil
	}
	if Valid(s.token) {
		return s.token, nil
	}
	return "", ErrNoToken
}

func (s *MemoryStore) User(context.Context) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, ErrNoToken
	}
	return *s.user, nil
}

func (s *MemoryStore) SaveLogin(_ context.Context, user domain.User, token string) error {
	s.mu.Lock()
	user.Token = token
	s.user = &user
	s.token = token
	s.notifyLocked(token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.notifyLocked("")
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Watch() <-chan string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan string, 8)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *MemoryStore) notifyLocked(token string) {
	for _, ch := range s.subs {
		select {
		case ch <- token:
		default:
		}
	}
}
