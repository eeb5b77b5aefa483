package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/chandnsingh/groceryfrontend/internal/domain"
)

const (
	userKey  = "session:user"
	tokenKey = "session:token"
)

// RedisStore keeps the session in redis so it survives restarts, standing in
// for the browser storage the web client uses.
type RedisStore struct {
	client *redis.Client

	mu   sync.Mutex
	subs []chan string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	if u, err := s.User(ctx); err == nil && Valid(u.Token) {
		return u.Token, nil
	}
	tok, err := s.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("redis get token failed: %w", err)
	}
	if !Valid(tok) {
		return "", ErrNoToken
	}
	return tok, nil
}

func (s *RedisStore) User(ctx context.Context) (domain.User, error) {
	data, err := s.client.Get(ctx, userKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.User{}, ErrNoToken
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("redis get user failed: %w", err)
	}
	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return domain.User{}, fmt.Errorf("unmarshal user failed: %w", err)
	}
	return u, nil
}

func (s *RedisStore) SaveLogin(ctx context.Context, user domain.User, token string) error {
	user.Token = token
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user failed: %w", err)
	}
	if err := s.client.Set(ctx, userKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set user failed: %w", err)
	}
	if err := s.client.Set(ctx, tokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set token failed: %w", err)
	}
	s.notify(token)
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, userKey, tokenKey).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	s.notify("")
	return nil
}

func (s *RedisStore) Watch() <-chan string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan string, 8)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *RedisStore) notify(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- token:
		default: // slow subscriber, drop
		}
	}
}
