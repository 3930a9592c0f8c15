package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bombsimon/team-betting-client/internal/repository/dao"
)

var ErrTokenNotFound = dao.ErrKeyNotFound

// sessionTokenKey matches the key the browser client used in localStorage.
const sessionTokenKey = "authorization"

type KeyValueDAO interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionRepository persists the session token so it survives restarts.
type SessionRepository struct {
	dao KeyValueDAO
}

func NewSessionRepository(dao KeyValueDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) Token(ctx context.Context) (string, error) {
	token, err := r.dao.Get(ctx, sessionTokenKey)
	if err != nil {
		if errors.Is(err, dao.ErrKeyNotFound) {
			return "", ErrTokenNotFound
		}

		return "", fmt.Errorf("r.dao.Get -> %w", err)
	}

	return token, nil
}

func (r *SessionRepository) SaveToken(ctx context.Context, token string) error {
	if err := r.dao.Put(ctx, sessionTokenKey, token); err != nil {
		return fmt.Errorf("r.dao.Put -> %w", err)
	}

	return nil
}

func (r *SessionRepository) DeleteToken(ctx context.Context) error {
	if err := r.dao.Delete(ctx, sessionTokenKey); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
