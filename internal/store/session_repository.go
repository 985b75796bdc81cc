package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/google/uuid"
)

// DefaultCapacity is the number of sessions kept before the oldest is dropped.
const DefaultCapacity = 256

// SessionRepository keeps practice sessions in memory. Once capacity is
// reached the oldest session is evicted.
type SessionRepository struct {
	mu       sync.Mutex
	capacity int
	sessions map[domain.SessionID]domain.Session
	order    []domain.SessionID
}

func NewSessionRepository(capacity int) *SessionRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &SessionRepository{
		capacity: capacity,
		sessions: make(map[domain.SessionID]domain.Session, capacity),
	}
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := parseSessionID(session.ID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		for len(r.order) >= r.capacity {
			delete(r.sessions, r.order[0])
			r.order = r.order[1:]
		}
		r.order = append(r.order, session.ID)
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	if _, err := parseSessionID(id); err != nil {
		return domain.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id domain.SessionID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := parseSessionID(id); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false, nil
	}
	delete(r.sessions, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Ping reports whether the repository can serve requests.
func (r *SessionRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func parseSessionID(id domain.SessionID) (uuid.UUID, error) {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: invalid session id", domain.ErrInvalidInput)
	}
	return u, nil
}
