package domain

import "context"

type SessionRepository interface {
	Save(ctx context.Context, session Session) error
	FindByID(ctx context.Context, id SessionID) (Session, error)
	Delete(ctx context.Context, id SessionID) (bool, error)
}
