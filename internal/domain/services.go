package domain

import (
	"context"

	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

type PracticeService interface {
	Derive(ctx context.Context, cidr string) (subnet.Answers, error)
	Plan(ctx context.Context, input PlanInput) (subnet.PlanReport, error)
	NewSubnetSession(ctx context.Context) (Session, error)
	NewPlanSession(ctx context.Context) (Session, error)
	GetSession(ctx context.Context, id SessionID) (Session, error)
	Check(ctx context.Context, id SessionID, input CheckInput) (CheckResult, error)
	Reveal(ctx context.Context, id SessionID) (Solution, error)
	DeleteSession(ctx context.Context, id SessionID) error
}
