package domain

import (
	"context"
	"log/slog"

	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

type loggingPracticeService struct {
	logger *slog.Logger
	next   PracticeService
}

func NewLoggingPracticeService(logger *slog.Logger, next PracticeService) PracticeService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingPracticeService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingPracticeService) Derive(ctx context.Context, cidr string) (subnet.Answers, error) {
	answers, err := s.next.Derive(ctx, cidr)
	if err != nil {
		s.logger.ErrorContext(ctx, "derive failed", "cidr", cidr, "err", err.Error())
		return nil, err
	}

	s.logger.DebugContext(ctx, "derived subnet", "cidr", cidr, "network", answers[subnet.FieldNetwork])
	return answers, nil
}

func (s *loggingPracticeService) Plan(ctx context.Context, input PlanInput) (subnet.PlanReport, error) {
	report, err := s.next.Plan(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "plan failed", "base", input.Base, "err", err.Error())
		return subnet.PlanReport{}, err
	}

	if report.Stop != subnet.StopNone {
		s.logger.InfoContext(ctx, "plan truncated", "base", input.Base, "reason", report.Stop.String(), "requirement", report.StopIndex)
	}
	s.logger.DebugContext(ctx, "planned subnets", "base", input.Base, "records", len(report.Records), "skipped", len(report.Skipped))
	return report, nil
}

func (s *loggingPracticeService) NewSubnetSession(ctx context.Context) (Session, error) {
	session, err := s.next.NewSubnetSession(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "new subnet problem failed", "err", err.Error())
		return Session{}, err
	}

	s.logger.InfoContext(ctx, "subnet problem created", "session_id", string(session.ID), "network", session.Subnet.Network.String())
	return session, nil
}

func (s *loggingPracticeService) NewPlanSession(ctx context.Context) (Session, error) {
	session, err := s.next.NewPlanSession(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "new plan problem failed", "err", err.Error())
		return Session{}, err
	}

	s.logger.InfoContext(ctx, "plan problem created", "session_id", string(session.ID), "base", session.Plan.Base.String(), "subnets", len(session.Plan.Records))
	return session, nil
}

func (s *loggingPracticeService) GetSession(ctx context.Context, id SessionID) (Session, error) {
	session, err := s.next.GetSession(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get session failed", "session_id", string(id), "err", err.Error())
	}
	return session, err
}

func (s *loggingPracticeService) Check(ctx context.Context, id SessionID, input CheckInput) (CheckResult, error) {
	result, err := s.next.Check(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "check answers failed", "session_id", string(id), "err", err.Error())
		return CheckResult{}, err
	}

	s.logger.InfoContext(ctx, "answers checked", "session_id", string(id), "kind", string(result.Kind), "all_correct", result.AllCorrect)
	return result, nil
}

func (s *loggingPracticeService) Reveal(ctx context.Context, id SessionID) (Solution, error) {
	solution, err := s.next.Reveal(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "reveal answers failed", "session_id", string(id), "err", err.Error())
		return Solution{}, err
	}

	s.logger.DebugContext(ctx, "answers revealed", "session_id", string(id))
	return solution, nil
}

func (s *loggingPracticeService) DeleteSession(ctx context.Context, id SessionID) error {
	err := s.next.DeleteSession(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete session failed", "session_id", string(id), "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "session deleted", "session_id", string(id))
	return nil
}
