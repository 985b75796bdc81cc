package metrics

import (
	"context"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

type instrumentedPracticeService struct {
	collector *Collector
	next      domain.PracticeService
}

// NewInstrumentedPracticeService records practice activity on collector.
func NewInstrumentedPracticeService(collector *Collector, next domain.PracticeService) domain.PracticeService {
	if collector == nil || next == nil {
		return next
	}
	return &instrumentedPracticeService{collector: collector, next: next}
}

func (s *instrumentedPracticeService) Derive(ctx context.Context, cidr string) (subnet.Answers, error) {
	answers, err := s.next.Derive(ctx, cidr)
	s.collector.computations.WithLabelValues("derive", result(err)).Inc()
	return answers, err
}

func (s *instrumentedPracticeService) Plan(ctx context.Context, input domain.PlanInput) (subnet.PlanReport, error) {
	report, err := s.next.Plan(ctx, input)
	s.collector.computations.WithLabelValues("plan", result(err)).Inc()
	if err == nil {
		s.observePlan(report.Records, report.Stop)
	}
	return report, err
}

func (s *instrumentedPracticeService) NewSubnetSession(ctx context.Context) (domain.Session, error) {
	session, err := s.next.NewSubnetSession(ctx)
	if err == nil {
		s.collector.problemsCreated.WithLabelValues(string(domain.KindSubnet)).Inc()
	}
	return session, err
}

func (s *instrumentedPracticeService) NewPlanSession(ctx context.Context) (domain.Session, error) {
	session, err := s.next.NewPlanSession(ctx)
	if err == nil {
		s.collector.problemsCreated.WithLabelValues(string(domain.KindPlan)).Inc()
		s.collector.plannedSubnets.Observe(float64(len(session.Plan.Records)))
	}
	return session, err
}

func (s *instrumentedPracticeService) GetSession(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	return s.next.GetSession(ctx, id)
}

func (s *instrumentedPracticeService) Check(ctx context.Context, id domain.SessionID, input domain.CheckInput) (domain.CheckResult, error) {
	res, err := s.next.Check(ctx, id, input)
	if err == nil {
		outcome := "incorrect"
		if res.AllCorrect {
			outcome = "correct"
		}
		s.collector.answersChecked.WithLabelValues(string(res.Kind), outcome).Inc()
	}
	return res, err
}

func (s *instrumentedPracticeService) Reveal(ctx context.Context, id domain.SessionID) (domain.Solution, error) {
	return s.next.Reveal(ctx, id)
}

func (s *instrumentedPracticeService) DeleteSession(ctx context.Context, id domain.SessionID) error {
	return s.next.DeleteSession(ctx, id)
}

func (s *instrumentedPracticeService) observePlan(records []subnet.SubnetRecord, stop subnet.StopReason) {
	s.collector.plannedSubnets.Observe(float64(len(records)))
	if stop != subnet.StopNone {
		s.collector.planTruncations.WithLabelValues(stop.String()).Inc()
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
