package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// fakeService embeds the interface so tests only implement what they call.
type fakeService struct {
	domain.PracticeService
	planReport subnet.PlanReport
	planErr    error
	check      domain.CheckResult
	session    domain.Session
}

func (f fakeService) Plan(context.Context, domain.PlanInput) (subnet.PlanReport, error) {
	return f.planReport, f.planErr
}

func (f fakeService) Check(context.Context, domain.SessionID, domain.CheckInput) (domain.CheckResult, error) {
	return f.check, nil
}

func (f fakeService) NewPlanSession(context.Context) (domain.Session, error) {
	return f.session, nil
}

func TestCollectorRegisters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector()); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestInstrumentedServiceCountsPlanOutcomes(t *testing.T) {
	c := NewCollector()
	svc := NewInstrumentedPracticeService(c, fakeService{
		planReport: subnet.PlanReport{Stop: subnet.StopOutOfRange, StopIndex: 1},
	})

	if _, err := svc.Plan(context.Background(), domain.PlanInput{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := testutil.ToFloat64(c.computations.WithLabelValues("plan", "ok")); got != 1 {
		t.Fatalf("expected 1 ok plan, got %v", got)
	}
	if got := testutil.ToFloat64(c.planTruncations.WithLabelValues("out of range")); got != 1 {
		t.Fatalf("expected 1 truncation, got %v", got)
	}

	failing := NewInstrumentedPracticeService(c, fakeService{planErr: errors.New("boom")})
	if _, err := failing.Plan(context.Background(), domain.PlanInput{}); err == nil {
		t.Fatal("expected error")
	}
	if got := testutil.ToFloat64(c.computations.WithLabelValues("plan", "error")); got != 1 {
		t.Fatalf("expected 1 failed plan, got %v", got)
	}
}

func TestInstrumentedServiceCountsCheckResults(t *testing.T) {
	c := NewCollector()
	svc := NewInstrumentedPracticeService(c, fakeService{
		check: domain.CheckResult{Kind: domain.KindSubnet, AllCorrect: true},
	})

	if _, err := svc.Check(context.Background(), "id", domain.CheckInput{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := testutil.ToFloat64(c.answersChecked.WithLabelValues("subnet", "correct")); got != 1 {
		t.Fatalf("expected 1 correct check, got %v", got)
	}
}

func TestInstrumentedServiceCountsProblems(t *testing.T) {
	c := NewCollector()
	svc := NewInstrumentedPracticeService(c, fakeService{
		session: domain.Session{Kind: domain.KindPlan, Plan: &domain.PlanProblem{}},
	})

	if _, err := svc.NewPlanSession(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := testutil.ToFloat64(c.problemsCreated.WithLabelValues("plan")); got != 1 {
		t.Fatalf("expected 1 plan problem, got %v", got)
	}
}

func TestNewInstrumentedPracticeServiceWithoutCollectorReturnsNext(t *testing.T) {
	next := fakeService{}
	if _, ok := NewInstrumentedPracticeService(nil, next).(fakeService); !ok {
		t.Fatal("expected next to be returned unchanged")
	}
}
