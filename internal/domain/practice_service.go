package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Flarenzy/subnet-practice/internal/subnet"
	"github.com/google/uuid"
)

// maxDraws bounds how often a problem is redrawn when the random input has no
// usable answer (a subnet at the end of the address space, or an empty plan).
const maxDraws = 32

type practiceService struct {
	sessions  SessionRepository
	generator Generator
	planSize  int
	now       func() time.Time
	newID     func() SessionID
	owner     func(context.Context) string
}

type Option func(*practiceService)

func WithPlanSize(n int) Option {
	return func(s *practiceService) {
		if n > 0 {
			s.planSize = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *practiceService) {
		s.now = now
	}
}

// WithOwner scopes sessions to the caller owner returns for a request. A
// session is only visible to requests with the same owner.
func WithOwner(owner func(context.Context) string) Option {
	return func(s *practiceService) {
		if owner != nil {
			s.owner = owner
		}
	}
}

func NewPracticeService(sessions SessionRepository, generator Generator, opts ...Option) PracticeService {
	s := &practiceService{
		sessions:  sessions,
		generator: generator,
		planSize:  subnet.DefaultPlanSize,
		now:       time.Now,
		newID: func() SessionID {
			return SessionID(uuid.NewString())
		},
		owner: func(context.Context) string { return "" },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *practiceService) Derive(_ context.Context, cidr string) (subnet.Answers, error) {
	answers, err := subnet.DeriveString(cidr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return answers, nil
}

func (s *practiceService) Plan(_ context.Context, input PlanInput) (subnet.PlanReport, error) {
	base, err := subnet.ParseNetwork(input.Base)
	if err != nil {
		return subnet.PlanReport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	maxCount := input.MaxCount
	switch {
	case maxCount < 0:
		return subnet.PlanReport{}, fmt.Errorf("%w: negative max count", ErrInvalidInput)
	case maxCount == 0:
		maxCount = s.planSize
	}

	return subnet.PlanWithReport(base, input.Hosts, maxCount), nil
}

func (s *practiceService) NewSubnetSession(ctx context.Context) (Session, error) {
	var lastErr error
	for range maxDraws {
		network := s.generator.SubnetNetwork()
		d, err := subnet.Derive(network)
		if err != nil {
			lastErr = err
			continue
		}

		session := s.newSession(ctx, KindSubnet)
		session.Subnet = &SubnetProblem{Network: network, Answers: d.Answers()}
		if err := s.sessions.Save(ctx, session); err != nil {
			return Session{}, err
		}
		return session, nil
	}
	return Session{}, fmt.Errorf("draw subnet problem: %w", lastErr)
}

func (s *practiceService) NewPlanSession(ctx context.Context) (Session, error) {
	var (
		base  subnet.Network
		hosts []int
		recs  []subnet.SubnetRecord
	)
	for range maxDraws {
		base, hosts = s.generator.PlanInput(s.planSize)
		recs = subnet.Plan(base, hosts, s.planSize)
		if len(recs) > 0 {
			break
		}
	}

	session := s.newSession(ctx, KindPlan)
	session.Plan = &PlanProblem{Base: base, Hosts: hosts, Records: recs}
	if err := s.sessions.Save(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *practiceService) GetSession(ctx context.Context, id SessionID) (Session, error) {
	return s.find(ctx, id)
}

func (s *practiceService) Check(ctx context.Context, id SessionID, input CheckInput) (CheckResult, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return CheckResult{}, err
	}

	var entries []EntryResult
	switch session.Kind {
	case KindSubnet:
		if input.Fields == nil && input.Subnets != nil {
			return CheckResult{}, fmt.Errorf("%w: subnet answers expected", ErrConflict)
		}
		entries = checkSubnet(session.Subnet, input.Fields)
	case KindPlan:
		if input.Subnets == nil && input.Fields != nil {
			return CheckResult{}, fmt.Errorf("%w: plan answers expected", ErrConflict)
		}
		entries = checkPlan(session.Plan, input.Subnets)
	default:
		return CheckResult{}, fmt.Errorf("unknown problem kind %q", session.Kind)
	}

	result := CheckResult{SessionID: id, Kind: session.Kind, Entries: entries, AllCorrect: true}
	for _, e := range entries {
		result.AllCorrect = result.AllCorrect && e.Correct
	}
	return result, nil
}

func (s *practiceService) Reveal(ctx context.Context, id SessionID) (Solution, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return Solution{}, err
	}
	return SolutionOf(session), nil
}

func (s *practiceService) DeleteSession(ctx context.Context, id SessionID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	deleted, err := s.sessions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *practiceService) newSession(ctx context.Context, kind ProblemKind) Session {
	return Session{ID: s.newID(), Owner: s.owner(ctx), Kind: kind, CreatedAt: s.now()}
}

// find loads a session and hides it from callers that do not own it.
func (s *practiceService) find(ctx context.Context, id SessionID) (Session, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if session.Owner != s.owner(ctx) {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// SolutionOf lists the expected answers of a session in display order.
func SolutionOf(session Session) Solution {
	sol := Solution{SessionID: session.ID, Kind: session.Kind}
	switch {
	case session.Subnet != nil:
		for _, f := range subnet.Fields {
			sol.Entries = append(sol.Entries, SolutionEntry{Label: string(f), Value: session.Subnet.Answers[f]})
		}
	case session.Plan != nil:
		for i, r := range session.Plan.Records {
			sol.Entries = append(sol.Entries, SolutionEntry{Label: PlanLabel(i), Value: r.Subnet.String()})
		}
	}
	return sol
}

// PlanLabel names the i-th planned subnet, counting from one.
func PlanLabel(i int) string {
	return fmt.Sprintf("Subnet %d", i+1)
}

func checkSubnet(p *SubnetProblem, given map[subnet.Field]string) []EntryResult {
	out := make([]EntryResult, 0, len(subnet.Fields))
	for _, f := range subnet.Fields {
		answer := given[f]
		out = append(out, EntryResult{
			Label:   string(f),
			Given:   answer,
			Correct: matches(answer, p.Answers[f]),
		})
	}
	return out
}

func checkPlan(p *PlanProblem, given []string) []EntryResult {
	out := make([]EntryResult, 0, len(p.Records))
	for i, r := range p.Records {
		var answer string
		if i < len(given) {
			answer = given[i]
		}
		out = append(out, EntryResult{
			Label:   PlanLabel(i),
			Given:   answer,
			Correct: matches(answer, r.Subnet.String()),
		})
	}
	return out
}

// matches compares a typed answer with the expected one. Only the typed side
// is trimmed and the comparison is case-sensitive.
func matches(given, want string) bool {
	return strings.TrimSpace(given) == want
}
