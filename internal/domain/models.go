package domain

import (
	"time"

	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

type SessionID string

type ProblemKind string

const (
	KindSubnet ProblemKind = "subnet"
	KindPlan   ProblemKind = "plan"
)

// SubnetProblem asks for the five derived addresses of Network.
type SubnetProblem struct {
	Network subnet.Network
	Answers subnet.Answers
}

// PlanProblem asks for the child subnets planned inside Base.
type PlanProblem struct {
	Base    subnet.Network
	Hosts   []int
	Records []subnet.SubnetRecord
}

// AskedHosts is the host requirement of each planned subnet, in order.
// Requirements that were skipped or came after planning stopped are left out.
func (p *PlanProblem) AskedHosts() []int {
	hosts := make([]int, 0, len(p.Records))
	for _, r := range p.Records {
		hosts = append(hosts, r.RequiredHosts)
	}
	return hosts
}

// Session is the last generated problem and its expected answers. Exactly one
// of Subnet and Plan is set, matching Kind. Owner is the caller that created
// it, empty when callers are anonymous.
type Session struct {
	ID        SessionID
	Owner     string
	Kind      ProblemKind
	Subnet    *SubnetProblem
	Plan      *PlanProblem
	CreatedAt time.Time
}

type EntryResult struct {
	Label   string
	Given   string
	Correct bool
}

type CheckResult struct {
	SessionID  SessionID
	Kind       ProblemKind
	Entries    []EntryResult
	AllCorrect bool
}

type SolutionEntry struct {
	Label string
	Value string
}

type Solution struct {
	SessionID SessionID
	Kind      ProblemKind
	Entries   []SolutionEntry
}
