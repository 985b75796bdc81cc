package http

import (
	"fmt"
	"time"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

// answerKeys maps the JSON keys used by clients onto answer fields.
var answerKeys = map[string]subnet.Field{
	"network":     subnet.FieldNetwork,
	"first_host":  subnet.FieldFirstHost,
	"last_host":   subnet.FieldLastHost,
	"broadcast":   subnet.FieldBroadcast,
	"next_subnet": subnet.FieldNextSubnet,
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"session not found"`
}

// DeriveRequest is the payload accepted when deriving one subnet.
type DeriveRequest struct {
	CIDR string `json:"cidr" example:"192.168.1.10/24"`
}

// DeriveResponse lists the derived addresses of a network.
type DeriveResponse struct {
	Network    string `json:"network" example:"192.168.1.0"`
	FirstHost  string `json:"first_host" example:"192.168.1.1"`
	LastHost   string `json:"last_host" example:"192.168.1.254"`
	Broadcast  string `json:"broadcast" example:"192.168.1.255"`
	NextSubnet string `json:"next_subnet" example:"192.168.2.0"`
}

// PlanRequest is the payload accepted when planning subnets.
type PlanRequest struct {
	Base     string `json:"base" example:"10.0.0.0/24"`
	Hosts    []int  `json:"hosts" example:"10,10"`
	MaxCount int    `json:"max_count,omitempty" example:"5"`
}

// PlannedSubnetResponse is one allocated subnet.
type PlannedSubnetResponse struct {
	Subnet        string `json:"subnet" example:"10.0.0.0/28"`
	RequiredHosts int    `json:"required_hosts" example:"10"`
	UsableHosts   int64  `json:"usable_hosts" example:"14"`
}

// PlanResponse is the outcome of a plan request.
type PlanResponse struct {
	Subnets   []PlannedSubnetResponse `json:"subnets"`
	Coverage  []string                `json:"coverage" example:"10.0.0.0/27"`
	Skipped   []int                   `json:"skipped"`
	Stop      string                  `json:"stop" example:"none"`
	StopIndex int                     `json:"stop_index" example:"-1"`
}

// SubnetPromptResponse is the question of a single-subnet problem.
type SubnetPromptResponse struct {
	CIDR   string   `json:"cidr" example:"172.16.35.123/20"`
	Fields []string `json:"fields" example:"Network,First Host,Last Host,Broadcast,Next Subnet"`
}

// PlanPromptResponse is the question of a VLSM problem.
type PlanPromptResponse struct {
	Base    string `json:"base" example:"10.0.0.0/16"`
	// Hosts holds the requirement of each subnet asked for.
	Hosts   []int  `json:"hosts" example:"120,60,30"`
	Answers int    `json:"answers" example:"3"`
}

// SessionResponse describes a practice problem without its answers.
type SessionResponse struct {
	ID        string                `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Kind      string                `json:"kind" example:"subnet"`
	CreatedAt time.Time             `json:"created_at" example:"2024-05-10T15:04:05Z"`
	Subnet    *SubnetPromptResponse `json:"subnet,omitempty"`
	Plan      *PlanPromptResponse   `json:"plan,omitempty"`
}

// CheckRequest carries the typed answers. Single-subnet problems use answers,
// plan problems use subnets.
type CheckRequest struct {
	Answers map[string]string `json:"answers,omitempty"`
	Subnets []string          `json:"subnets,omitempty" example:"10.0.0.0/28,10.0.0.16/28"`
}

// CheckEntryResponse is the verdict on one answer.
type CheckEntryResponse struct {
	Label   string `json:"label" example:"Network"`
	Given   string `json:"given" example:"192.168.1.0"`
	Correct bool   `json:"correct" example:"true"`
}

// CheckResponse is the verdict on a whole answer sheet.
type CheckResponse struct {
	SessionID  string               `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Kind       string               `json:"kind" example:"subnet"`
	AllCorrect bool                 `json:"all_correct" example:"false"`
	Entries    []CheckEntryResponse `json:"entries"`
}

// SolutionEntryResponse is one expected answer.
type SolutionEntryResponse struct {
	Label string `json:"label" example:"Broadcast"`
	Value string `json:"value" example:"192.168.1.255"`
}

// SolutionResponse lists the expected answers of a session.
type SolutionResponse struct {
	SessionID string                  `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Kind      string                  `json:"kind" example:"plan"`
	Entries   []SolutionEntryResponse `json:"entries"`
}

func answersToResponse(a subnet.Answers) DeriveResponse {
	return DeriveResponse{
		Network:    a[subnet.FieldNetwork],
		FirstHost:  a[subnet.FieldFirstHost],
		LastHost:   a[subnet.FieldLastHost],
		Broadcast:  a[subnet.FieldBroadcast],
		NextSubnet: a[subnet.FieldNextSubnet],
	}
}

func (r PlanRequest) toInput() domain.PlanInput {
	return domain.PlanInput{
		Base:     r.Base,
		Hosts:    r.Hosts,
		MaxCount: r.MaxCount,
	}
}

func reportToResponse(report subnet.PlanReport, coverage []string) PlanResponse {
	out := PlanResponse{
		Subnets:   make([]PlannedSubnetResponse, 0, len(report.Records)),
		Coverage:  coverage,
		Skipped:   report.Skipped,
		Stop:      report.Stop.String(),
		StopIndex: report.StopIndex,
	}
	if out.Coverage == nil {
		out.Coverage = []string{}
	}
	if out.Skipped == nil {
		out.Skipped = []int{}
	}
	for _, rec := range report.Records {
		out.Subnets = append(out.Subnets, PlannedSubnetResponse{
			Subnet:        rec.Subnet.String(),
			RequiredHosts: rec.RequiredHosts,
			UsableHosts:   rec.Subnet.UsableHosts(),
		})
	}
	return out
}

func sessionToResponse(s domain.Session) SessionResponse {
	out := SessionResponse{
		ID:        string(s.ID),
		Kind:      string(s.Kind),
		CreatedAt: s.CreatedAt,
	}
	if s.Subnet != nil {
		fields := make([]string, 0, len(subnet.Fields))
		for _, f := range subnet.Fields {
			fields = append(fields, string(f))
		}
		out.Subnet = &SubnetPromptResponse{CIDR: s.Subnet.Network.String(), Fields: fields}
	}
	if s.Plan != nil {
		out.Plan = &PlanPromptResponse{
			Base:    s.Plan.Base.String(),
			Hosts:   s.Plan.AskedHosts(),
			Answers: len(s.Plan.Records),
		}
	}
	return out
}

func (r CheckRequest) toInput() (domain.CheckInput, error) {
	switch {
	case r.Answers == nil && r.Subnets == nil:
		return domain.CheckInput{}, fmt.Errorf("%w: answers or subnets required", domain.ErrInvalidInput)
	case r.Answers != nil && r.Subnets != nil:
		return domain.CheckInput{}, fmt.Errorf("%w: answers and subnets are exclusive", domain.ErrInvalidInput)
	case r.Subnets != nil:
		return domain.CheckInput{Subnets: r.Subnets}, nil
	}

	fields := make(map[subnet.Field]string, len(r.Answers))
	for key, value := range r.Answers {
		field, ok := answerKeys[key]
		if !ok {
			return domain.CheckInput{}, fmt.Errorf("%w: unknown answer %q", domain.ErrInvalidInput, key)
		}
		fields[field] = value
	}
	return domain.CheckInput{Fields: fields}, nil
}

func checkToResponse(res domain.CheckResult) CheckResponse {
	out := CheckResponse{
		SessionID:  string(res.SessionID),
		Kind:       string(res.Kind),
		AllCorrect: res.AllCorrect,
		Entries:    make([]CheckEntryResponse, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		out.Entries = append(out.Entries, CheckEntryResponse{Label: e.Label, Given: e.Given, Correct: e.Correct})
	}
	return out
}

func solutionToResponse(sol domain.Solution) SolutionResponse {
	out := SolutionResponse{
		SessionID: string(sol.SessionID),
		Kind:      string(sol.Kind),
		Entries:   make([]SolutionEntryResponse, 0, len(sol.Entries)),
	}
	for _, e := range sol.Entries {
		out.Entries = append(out.Entries, SolutionEntryResponse{Label: e.Label, Value: e.Value})
	}
	return out
}
