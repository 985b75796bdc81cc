package domain

import "github.com/Flarenzy/subnet-practice/internal/subnet"

type PlanInput struct {
	Base     string
	Hosts    []int
	MaxCount int
}

// CheckInput carries a user's answers. Fields is read for subnet problems and
// Subnets for plan problems.
type CheckInput struct {
	Fields  map[subnet.Field]string
	Subnets []string
}
