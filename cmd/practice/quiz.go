package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
)

type quiz struct {
	service domain.PracticeService
	in      io.Reader
	out     io.Writer
	lines   chan line
}

// line is one read from input. err is set on the final read.
type line struct {
	text string
	err  error
}

// outcome is how a round ended.
type outcome int

const (
	solved outcome = iota
	missed
	unscored
)

func newQuiz(service domain.PracticeService, in io.Reader, out io.Writer) *quiz {
	return &quiz{service: service, in: in, out: out, lines: make(chan line)}
}

// run asks rounds problems of kind and prints the final score. It stops
// early with io.EOF when input runs out and with ctx.Err() when ctx is done,
// even while waiting for an answer. Rounds with nothing to answer are not
// scored.
func (q *quiz) run(ctx context.Context, kind domain.ProblemKind, rounds int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go q.read(ctx)

	correct, scored := 0, 0
	defer func() {
		fmt.Fprintf(q.out, "\nScore: %d/%d problems fully correct\n", correct, scored)
	}()

	for i := range rounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(q.out, "\nProblem %d of %d\n", i+1, rounds)

		out, err := q.round(ctx, kind)
		if err != nil {
			return err
		}
		switch out {
		case solved:
			correct++
			scored++
		case missed:
			scored++
		}
	}
	return nil
}

// read feeds input lines to prompt until input ends or ctx is done.
func (q *quiz) read(ctx context.Context) {
	sc := bufio.NewScanner(q.in)
	for sc.Scan() {
		select {
		case q.lines <- line{text: sc.Text()}:
		case <-ctx.Done():
			return
		}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case q.lines <- line{err: err}:
	case <-ctx.Done():
	}
}

func (q *quiz) round(ctx context.Context, kind domain.ProblemKind) (outcome, error) {
	var (
		session domain.Session
		input   domain.CheckInput
		err     error
	)
	switch kind {
	case domain.KindSubnet:
		if session, err = q.service.NewSubnetSession(ctx); err != nil {
			return missed, err
		}
		input, err = q.askSubnet(ctx, session)
	case domain.KindPlan:
		if session, err = q.service.NewPlanSession(ctx); err != nil {
			return missed, err
		}
		if len(session.Plan.Records) == 0 {
			fmt.Fprintf(q.out, "No subnet fits in %s for these host counts. Not scored.\n", session.Plan.Base)
			_ = q.service.DeleteSession(ctx, session.ID)
			return unscored, nil
		}
		input, err = q.askPlan(ctx, session)
	default:
		return missed, fmt.Errorf("unknown problem kind %q", kind)
	}
	defer func() { _ = q.service.DeleteSession(context.WithoutCancel(ctx), session.ID) }()
	if err != nil {
		return missed, err
	}

	result, err := q.service.Check(ctx, session.ID, input)
	if err != nil {
		return missed, err
	}
	solution, err := q.service.Reveal(ctx, session.ID)
	if err != nil {
		return missed, err
	}

	q.report(result, solution)
	if !result.AllCorrect {
		return missed, nil
	}
	return solved, nil
}

func (q *quiz) askSubnet(ctx context.Context, session domain.Session) (domain.CheckInput, error) {
	fmt.Fprintf(q.out, "Given %s, find:\n", session.Subnet.Network)

	fields := make(map[subnet.Field]string, len(subnet.Fields))
	for _, f := range subnet.Fields {
		answer, err := q.prompt(ctx, string(f))
		if err != nil {
			return domain.CheckInput{}, err
		}
		fields[f] = answer
	}
	return domain.CheckInput{Fields: fields}, nil
}

func (q *quiz) askPlan(ctx context.Context, session domain.Session) (domain.CheckInput, error) {
	p := session.Plan
	fmt.Fprintf(q.out, "Split %s into subnets for these host counts, in order:\n", p.Base)
	for i, h := range p.AskedHosts() {
		fmt.Fprintf(q.out, "  %d. %s hosts\n", i+1, humanize.Comma(int64(h)))
	}
	fmt.Fprintf(q.out, "Give the first %d subnets as network/prefix.\n", len(p.Records))

	subnets := make([]string, 0, len(p.Records))
	for i := range p.Records {
		answer, err := q.prompt(ctx, domain.PlanLabel(i))
		if err != nil {
			return domain.CheckInput{}, err
		}
		subnets = append(subnets, answer)
	}
	return domain.CheckInput{Subnets: subnets}, nil
}

func (q *quiz) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(q.out, "%s: ", label)
	select {
	case <-ctx.Done():
		fmt.Fprintln(q.out)
		return "", ctx.Err()
	case l := <-q.lines:
		if l.err != nil {
			fmt.Fprintln(q.out)
			return "", l.err
		}
		return l.text, nil
	}
}

func (q *quiz) report(result domain.CheckResult, solution domain.Solution) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("", "ANSWER", "GIVEN", "RESULT")
	for i, e := range result.Entries {
		verdict := "incorrect"
		if e.Correct {
			verdict = "correct"
		}
		want := ""
		if i < len(solution.Entries) {
			want = solution.Entries[i].Value
		}
		table.AddRow(e.Label, want, e.Given, verdict)
	}
	fmt.Fprintln(q.out)
	fmt.Fprintln(q.out, table)
}
