package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/Flarenzy/subnet-practice/internal/store"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

type fixedGenerator struct {
	network subnet.Network
	base    subnet.Network
	hosts   []int
}

func (g fixedGenerator) SubnetNetwork() subnet.Network {
	return g.network
}

func (g fixedGenerator) PlanInput(int) (subnet.Network, []int) {
	return g.base, g.hosts
}

func mustNetwork(t *testing.T, s string) subnet.Network {
	t.Helper()
	n, err := subnet.ParseNetwork(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func newPlanQuiz(t *testing.T, in io.Reader, base string, hosts ...int) (*quiz, *bytes.Buffer) {
	t.Helper()
	service := domain.NewPracticeService(store.NewSessionRepository(1), fixedGenerator{
		network: mustNetwork(t, "10.0.0.5/30"),
		base:    mustNetwork(t, base),
		hosts:   hosts,
	})
	out := &bytes.Buffer{}
	return newQuiz(service, in, out), out
}

func newTestQuiz(t *testing.T, input string) (*quiz, *bytes.Buffer) {
	t.Helper()
	return newPlanQuiz(t, strings.NewReader(input), "10.0.0.0/16", 1000, 100000, 10)
}

func TestQuizSubnetRoundAllCorrect(t *testing.T) {
	q, out := newTestQuiz(t, "10.0.0.4\n10.0.0.5\n 10.0.0.6 \n10.0.0.7\n10.0.0.8\n")

	if err := q.run(context.Background(), domain.KindSubnet, 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Given 10.0.0.5/30") {
		t.Fatalf("expected prompt in output, got %q", out.String())
	}
	if strings.Contains(out.String(), "incorrect") {
		t.Fatalf("expected every answer to be correct, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Score: 1/1") {
		t.Fatalf("expected full score, got %q", out.String())
	}
}

func TestQuizPlanRoundShowsCorrectAnswers(t *testing.T) {
	// 100000 hosts needs a /15 which cannot fit in a /16, so only one subnet is asked.
	q, out := newTestQuiz(t, "10.0.0.0/29\n")

	if err := q.run(context.Background(), domain.KindPlan, 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "1,000 hosts") {
		t.Fatalf("expected humanized host count, got %q", text)
	}
	if strings.Contains(text, "100,000") || strings.Contains(text, "  3. ") {
		t.Fatalf("expected requirements after the stop to stay hidden, got %q", text)
	}
	if !strings.Contains(text, "Give the first 1 subnets") {
		t.Fatalf("expected one requested subnet, got %q", text)
	}
	if !strings.Contains(text, "10.0.0.0/22") || !strings.Contains(text, "incorrect") {
		t.Fatalf("expected the correct answer and a verdict, got %q", text)
	}
	if !strings.Contains(text, "Score: 0/1") {
		t.Fatalf("expected zero score, got %q", text)
	}
}

func TestQuizStopsAtEndOfInput(t *testing.T) {
	q, out := newTestQuiz(t, "10.0.0.4\n")

	err := q.run(context.Background(), domain.KindSubnet, 2)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !strings.Contains(out.String(), "Score: 0/0") {
		t.Fatalf("expected score summary, got %q", out.String())
	}
}

func TestQuizDoesNotScoreEmptyPlans(t *testing.T) {
	q, out := newPlanQuiz(t, strings.NewReader(""), "10.0.0.0/24", 1000)

	if err := q.run(context.Background(), domain.KindPlan, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Not scored") {
		t.Fatalf("expected empty plan to be reported, got %q", text)
	}
	if strings.Contains(text, "Give the first") {
		t.Fatalf("expected no answers to be asked, got %q", text)
	}
	if !strings.Contains(text, "Score: 0/0") {
		t.Fatalf("expected empty plans to stay out of the score, got %q", text)
	}
}

func TestQuizReturnsWhenCancelledWhileWaitingForInput(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	q, out := newPlanQuiz(t, r, "10.0.0.0/16", 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- q.run(ctx, domain.KindSubnet, 3)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("quiz still waiting for input after cancel")
	}
	if !strings.Contains(out.String(), "Score: 0/0") {
		t.Fatalf("expected score summary, got %q", out.String())
	}
}
