package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/Flarenzy/subnet-practice/internal/store"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

type options struct {
	mode     string
	rounds   int
	seed     uint64
	planSize int
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.mode, "mode", "subnet", "problem kind: subnet or plan")
	flag.IntVar(&opts.rounds, "rounds", 1, "number of problems to solve")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	flag.IntVar(&opts.planSize, "plan-size", subnet.DefaultPlanSize, "host requirements per plan problem")
	flag.BoolVar(&opts.verbose, "v", false, "log service activity to stderr")
	flag.Parse()

	if opts.mode != "subnet" && opts.mode != "plan" {
		fatal(fmt.Errorf("unknown mode %q", opts.mode))
	}
	if opts.rounds <= 0 || opts.planSize <= 0 {
		fatal(fmt.Errorf("rounds and plan-size must be positive"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	q := newQuiz(newService(opts), os.Stdin, os.Stdout)
	if err := q.run(ctx, domain.ProblemKind(opts.mode), opts.rounds); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func newService(opts options) domain.PracticeService {
	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	generator := domain.NewRandomGenerator(rand.NewPCG(seed, seed))
	service := domain.NewPracticeService(store.NewSessionRepository(1), generator, domain.WithPlanSize(opts.planSize))
	return domain.NewLoggingPracticeService(logger, service)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
