package assign

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"practicum-assigner/internal/costmatrix"
	"practicum-assigner/internal/model"
	"practicum-assigner/internal/solver"
)

// SolveFunc computes a minimum-cost row->column assignment.
type SolveFunc func(cost [][]float64) ([]int, error)

// Assignment is the outcome of one run.
type Assignment struct {
	Results   []Result
	TotalCost float64
	// Seed reproduces the run when passed back through WithSeed.
	Seed uint64
}

type runner struct {
	seed   *uint64
	solve  SolveFunc
	logger *slog.Logger
}

// Option configures Run.
type Option func(*runner)

// WithSeed fixes the seed of the random completion.
func WithSeed(seed uint64) Option {
	return func(r *runner) {
		r.seed = &seed
	}
}

// WithSolver replaces the Hungarian solver.
func WithSolver(solve SolveFunc) Option {
	return func(r *runner) {
		r.solve = solve
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) {
		r.logger = logger
	}
}

// Run assigns every participant of the roster to one activity slot so that
// the summed rank is minimal.
func Run(roster *model.Roster, opts ...Option) (*Assignment, error) {
	r := &runner{
		solve:  solver.Solve,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	seed := rand.Uint64()
	if r.seed != nil {
		seed = *r.seed
	}

	participants := roster.Participants()
	activities := roster.Activities()

	matrix, err := costmatrix.NewBuilder(activities, costmatrix.WithSeed(seed)).Build(participants)
	if err != nil {
		return nil, fmt.Errorf("build cost matrix: %w", err)
	}
	r.logger.Debug("cost matrix built",
		"rows", matrix.Rows(), "columns", matrix.Columns(), "seed", seed)

	cols, err := r.solve(matrix.Costs)
	if err != nil {
		return nil, fmt.Errorf("solve assignment: %w", err)
	}
	if len(cols) != len(participants) {
		return nil, fmt.Errorf("%w: %d columns for %d rows", solver.ErrSolverContract, len(cols), len(participants))
	}

	activityIDs := make([]int, len(cols))
	for i, col := range cols {
		id, ok := matrix.Layout.ActivityAt(col)
		if !ok {
			return nil, fmt.Errorf("%w: column %d outside %d slots", solver.ErrSolverContract, col, matrix.Columns())
		}
		activityIDs[i] = id
	}

	results, err := Annotate(participants, activities, activityIDs)
	if err != nil {
		return nil, err
	}

	total := solver.TotalCost(matrix.Costs, cols)
	r.logger.Info("assignment solved",
		"participants", len(participants), "slots", matrix.Columns(), "total_cost", total)

	return &Assignment{
		Results:   results,
		TotalCost: total,
		Seed:      seed,
	}, nil
}
