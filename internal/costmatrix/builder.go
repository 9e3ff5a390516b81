package costmatrix

import (
	"fmt"
	"math/rand/v2"

	"practicum-assigner/internal/model"
)

// Matrix is the dense cost matrix for one run. Costs has one row per
// participant and one column per expanded slot.
type Matrix struct {
	Costs    [][]float64
	Rankings []Ranking
	Layout   SlotLayout
}

// Rows returns the number of participant rows.
func (m *Matrix) Rows() int { return len(m.Costs) }

// Columns returns the number of expanded slots.
func (m *Matrix) Columns() int { return m.Layout.Columns() }

// Builder creates cost rows for a fixed list of activities.
type Builder struct {
	activities []model.Activity
	layout     SlotLayout
	rng        *rand.Rand
}

// Option configures a Builder.
type Option func(*Builder)

// WithSeed makes the random completion reproducible.
func WithSeed(seed uint64) Option {
	return func(b *Builder) {
		b.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// NewBuilder creates a builder for the activities in ID order. Without a
// seed option the completion is randomized per process.
func NewBuilder(activities []model.Activity, opts ...Option) *Builder {
	b := &Builder{
		activities: activities,
		layout:     NewSlotLayout(activities),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return b
}

// Row completes the participant's preferences into a full ranking and
// returns it with its expanded cost row.
func (b *Builder) Row(p model.Participant) ([]float64, Ranking, error) {
	r, err := newRanking(p.ID, p.Preferences, len(b.activities), b.rng)
	if err != nil {
		return nil, Ranking{}, err
	}

	return b.expand(r), r, nil
}

// expand repeats each activity's rank over the activity's slot range.
func (b *Builder) expand(r Ranking) []float64 {
	row := make([]float64, b.layout.Columns())
	for i, rank := range r.ActivityToRank {
		start, end := b.layout.Range(i + 1)
		for col := start; col < end; col++ {
			row[col] = float64(rank)
		}
	}

	return row
}

// Build creates the full matrix. It refuses to build anything when the
// slots cannot seat every participant.
func (b *Builder) Build(participants []model.Participant) (*Matrix, error) {
	if cols := b.layout.Columns(); cols < len(participants) {
		return nil, fmt.Errorf("%w: %d places < %d participants",
			model.ErrInfeasibleCapacity, cols, len(participants))
	}

	m := &Matrix{
		Costs:    make([][]float64, 0, len(participants)),
		Rankings: make([]Ranking, 0, len(participants)),
		Layout:   b.layout,
	}

	for _, p := range participants {
		row, r, err := b.Row(p)
		if err != nil {
			return nil, err
		}
		m.Costs = append(m.Costs, row)
		m.Rankings = append(m.Rankings, r)
	}

	return m, nil
}
