package solver

import (
	"context"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Unsolved marks a position without a distance.
const Unsolved = -1

// Table holds the positions and their distances. Dist0[i] is the number of
// white moves needed to capture the black piece from Positions[i] with white
// to move; Dist1[i] is the same with black to move.
type Table struct {
	Positions []State
	Dist0     []int
	Dist1     []int

	index map[State]int
}

type Options struct {
	Workers int
	Logger  *zap.Logger
}

func NewTable(positions []State) *Table {
	t := &Table{
		Positions: positions,
		Dist0:     make([]int, len(positions)),
		Dist1:     make([]int, len(positions)),
		index:     make(map[State]int, len(positions)),
	}
	for i, pos := range positions {
		t.index[pos] = i
		t.Dist0[i] = Unsolved
		t.Dist1[i] = Unsolved
	}
	return t
}

func (t *Table) Len() int { return len(t.Positions) }

func (t *Table) Index(s State) (int, bool) {
	i, ok := t.index[s]
	return i, ok
}

func (t *Table) dist(dists []int, s State) (int, bool) {
	i, ok := t.index[s]
	if !ok || dists[i] == Unsolved {
		return Unsolved, false
	}
	return dists[i], true
}

func (t *Table) Solved0() int { return countSolved(t.Dist0) }

func (t *Table) Solved1() int { return countSolved(t.Dist1) }

func countSolved(dists []int) int {
	return lo.CountBy(dists, func(d int) bool { return d != Unsolved })
}

// Solve runs the retrograde analysis over positions until no more white to
// move positions get a distance.
func Solve(ctx context.Context, positions []State, opts Options) (*Table, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	t := NewTable(positions)
	s := &solver{t: t, opts: opts}
	size := (t.Len() + opts.Workers - 1) / opts.Workers
	if size == 0 {
		size = 1
	}
	s.chunks = lo.Chunk(lo.Range(t.Len()), size)

	if err := s.run(ctx, s.seed); err != nil {
		return nil, fmt.Errorf("failed to seed terminal positions: %w", err)
	}
	solved := t.Solved0()
	opts.Logger.Info("Seeded terminal positions", zap.Int("positions", t.Len()), zap.Int("dist0", solved))

	for iter := 1; ; iter++ {
		if err := s.run(ctx, s.updateDist1); err != nil {
			return nil, fmt.Errorf("failed to update dist1 on iteration %d: %w", iter, err)
		}
		if err := s.run(ctx, s.updateDist0); err != nil {
			return nil, fmt.Errorf("failed to update dist0 on iteration %d: %w", iter, err)
		}

		prev := solved
		solved = t.Solved0()
		opts.Logger.Info("Solve iteration",
			zap.Int("iteration", iter), zap.Int("dist1", t.Solved1()), zap.Int("dist0", solved))

		if solved == prev {
			break
		}
	}

	return t, nil
}

type solver struct {
	t      *Table
	opts   Options
	chunks [][]int
}

// run calls fn for every position index. Each call only writes the slot of
// its own index, so chunks never share writes.
func (s *solver) run(ctx context.Context, fn func(i int, buf []State) []State) error {
	errg, ctx := errgroup.WithContext(ctx)
	for _, chunk := range s.chunks {
		chunk := chunk
		errg.Go(func() error {
			var buf []State
			for n, i := range chunk {
				if n&0xfff == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				buf = fn(i, buf[:0])
			}
			return nil
		})
	}
	return errg.Wait()
}

func (s *solver) seed(i int, buf []State) []State {
	buf = s.t.Positions[i].AppendMoves(buf, White)
	for _, move := range buf {
		if move.IsEmpty(Black) {
			s.t.Dist0[i] = 0
			break
		}
	}
	return buf
}

// updateDist1 sets dist1 to one more than the worst black reply, but only
// once every black reply is solved.
func (s *solver) updateDist1(i int, buf []State) []State {
	buf = s.t.Positions[i].AppendMoves(buf, Black)
	worst := Unsolved
	for _, move := range buf {
		d, ok := s.t.dist(s.t.Dist0, move)
		if !ok {
			return buf
		}
		if d > worst {
			worst = d
		}
	}
	if worst != Unsolved {
		s.t.Dist1[i] = worst + 1
	}
	return buf
}

// updateDist0 sets dist0 of an unsolved position to the best solved white
// move.
func (s *solver) updateDist0(i int, buf []State) []State {
	if s.t.Dist0[i] != Unsolved {
		return buf
	}

	buf = s.t.Positions[i].AppendMoves(buf, White)
	best := Unsolved
	for _, move := range buf {
		d, ok := s.t.dist(s.t.Dist1, move)
		if !ok {
			continue
		}
		if best == Unsolved || d < best {
			best = d
		}
	}
	s.t.Dist0[i] = best
	return buf
}

// Deepest returns the first position with the largest dist0.
func (t *Table) Deepest() (State, int, bool) {
	best, at := Unsolved, -1
	for i, d := range t.Dist0 {
		if d > best {
			best, at = d, i
		}
	}
	if at < 0 {
		return State{}, Unsolved, false
	}
	return t.Positions[at], best, true
}
