package engine

import (
	"math"
	"math/rand"
)

// NoMove is returned by a Strategy when the board has no empty cell.
const NoMove = -1

// Strategy picks the computer's next cell.
type Strategy interface {
	// ChooseMove returns the index to play for mark, or NoMove on a full board.
	ChooseMove(b Board, mark Mark, winStreak int) int
}

// NewStrategy returns the strategy for a one-player config:
// exact search on 3x3 hard, the heuristic everywhere else.
// Two-player configs have no strategy and yield nil.
func NewStrategy(cfg GameConfig, rng *rand.Rand) Strategy {
	if !cfg.HasAI() {
		return nil
	}
	if cfg.GridSize == 3 && cfg.Difficulty == DifficultyHard {
		return Minimax{}
	}
	return NewHeuristic(rng, cfg.Difficulty == DifficultyEasy)
}

// Minimax solves the position exhaustively. Intended for 3x3 only.
//
// Terminal positions score +10 for a computer win, -10 for a loss and 0 for a draw.
// There is no depth bonus and no pruning; among equally scored moves the lowest
// index wins because the best move is only replaced on strict improvement.
type Minimax struct{}

// ChooseMove implements Strategy.
func (Minimax) ChooseMove(b Board, mark Mark, winStreak int) int {
	empties := b.EmptyCells()
	if len(empties) == 0 {
		return NoMove
	}

	// single owned buffer, every speculative placement is undone before returning
	work := b.Clone()

	best := NoMove
	bestScore := math.MinInt
	for _, i := range empties {
		work.cells[i] = mark
		score := minimax(work, mark, winStreak, false)
		work.clear(i)

		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	return best
}

func minimax(b Board, self Mark, winStreak int, maximizing bool) int {
	switch {
	case hasWon(b, self, winStreak):
		return 10
	case hasWon(b, self.Opponent(), winStreak):
		return -10
	case b.IsFull():
		return 0
	}

	if maximizing {
		best := math.MinInt
		for i, c := range b.cells {
			if c != Empty {
				continue
			}
			b.cells[i] = self
			score := minimax(b, self, winStreak, false)
			b.clear(i)
			best = max(best, score)
		}
		return best
	}

	best := math.MaxInt
	opp := self.Opponent()
	for i, c := range b.cells {
		if c != Empty {
			continue
		}
		b.cells[i] = opp
		score := minimax(b, self, winStreak, true)
		b.clear(i)
		best = min(best, score)
	}
	return best
}

// Heuristic plays win-if-possible, then block, then a random empty cell.
// In easy mode it always plays randomly.
type Heuristic struct {
	rng  *rand.Rand
	easy bool
}

// NewHeuristic creates a heuristic strategy drawing from rng.
// A nil rng falls back to a fixed seed of 1.
func NewHeuristic(rng *rand.Rand, easy bool) *Heuristic {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Heuristic{rng: rng, easy: easy}
}

// ChooseMove implements Strategy.
func (h *Heuristic) ChooseMove(b Board, mark Mark, winStreak int) int {
	empties := b.EmptyCells()
	if len(empties) == 0 {
		return NoMove
	}

	if !h.easy {
		work := b.Clone()
		if i := firstWinningCell(work, empties, mark, winStreak); i != NoMove {
			return i
		}
		if i := firstWinningCell(work, empties, mark.Opponent(), winStreak); i != NoMove {
			return i
		}
	}

	return empties[h.rng.Intn(len(empties))]
}

// firstWinningCell returns the lowest empty index that completes a run for mark.
func firstWinningCell(work Board, empties []int, mark Mark, winStreak int) int {
	for _, i := range empties {
		work.cells[i] = mark
		won := hasWon(work, mark, winStreak)
		work.clear(i)
		if won {
			return i
		}
	}
	return NoMove
}
