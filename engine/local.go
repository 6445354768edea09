package engine

import (
	"time"

	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	First    game.Player
	StartMin int
	StartMax int
	Seed     uint64
}

// Engine holds the one mutable "current" state of a game session.
type Engine struct {
	ID      string
	Start   game.GameState
	State   game.GameState
	History []Entry

	ai        agent.Agent
	passes    int // Consecutive turns passed without a move
	startTime time.Time
}

// New starts a session from a random number in the configured range.
func New(cfg Config, ai agent.Agent) (*Engine, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state, err := game.RandomStart(rand.New(rand.NewSource(seed)), cfg.StartMin, cfg.StartMax, cfg.First)
	if err != nil {
		return nil, err
	}
	return FromState(state, ai), nil
}

// FromState starts a session at state.
func FromState(state game.GameState, ai agent.Agent) *Engine {
	e := &Engine{
		ID:        uuid.NewString(),
		Start:     state,
		State:     state,
		ai:        ai,
		startTime: time.Now(),
	}
	log.Info().Str("session", e.ID).Int("number", state.Number).Msgf("%s is starting", state.Turn)
	return e
}

// SetAI swaps the computer's move provider for the rest of the game.
func (e *Engine) SetAI(ai agent.Agent) {
	e.ai = ai
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.passes >= 2 || game.IsTerminal(e.State)
}

// Outcome compares the current scores.
func (e *Engine) Outcome() game.Outcome {
	return game.OutcomeOf(e.State)
}

// PlayHuman applies the human's divisor. An illegal divisor returns the
// *game.IllegalMoveError and leaves the state unchanged.
func (e *Engine) PlayHuman(move game.Move) (Turn, error) {
	if e.Over() {
		return Turn{}, ErrGameOver
	}
	if e.State.Turn != game.Human {
		return Turn{}, ErrOutOfTurn
	}

	next, err := game.Apply(e.State, move)
	if err != nil {
		log.Debug().Str("session", e.ID).Err(err).Msg("rejected human move")
		return Turn{}, err
	}
	entry := e.record(game.Human, move, next, metrics.SearchMetric{})
	return Turn{Entry: entry, Over: e.Over()}, nil
}

// PlayComputer asks the AI for a move and adopts the returned state.
func (e *Engine) PlayComputer() (Turn, error) {
	if e.Over() {
		return Turn{}, ErrGameOver
	}
	if e.State.Turn != game.Computer {
		return Turn{}, ErrOutOfTurn
	}

	result, metric := e.ai.FindMove(e.State)
	log.Info().Str("session", e.ID).Msgf("AI (%s) visited %d nodes in %s", metric.Algorithm, metric.NodesVisited, metric.Duration)
	if result == nil {
		return e.pass(), nil
	}
	entry := e.record(game.Computer, result.Move, result.State, metric)
	return Turn{Entry: entry, Over: e.Over()}, nil
}

// pass hands the turn over when an agent returns no move for a live number.
// Two passes in a row end the game.
func (e *Engine) pass() Turn {
	mover := e.State.Turn
	e.passes++
	if e.passes >= 2 {
		log.Info().Str("session", e.ID).Msg("both players passed, ending game")
		return Turn{Over: true}
	}
	log.Info().Str("session", e.ID).Msgf("%s passed, skipping turn", mover)
	e.State = e.State.Pass()
	return Turn{Skipped: true}
}

func (e *Engine) record(actor game.Player, move game.Move, next game.GameState, metric metrics.SearchMetric) *Entry {
	e.State = next
	e.passes = 0
	e.History = append(e.History, Entry{
		Step:    len(e.History) + 1,
		Actor:   actor,
		Move:    move,
		State:   next,
		Metrics: metric,
	})
	entry := e.History[len(e.History)-1]
	log.Info().Str("session", e.ID).Msg(entry.String())
	if e.Over() {
		log.Info().Str("session", e.ID).Msgf("game over: %s", e.Outcome().Message())
	}
	return &entry
}

// Run plays the game to the end with human choosing the human's moves.
func (e *Engine) Run(human agent.Agent) metrics.GameMetric {
	for !e.Over() {
		var err error
		switch e.State.Turn {
		case game.Human:
			result, _ := human.FindMove(e.State)
			if result == nil {
				e.pass()
				continue
			}
			_, err = e.PlayHuman(result.Move)
		case game.Computer:
			_, err = e.PlayComputer()
		}
		if err != nil {
			panic(err) // Agents only return legal moves
		}
	}
	return e.GameMetric()
}

// GameMetric summarises the session so far.
func (e *Engine) GameMetric() metrics.GameMetric {
	end := time.Now()
	return metrics.GameMetric{
		Session:        e.ID,
		StartNumber:    e.Start.Number,
		StartingPlayer: e.Start.Turn.String(),
		Outcome:        e.Outcome().String(),
		HumanScore:     e.State.HumanScore,
		ComputerScore:  e.State.ComputerScore,
		StartTime:      e.startTime,
		EndTime:        end,
		Duration:       end.Sub(e.startTime),
		TotalMoves:     len(e.History),
	}
}

// MoveMetrics returns the computer's search metrics in move order.
func (e *Engine) MoveMetrics() []metrics.MoveMetric {
	var out []metrics.MoveMetric
	for _, entry := range e.History {
		if entry.Actor != game.Computer {
			continue
		}
		out = append(out, metrics.MoveMetric{
			Step:         entry.Step,
			Player:       entry.Actor.String(),
			SearchMetric: entry.Metrics,
		})
	}
	return out
}
