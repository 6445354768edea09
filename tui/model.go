package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"divgame/engine"
	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher"
	"divgame/searcher/agent"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// maxLog is how many move log lines stay on screen.
const maxLog = 10

type Config struct {
	Depth     int
	Algorithm searcher.Algorithm
	First     game.Player
	StartMin  int
	StartMax  int
	Seed      uint64 // 0 picks a new seed per game
	AIDelay   time.Duration
}

// computerMoveMsg asks for the computer's move in game number game. Ticks
// from an abandoned game are dropped.
type computerMoveMsg struct {
	game int
}

type model struct {
	cfg       Config
	searchers map[searcher.Algorithm]searcher.Searcher
	algorithm searcher.Algorithm

	engine *engine.Engine
	game   int
	moves  []string
	last   *metrics.SearchMetric
	err    string
}

func newModel(cfg Config) (model, error) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = searcher.AlgorithmAlphaBeta
	}
	m := model{
		cfg:       cfg,
		searchers: make(map[searcher.Algorithm]searcher.Searcher, len(searcher.Algorithms)),
		algorithm: cfg.Algorithm,
	}
	for _, a := range searcher.Algorithms {
		s, err := searcher.New(a)
		if err != nil {
			return model{}, err
		}
		m.searchers[a] = s
	}
	if _, ok := m.searchers[m.algorithm]; !ok {
		return model{}, fmt.Errorf("unknown algorithm %q", m.algorithm)
	}
	if err := m.newGame(); err != nil {
		return model{}, err
	}
	return m, nil
}

func (m *model) agent() agent.Agent {
	return agent.NewSearchAgent(m.searchers[m.algorithm], m.cfg.Depth)
}

func (m *model) newGame() error {
	seed := m.cfg.Seed
	if seed != 0 {
		seed += uint64(m.game)
	}
	e, err := engine.New(engine.Config{
		First:    m.cfg.First,
		StartMin: m.cfg.StartMin,
		StartMax: m.cfg.StartMax,
		Seed:     seed,
	}, m.agent())
	if err != nil {
		return err
	}
	m.start(e)
	return nil
}

// start switches the screen to e, abandoning any game in progress.
func (m *model) start(e *engine.Engine) {
	m.engine = e
	m.game++
	m.moves = nil
	m.last = nil
	m.err = ""
}

// scheduleComputer returns the delayed computer move when it is the
// computer's turn.
func (m model) scheduleComputer() tea.Cmd {
	if m.engine.Over() || m.engine.State.Turn != game.Computer {
		return nil
	}
	id := m.game
	return tea.Tick(m.cfg.AIDelay, func(time.Time) tea.Msg {
		return computerMoveMsg{game: id}
	})
}

func (m model) Init() tea.Cmd {
	return m.scheduleComputer()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case computerMoveMsg:
		if msg.game != m.game {
			return m, nil
		}
		return m.playComputer()
	}
	return m, nil
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		if err := m.newGame(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		return m, m.scheduleComputer()
	case "a":
		if m.algorithm == searcher.AlgorithmMinimax {
			m.algorithm = searcher.AlgorithmAlphaBeta
		} else {
			m.algorithm = searcher.AlgorithmMinimax
		}
		m.engine.SetAI(m.agent())
		log.Info().Msgf("switched to %s", m.algorithm)
		return m, nil
	case "2", "3", "4":
		move, _ := game.ParseMove(key)
		return m.playHuman(move)
	}
	return m, nil
}

func (m model) playHuman(move game.Move) (tea.Model, tea.Cmd) {
	turn, err := m.engine.PlayHuman(move)
	var illegal *game.IllegalMoveError
	switch {
	case errors.As(err, &illegal):
		m.err = fmt.Sprintf("%d is not divisible by %d", illegal.Number, int(illegal.Move))
		return m, nil
	case errors.Is(err, engine.ErrOutOfTurn):
		m.err = "Wait for the computer to move"
		return m, nil
	case err != nil:
		m.err = err.Error()
		return m, nil
	}
	m.err = ""
	m.push(turn)
	return m, m.scheduleComputer()
}

func (m model) playComputer() (tea.Model, tea.Cmd) {
	turn, err := m.engine.PlayComputer()
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	if turn.Entry != nil {
		metric := turn.Entry.Metrics
		m.last = &metric
	}
	m.push(turn)
	return m, m.scheduleComputer()
}

func (m *model) push(turn engine.Turn) {
	line := ""
	switch {
	case turn.Entry != nil:
		line = turn.Entry.String()
	case turn.Skipped:
		line = fmt.Sprintf("%s passed, skipping turn", m.engine.State.Turn.Opponent())
	case turn.Over:
		line = "Both players passed"
	default:
		return
	}
	m.moves = append([]string{line}, m.moves...)
	if len(m.moves) > maxLog {
		m.moves = m.moves[:maxLog]
	}
}

func (m model) status() string {
	switch {
	case m.engine.Over():
		return "Game Over! " + m.engine.Outcome().Message()
	case m.engine.State.Turn == game.Human:
		return "Your Turn"
	default:
		return "Computer's Turn..."
	}
}

func (m model) View() string {
	var b strings.Builder
	state := m.engine.State

	b.WriteString(titleStyle.Render("Division Game"))
	b.WriteString("\n")
	b.WriteString(numberStyle.Render(fmt.Sprint(state.Number)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d    %s %d\n",
		labelStyle.Render("Human:"), state.HumanScore,
		labelStyle.Render("Computer:"), state.ComputerScore)
	fmt.Fprintf(&b, "%s %s (depth %d)\n\n", labelStyle.Render("AI:"), m.algorithm, m.cfg.Depth)

	if m.engine.Over() {
		b.WriteString(overStyle.Render(m.status()))
	} else {
		b.WriteString(statusStyle.Render(m.status()))
	}
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	if m.last != nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("AI (%s) visited %d nodes in %s",
			m.last.Algorithm, m.last.NodesVisited, m.last.Duration.Round(time.Microsecond))))
		b.WriteString("\n")
	}

	if len(m.moves) > 0 {
		b.WriteString("\n")
		for _, line := range m.moves {
			b.WriteString(logStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("2/3/4 divide • n new game • a switch algorithm • q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run plays games in the terminal until the user quits.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
