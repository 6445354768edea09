package game

import (
	"fmt"
	"strings"
)

// Player identifies whose turn it is.
type Player int

const (
	Human Player = iota
	Computer
)

func (p Player) String() string {
	switch p {
	case Human:
		return "Human"
	case Computer:
		return "Computer"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Computer {
		return Human
	}
	return Computer
}

// ParsePlayer accepts "human" or "computer" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "computer":
		return Computer, nil
	default:
		return 0, fmt.Errorf("unknown player %q: want human or computer", s)
	}
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(p.String())), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// GameState is an immutable snapshot of a game. Operations on a GameState
// always return a new value.
type GameState struct {
	Number        int    `json:"number"`
	HumanScore    int    `json:"humanScore"`
	ComputerScore int    `json:"computerScore"`
	Turn          Player `json:"turn"`
}

// NewGameState returns a fresh game with zero scores.
func NewGameState(number int, first Player) GameState {
	return GameState{Number: number, Turn: first}
}

// Pass hands the turn to the opponent without changing the number or scores.
func (s GameState) Pass() GameState {
	s.Turn = s.Turn.Opponent()
	return s
}

func (s GameState) String() string {
	return fmt.Sprintf("number=%d human=%d computer=%d turn=%s", s.Number, s.HumanScore, s.ComputerScore, s.Turn)
}
