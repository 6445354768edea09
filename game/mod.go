package game

// TerminalThreshold is the value at or below which the shared number ends the game.
const TerminalThreshold = 10

// Evaluate scores a state from the computer's perspective: positive values
// favour the computer, negative values favour the human.
type Evaluate func(GameState) int
