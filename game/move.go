package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a divisor applied to the shared number.
type Move int

// Divisors lists every move in the order the search explores them.
var Divisors = [...]Move{2, 3, 4}

func (m Move) String() string {
	return "÷" + strconv.Itoa(int(m))
}

// ParseMove reads a divisor such as "3" or "÷3".
func ParseMove(s string) (Move, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "÷")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse move %q: %w", s, err)
	}
	for _, d := range Divisors {
		if Move(n) == d {
			return d, nil
		}
	}
	return 0, fmt.Errorf("parse move %q: divisor must be one of 2, 3 or 4", s)
}
