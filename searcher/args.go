package searcher

import "divgame/game"

type Option func(c *config)

type config struct {
	evaluate game.Evaluate
}

func newConfig(options []Option) config {
	c := config{ // Default values
		evaluate: game.EvaluateScoreDifference,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithEvaluationFn replaces the leaf evaluation. Values are read from the
// computer's perspective.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}
