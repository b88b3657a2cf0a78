package config

import "time"

// TickInterval returns the fixed time between ticks: difficulty × unit.
// A larger difficulty number therefore gives a slower game.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.Difficulty) * time.Duration(t.UnitMS) * time.Millisecond
}

// TickInterval returns the tick interval of the config.
func (c SnakeConfig) TickInterval() time.Duration {
	return c.Timing.TickInterval()
}
