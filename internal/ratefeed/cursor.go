package ratefeed

import "lending-rate-lab/internal/domain"

// cursor is a forward-only reveal position over a cleaned series. It is
// explicitly finite and never restartable: once exhausted it stays
// exhausted.
type cursor struct {
	obs []domain.RateObservation
	pos int
}

func newCursor(obs []domain.RateObservation) *cursor {
	return &cursor{obs: obs}
}

// next returns the next not-yet-revealed observation and advances.
// The second return value is false once the series is exhausted.
func (c *cursor) next() (domain.RateObservation, bool) {
	if c.pos >= len(c.obs) {
		return domain.RateObservation{}, false
	}
	obs := c.obs[c.pos]
	c.pos++
	return obs, true
}

// peek returns the next observation without advancing.
func (c *cursor) peek() (domain.RateObservation, bool) {
	if c.pos >= len(c.obs) {
		return domain.RateObservation{}, false
	}
	return c.obs[c.pos], true
}
