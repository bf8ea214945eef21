package input

import "time"

// DefaultClickTimeout is the idle time after which click counting restarts.
const DefaultClickTimeout = 500 * time.Millisecond

// ClickCount is the multiplicity of the latest click.
type ClickCount uint8

const (
	ClickNone ClickCount = iota
	ClickSingle
	ClickDouble
	ClickTriple
	ClickMoreThanTriple
)

func (c ClickCount) String() string {
	return [...]string{"none", "single", "double", "triple", "more-than-triple"}[c]
}

// ClickState counts consecutive clicks on the same target. It is ticked
// once per frame.
type ClickState struct {
	Timeout time.Duration

	elapsed time.Duration
	count   ClickCount
	target  uint64
}

// NewClickState returns a click counter; a zero timeout uses
// DefaultClickTimeout.
func NewClickState(timeout time.Duration) ClickState {
	if timeout <= 0 {
		timeout = DefaultClickTimeout
	}
	return ClickState{Timeout: timeout}
}

func (c *ClickState) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultClickTimeout
	}
	return c.Timeout
}

// Tick advances the idle timer and resets the count once it expires.
func (c *ClickState) Tick(dt time.Duration) {
	if c.count == ClickNone {
		return
	}
	c.elapsed += dt
	if c.elapsed >= c.timeout() {
		c.count = ClickNone
		c.elapsed = 0
	}
}

// Click registers a click on target and returns the new count. Clicking a
// different target starts over; the count saturates at MoreThanTriple.
func (c *ClickState) Click(target uint64) ClickCount {
	if target != c.target {
		c.count = ClickNone
		c.target = target
	}
	if c.count < ClickMoreThanTriple {
		c.count++
	}
	c.elapsed = 0
	return c.count
}

func (c ClickState) Count() ClickCount { return c.count }

// Reset forgets the current click sequence.
func (c *ClickState) Reset() {
	c.count = ClickNone
	c.elapsed = 0
}
