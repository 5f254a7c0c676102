package quiz

// Countdown is the session clock. It counts logical seconds; the caller owns
// the tick cadence. Expiry is reported exactly once per arming, on the
// transition from one second remaining to zero.
type Countdown struct {
	remaining int
	armed     bool
}

// Start arms the countdown at totalSeconds. Re-arming fully resets any
// previous state.
func (c *Countdown) Start(totalSeconds int) {
	c.remaining = totalSeconds
	c.armed = totalSeconds > 0
}

// Tick consumes one second. It returns true on the tick that exhausts the
// countdown; every later call returns false until Start is called again.
func (c *Countdown) Tick() (expired bool) {
	if !c.armed {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.armed = false
		return true
	}
	return false
}

// Stop disarms the countdown without reporting expiry.
func (c *Countdown) Stop() {
	c.armed = false
}

// Armed reports whether the countdown is running.
func (c *Countdown) Armed() bool {
	return c.armed
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}
