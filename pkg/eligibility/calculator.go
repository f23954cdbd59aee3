package eligibility

import "time"

// Calculator computes eligibility against a clock snapshot taken once per
// call. It is immutable after construction and safe for concurrent use.
type Calculator struct {
	clock  Clock
	window Window
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock overrides the time source. Nil clocks are ignored.
func WithClock(c Clock) Option {
	return func(calc *Calculator) {
		if c != nil {
			calc.clock = c
		}
	}
}

// WithWindow overrides the eligibility window.
// Panics for invalid windows so misconfiguration fails at startup.
func WithWindow(w Window) Option {
	if err := w.Validate(); err != nil {
		panic(err)
	}
	return func(calc *Calculator) {
		calc.window = w
	}
}

// New returns a Calculator using the real clock and DefaultWindow unless
// overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		clock:  RealClock{},
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Window returns the configured window.
func (c *Calculator) Window() Window {
	return c.window
}

// Now returns the calculator's current time.
func (c *Calculator) Now() time.Time {
	return c.clock.Now()
}

// Compute derives age and eligibility for dob.
func (c *Calculator) Compute(dob time.Time) Result {
	return Compute(dob, c.clock.Now(), c.window)
}

// ComputeString parses a YYYY-MM-DD date of birth and computes eligibility.
func (c *Calculator) ComputeString(dob string) (Result, error) {
	now := c.clock.Now()
	d, err := ParseDOB(dob, now.Location())
	if err != nil {
		return Result{}, err
	}
	return Compute(d, now, c.window), nil
}

// Bounds returns the date-of-birth range for the date picker.
func (c *Calculator) Bounds() (earliest, latest time.Time) {
	return DOBBounds(c.clock.Now(), c.window)
}
