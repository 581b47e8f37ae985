// Package passenger holds the traveler-count selector, the per-traveler
// form state of the booking wizard and its validation.
package passenger

// Counter bounds, matching the provider's own search limits.
const (
	MinAdults  = 1
	MaxPerType = 9
)

// Count is the full adults/children/infants triple.
type Count struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func (c Count) Total() int {
	return c.Adults + c.Children + c.Infants
}

// Counter implements the passenger-count selector. Invariants, in order
// of precedence: adults never drop below one; decreasing adults clamps
// infants down to the new adults value; infants never exceed adults.
// Out-of-range requests are silently clamped, never rejected.
type Counter struct {
	count    Count
	onChange func(Count)
}

// NewCounter starts at one adult. onChange, if non-nil, receives the full
// triple after every successful mutation.
func NewCounter(onChange func(Count)) *Counter {
	return &Counter{
		count:    Count{Adults: MinAdults},
		onChange: onChange,
	}
}

func (c *Counter) Snapshot() Count {
	return c.count
}

func (c *Counter) SetAdults(n int) {
	next := clamp(n, MinAdults, MaxPerType)

	changed := next != c.count.Adults
	c.count.Adults = next

	// fewer adults may strand infants above the cap
	if c.count.Infants > next {
		c.count.Infants = next
		changed = true
	}

	if changed {
		c.notify()
	}
}

func (c *Counter) SetChildren(n int) {
	next := clamp(n, 0, MaxPerType)
	if next == c.count.Children {
		return
	}

	c.count.Children = next
	c.notify()
}

func (c *Counter) SetInfants(n int) {
	next := clamp(n, 0, MaxPerType)
	if next > c.count.Adults {
		next = c.count.Adults
	}

	if next == c.count.Infants {
		return
	}

	c.count.Infants = next
	c.notify()
}

func (c *Counter) IncrementAdults()   { c.SetAdults(c.count.Adults + 1) }
func (c *Counter) DecrementAdults()   { c.SetAdults(c.count.Adults - 1) }
func (c *Counter) IncrementChildren() { c.SetChildren(c.count.Children + 1) }
func (c *Counter) DecrementChildren() { c.SetChildren(c.count.Children - 1) }
func (c *Counter) IncrementInfants()  { c.SetInfants(c.count.Infants + 1) }
func (c *Counter) DecrementInfants()  { c.SetInfants(c.count.Infants - 1) }

func (c *Counter) notify() {
	if c.onChange != nil {
		c.onChange(c.count)
	}
}

func clamp(n, low, high int) int {
	if n < low {
		return low
	}

	if n > high {
		return high
	}

	return n
}
