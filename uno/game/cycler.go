package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indexes in the current direction.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Set(index int) {
	c.current = index
}

// Peek returns the seat steps positions ahead without moving.
func (c *Cycler) Peek(steps int) int {
	return c.from(c.current, steps)
}

func (c *Cycler) Next() int {
	return c.Advance(1)
}

func (c *Cycler) Advance(steps int) int {
	c.current = c.from(c.current, steps)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) from(index int, steps int) int {
	offset := (c.direction * steps) % c.size
	return (index + offset + c.size) % c.size
}
