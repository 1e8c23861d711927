package frontier

// Sink receives every emitted point, in emission order.
type Sink interface {
	Put(p Point) error
}

type SinkFunc func(p Point) error

func (f SinkFunc) Put(p Point) error {
	return f(p)
}

// Collector keeps every point in memory.
type Collector struct {
	points []Point
}

func NewCollector() *Collector {
	return &Collector{points: make([]Point, 0)}
}

func (c *Collector) Put(p Point) error {
	c.points = append(c.points, p)
	return nil
}

func (c *Collector) Points() []Point {
	return c.points
}

// Best returns the highest profit emitted for each cell.
func (c *Collector) Best() map[Cell]int {
	best := make(map[Cell]int, len(c.points))
	for _, p := range c.points {
		if v, ok := best[p.Cell()]; !ok || p.Profit > v {
			best[p.Cell()] = p.Profit
		}
	}
	return best
}

type Counter struct {
	n int
}

func (c *Counter) Put(_ Point) error {
	c.n++
	return nil
}

func (c *Counter) Count() int {
	return c.n
}
