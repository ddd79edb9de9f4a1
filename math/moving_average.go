package math

type MovingAverage struct {
	values   []float64
	index    int
	count    int
	total    float64
	Estimate float64
}

func (a *MovingAverage) Init(size int) {
	if size < 1 {
		size = 1
	}
	a.values = make([]float64, size)
	a.Reset()
}

func (a *MovingAverage) Reset() {
	for i := range a.values {
		a.values[i] = 0
	}
	a.index = 0
	a.count = 0
	a.total = 0
	a.Estimate = 0
}

// Update averages over the samples seen so far until the window fills.
func (a *MovingAverage) Update(val float64) float64 {
	if len(a.values) == 0 {
		a.Init(1)
	}
	a.total -= a.values[a.index]
	a.values[a.index] = val
	a.total += val
	a.index = (a.index + 1) % len(a.values)
	if a.count < len(a.values) {
		a.count++
	}
	a.Estimate = a.total / float64(a.count)
	return a.Estimate
}
