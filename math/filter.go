package math

// LowPassFilter is a single pole exponential filter: alpha weights the new
// sample, 1-alpha the previous output.
func LowPassFilter(previous float64, value float64, alpha float64) float64 {
	return previous*(1-alpha) + value*alpha
}
