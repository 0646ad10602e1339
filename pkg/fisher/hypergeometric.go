package fisher

import "math"

// hypergeometric is the distribution of the top-left cell given the table
// margins: draws = first column total, successes = first row total
type hypergeometric struct {
	total     int
	successes int
	draws     int
	lower     int
	upper     int
	logNorm   float64
}

func newHypergeometric(t Table) hypergeometric {
	total := t.Total()
	successes := t.A + t.B
	draws := t.A + t.C
	failures := total - successes

	return hypergeometric{
		total:     total,
		successes: successes,
		draws:     draws,
		lower:     max(0, draws-failures),
		upper:     min(draws, successes),
		logNorm:   logChoose(total, draws),
	}
}

func (h hypergeometric) pmf(x int) float64 {
	if x < h.lower || x > h.upper {
		return 0
	}
	failures := h.total - h.successes
	return math.Exp(logChoose(h.successes, x) + logChoose(failures, h.draws-x) - h.logNorm)
}

// cdf returns P(X <= x)
func (h hypergeometric) cdf(x int) float64 {
	sum := 0.0
	for k := h.lower; k <= min(x, h.upper); k++ {
		sum += h.pmf(k)
	}
	return sum
}

// sf returns P(X >= x)
func (h hypergeometric) sf(x int) float64 {
	sum := 0.0
	for k := max(x, h.lower); k <= h.upper; k++ {
		sum += h.pmf(k)
	}
	return sum
}

// twoSided sums the probability of every outcome no more likely than x
func (h hypergeometric) twoSided(x int) float64 {
	observed := h.pmf(x) * relativeTolerance

	sum := 0.0
	for k := h.lower; k <= h.upper; k++ {
		if p := h.pmf(k); p <= observed {
			sum += p
		}
	}
	return sum
}

func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return logFactorial(n) - logFactorial(k) - logFactorial(n-k)
}

func logFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}
