package filter

const (
	dustWindow    = 64
	dustStep      = 32
	dustK         = 3
	dustWindowMax = 62.0
)

// EvalInfoDust implements the DUST-like low-complexity discard kernel
// (§4.1.4). It tiles the read into WINDOW-length windows advancing by STEP,
// scores each by 3-mer collision counts, folds in a rescaled residue
// window, and discards when the normalised mean complexity exceeds score.
func EvalInfoDust(seq, qual []byte, params Params) Decision {
	c := int(params["score"])
	size := len(seq)

	steps := 0
	rest := size
	if size > dustWindow {
		steps = ((size - dustWindow) / dustStep) + 1
		rest = size - steps*dustStep
		for rest <= dustStep {
			rest += dustStep
			steps--
		}
	}

	var sum float64
	var count int
	for j := 0; j < steps; j++ {
		start := j * dustStep
		score := float64(dust3merScore(seq[start : start+dustWindow]))
		sum += score / dustWindowMax
		count++
	}

	if rest > 5 {
		start := steps * dustStep
		score := float64(dust3merScore(seq[start : start+rest]))
		sum += (score / float64(rest-3)) * (dustWindowMax / float64(rest-2))
	} else {
		sum += 31
	}
	count++

	mean := sum / float64(count)
	if int(mean*100/31) > c {
		return Decision{Discard: true}
	}
	return Decision{Keep: size}
}

// dust3merScore counts 3-mer occurrences in window and returns
// Σ c(c−1)/2 over the counted triplets.
func dust3merScore(window []byte) int {
	counts := make(map[[dustK]byte]int)
	for i := 0; i+dustK <= len(window); i++ {
		var key [dustK]byte
		copy(key[:], window[i:i+dustK])
		counts[key]++
	}
	score := 0
	for _, c := range counts {
		score += c * (c - 1) / 2
	}
	return score
}
