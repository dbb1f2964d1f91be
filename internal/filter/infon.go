package filter

// EvalInfoN implements the ambiguous-base discard kernel (§4.1.5): a read
// is discarded once its count of N bases reaches score, counted across the
// whole read regardless of position.
func EvalInfoN(seq, qual []byte, params Params) Decision {
	limit := int(params["score"])
	count := 0
	for _, b := range seq {
		if b == 'N' || b == 'n' {
			count++
			if count >= limit {
				return Decision{Discard: true}
			}
		}
	}
	return Decision{Keep: len(seq)}
}
