package filter

// EvalLenMin implements the minimum-length discard kernel (§4.1.3): reads
// at or below len_min are discarded outright, everything longer passes
// through untouched.
func EvalLenMin(seq, qual []byte, params Params) Decision {
	min := int(params["len_min"])
	if len(seq) <= min {
		return Decision{Discard: true}
	}
	return Decision{Keep: len(seq)}
}
