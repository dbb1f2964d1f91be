package filter

// EvalQualTail implements the tail quality trim kernel (§4.1.1).
//
// It scans from the 3' end looking for a run of at least base_number
// consecutive bases at or below base_quality, and records the leftmost
// point such a run reaches as the candidate truncation length. A shorter
// read than base_number is discarded outright; an empty truncation or one
// whose length falls below the optional len_perc threshold is also
// discarded.
func EvalQualTail(seq, qual []byte, params Params) Decision {
	size := len(qual)
	q := byte(params["base_quality"])
	n := int(params["base_number"])
	if n < 1 {
		n = 1
	}
	if size < n {
		return Decision{Discard: true}
	}

	lentokeep := size
	run := 0
	for i := size - 1; i >= 0; i-- {
		if qual[i] <= q {
			run++
		} else {
			run = 0
		}
		if run >= n {
			lentokeep = i
		}
	}

	if lentokeep == size {
		return Decision{Keep: size}
	}
	if lentokeep < 1 {
		return Decision{Discard: true}
	}
	if p, ok := params["len_perc"]; ok {
		if lentokeep*100/size < int(p) {
			return Decision{Discard: true}
		}
	}
	return Decision{Keep: lentokeep}
}
