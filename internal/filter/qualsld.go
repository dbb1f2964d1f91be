package filter

// EvalQualSld implements the sliding-window mean quality trim kernel
// (§4.1.2). It scans from the 3' end maintaining a running sum over a
// window of windows_length bases, clipped at the right edge while the
// window is still filling, and records the leftmost position whose window
// mean falls below mean_quality. A post-pass walks the candidate boundary
// further left while the single base at that boundary is itself below
// threshold, converting the final inclusive boundary into an exclusive
// length.
func EvalQualSld(seq, qual []byte, params Params) Decision {
	size := len(qual)
	w := int(params["windows_length"])
	m := int(params["mean_quality"])
	if w < 1 || size < w {
		return Decision{Discard: true}
	}

	lentokeep := size
	sum := 0
	for i := size - 1; i >= 0; i-- {
		sum += int(qual[i])
		if size-i >= w {
			if size-i > w {
				sum -= int(qual[i+w])
			}
			if sum/w < m {
				lentokeep = i
			}
		}
	}

	if lentokeep < size {
		decremented := false
		for lentokeep > 1 && int(qual[lentokeep]) < m {
			lentokeep--
			decremented = true
		}
		if decremented {
			lentokeep++
		}
	}

	if lentokeep < 1 || lentokeep < w {
		return Decision{Discard: true}
	}
	if lentokeep == size {
		return Decision{Keep: size}
	}
	return Decision{Keep: lentokeep}
}
