package fastqio

// phred33Offset is the ASCII offset of Phred+33 encoding used by FASTQ
// quality lines.
const phred33Offset = 33

func decodePhred(ascii []byte) []byte {
	out := make([]byte, len(ascii))
	for i, b := range ascii {
		out[i] = b - phred33Offset
	}
	return out
}

func encodePhred(raw []byte) []byte {
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = b + phred33Offset
	}
	return out
}
