package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guillaume-gricourt/HmnTrimmer/internal/pipeline"
)

func TestComma(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"hundreds", 999, "999"},
		{"thousand", 1234, "1,234"},
		{"million", 1234567, "1,234,567"},
		{"billion", 1234567890, "1,234,567,890"},
		{"negative", -1234, "-1,234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Comma(tt.input))
		})
	}
}

func TestPrintSummarySuppressedAtLowVerbosity(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, pipeline.Stats{Total: 10, Kept: 8, Discarded: 2}, time.Second, 1)
	assert.Empty(t, buf.String())
}

func TestPrintSummaryIncludesCounts(t *testing.T) {
	var buf bytes.Buffer
	stats := pipeline.Stats{
		Total: 10, Kept: 8, Discarded: 2,
		DiscardedByFilter: map[string]uint64{"LenMin": 2},
	}
	PrintSummary(&buf, stats, time.Second, 4)
	out := buf.String()
	assert.Contains(t, out, "Total reads: 10")
	assert.Contains(t, out, "Kept reads: 8")
	assert.Contains(t, out, "LenMin")
}
