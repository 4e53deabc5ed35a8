package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleRounds(t *testing.T) {
	got := scaleRounds(benchRounds, 0.001)
	require.Len(t, got, len(benchRounds))
	assert.Equal(t, 1000, got[0].Runs)
	assert.Equal(t, 100, got[4].Runs)
	assert.Equal(t, 10000, got[4].Size)

	got = scaleRounds(benchRounds, 1e-9)
	for _, r := range got {
		assert.Equal(t, 1, r.Runs)
	}

	// The shared table is left untouched.
	assert.Equal(t, 1_000_000, benchRounds[0].Runs)
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 2.0, ratio(200, 100), 1e-9)
	assert.InDelta(t, 0.3, ratio(100, 333), 1e-9)
	assert.InDelta(t, 50.0, ratio(50, 0), 1e-9)
}

func TestWriteBenchTable(t *testing.T) {
	var buf bytes.Buffer
	writeBenchTable(&buf, []string{"XS", "S"}, []benchScore{
		{Item: "Hash32", Ratios: []float64{1.2, 0.8}, Average: 1.0, Faster: false},
		{Item: "Hash128", Ratios: []float64{3, 4.5}, Average: 3.8, Faster: true},
	})

	want := strings.Join([]string{
		"| Item    | XS   | S    | Average | Faster |",
		"| ------- | ---- | ---- | ------- | ------ |",
		"| Hash32  | 1.2x | 0.8x | 1.0x    | N      |",
		"| Hash128 | 3.0x | 4.5x | 3.8x    | Y      |",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestBenchCommand(t *testing.T) {
	stdout, _, err := runCmd(t, "", "bench", "-scale", "0.00001")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Info:")
	assert.Contains(t, stdout, "| Item")
	assert.Contains(t, stdout, "| Hash32")
	assert.Contains(t, stdout, "| Hash128")
	assert.Contains(t, stdout, "of 2 tasks are faster!")
}

func TestBenchCommandJSON(t *testing.T) {
	stdout, _, err := runCmd(t, "", "bench", "-scale", "0.00001", "-format", "json")
	require.NoError(t, err)

	var got benchReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, got.Rounds)
	require.Len(t, got.Scores, 2)
	for _, s := range got.Scores {
		assert.Len(t, s.Ratios, 5)
	}
}

func TestBenchCommandErrors(t *testing.T) {
	_, _, err := runCmd(t, "", "bench", "-scale", "0")
	require.Error(t, err)

	_, _, err = runCmd(t, "", "bench", "-format", "csv")
	require.Error(t, err)
}
