package huff_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/huff"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanStatsConcreteScenario(t *testing.T) {
	stats, err := huff.ScanStats(bytes.NewReader([]byte{0x41, 0x41, 0x41, 0x42}))
	require.NoError(t, err)

	require.Len(t, stats, 3)
	assert.Equal(
		t, huff.SymbolStat{Symbol: 0x41, Count: 3, CodeLength: 1, Code: "1"}, stats[0])
	assert.Equal(
		t, huff.SymbolStat{Symbol: 0x42, Count: 1, CodeLength: 2, Code: "00"}, stats[1])
	assert.Equal(
		t,
		huff.SymbolStat{Symbol: huff.EOFSymbol, Count: 1, CodeLength: 2, Code: "01"},
		stats[2])
}

func TestScanStatsSingleSymbolInput(t *testing.T) {
	stats, err := huff.ScanStats(bytes.NewReader(bytes.Repeat([]byte{0x41}, 1000)))
	require.NoError(t, err)

	// One real leaf plus the end-of-stream leaf, both with one-bit codes.
	require.Len(t, stats, 2)
	assert.Equal(t, 0x41, stats[0].Symbol)
	assert.EqualValues(t, 1000, stats[0].Count)
	assert.Equal(t, 1, stats[0].CodeLength)
	assert.Equal(t, huff.EOFSymbol, stats[1].Symbol)
	assert.Equal(t, 1, stats[1].CodeLength)
}

func TestScanStatsEmptyInput(t *testing.T) {
	stats, err := huff.ScanStats(bytes.NewReader(nil))
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(
		t,
		huff.SymbolStat{Symbol: huff.EOFSymbol, Count: 1, CodeLength: 0, Code: ""},
		stats[0])
}

func TestStatsCSVRendering(t *testing.T) {
	stats, err := huff.ScanStats(bytes.NewReader([]byte{0x41}))
	require.NoError(t, err)

	rendered, err := gocsv.MarshalString(&stats)
	require.NoError(t, err)
	assert.Equal(
		t, "symbol,count,code_length,code\n65,1,1,0\n256,1,1,1\n", rendered)
}
