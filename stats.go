package huff

import (
	"io"

	"github.com/dargueta/huff/bitio"
)

// SymbolStat describes one symbol of a would-be compressed stream: how often
// it occurs in the input and the code it would be assigned. The struct tags
// are for CSV rendering.
type SymbolStat struct {
	Symbol     int    `csv:"symbol"`
	Count      uint32 `csv:"count"`
	CodeLength int    `csv:"code_length"`
	Code       string `csv:"code"`
}

// ScanStats runs the frequency and code-assignment passes over the input
// without producing any compressed output. It returns one row per symbol
// that would get a leaf in the code tree, in ascending symbol order, with
// the end-of-stream symbol last.
func ScanStats(input io.Reader) ([]SymbolStat, error) {
	reader := bitio.NewReader(input)
	counts, err := CollectFrequencies(reader)
	if err != nil {
		return nil, err
	}
	codes := DeriveCodes(BuildTree(counts))

	stats := make([]SymbolStat, 0, NumSymbols)
	for symbol, count := range counts {
		if count == 0 {
			continue
		}
		stats = append(stats, SymbolStat{
			Symbol:     symbol,
			Count:      count,
			CodeLength: codes[symbol].Length,
			Code:       codes[symbol].String(),
		})
	}
	return stats, nil
}
