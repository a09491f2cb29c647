package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/urfave/cli/v2"

	"github.com/dargueta/huff"
)

func main() {
	app := cli.App{
		Usage: "Compress and expand files with a tree-framed Huffman code",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file",
				Action:    compressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
			{
				Name:      "decompress",
				Usage:     "Expand a compressed file",
				Action:    decompressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
			{
				Name:      "stats",
				Usage:     "Print per-symbol frequencies and code assignments as CSV",
				Action:    printStats,
				ArgsUsage: "INPUT_FILE",
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func openPair(context *cli.Context) (*os.File, *os.File, error) {
	if context.NArg() != 2 {
		return nil, nil, fmt.Errorf("expected 2 arguments, got %d", context.NArg())
	}

	input, err := os.Open(context.Args().Get(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}

	output, err := os.Create(context.Args().Get(1))
	if err != nil {
		input.Close()
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return input, output, nil
}

func compressFile(context *cli.Context) error {
	input, output, err := openPair(context)
	if err != nil {
		return err
	}
	defer input.Close()
	defer output.Close()

	info, err := input.Stat()
	if err != nil {
		return err
	}

	nWritten, err := huff.Compress(input, output)
	if err != nil {
		return err
	}

	fmt.Printf("Compressed %d bytes to %d bytes.\n", info.Size(), nWritten)
	return nil
}

func decompressFile(context *cli.Context) error {
	input, output, err := openPair(context)
	if err != nil {
		return err
	}
	defer input.Close()
	defer output.Close()

	nWritten, err := huff.Decompress(input, output)
	if err != nil {
		return err
	}

	fmt.Printf("Expanded compressed file to %d bytes.\n", nWritten)
	return nil
}

func printStats(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected 1 argument, got %d", context.NArg())
	}

	input, err := os.Open(context.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer input.Close()

	stats, err := huff.ScanStats(input)
	if err != nil {
		return err
	}
	return gocsv.Marshal(&stats, os.Stdout)
}
