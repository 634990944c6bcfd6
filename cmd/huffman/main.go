package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"huffman_coding_go/pkg/bitpack"
	"huffman_coding_go/pkg/huffman"
	"huffman_coding_go/pkg/logger"
	"huffman_coding_go/pkg/stats"
	"huffman_coding_go/pkg/treeviz"
)

func main() {
	var (
		text      = flag.String("text", "", "text to encode; prompts on stdin when empty")
		verbose   = flag.Bool("verbose", false, "print the step trace")
		visualize = flag.Bool("visualize", false, "write a Graphviz DOT file of the code tree")
		output    = flag.String("output", "huffman_visualizations", "directory for DOT files")
	)
	flag.Parse()

	input := *text
	if input == "" {
		fmt.Print("Enter the string to encode: ")
		sc := bufio.NewScanner(os.Stdin)
		if sc.Scan() {
			input = sc.Text()
		}
	}
	if input == "" {
		fmt.Println("Input text is empty. Exiting.")
		return
	}

	logg := logger.New()
	if *verbose {
		logg = logger.NewVerbose()
	}

	freqs, root, codes, err := huffman.Build(input)
	if err != nil {
		log.Fatal(err)
	}

	symbols := make([]rune, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	for _, s := range symbols {
		logg.Debugf("character %q: frequency %d, code %s", s, freqs[s], codes[s])
	}

	fmt.Printf("\nOriginal Text: %q\n", input)

	fmt.Println("\n--- Huffman Codes ---")
	for _, s := range symbols {
		fmt.Printf("  Character: %q, Frequency: %d, Code: %s\n", s, freqs[s], codes[s])
	}

	encoded, err := huffman.Encode(input, codes)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nEncoded Text: %s\n", encoded)

	report := stats.Compute(input, encoded)
	fmt.Println("\n--- Compression Statistics ---")
	fmt.Println(report.Format())

	packed, nbits, err := bitpack.Pack(encoded)
	if err != nil {
		log.Fatal(err)
	}
	logg.Debugf("packed %d bits into %d bytes", nbits, len(packed))

	if *visualize {
		path, reused, err := treeviz.Render(root, *output, input)
		switch {
		case err != nil:
			logg.Errorf("visualization: %v", err)
		case reused:
			fmt.Printf("\nReusing existing visualization: %s\n", path)
		default:
			fmt.Printf("\nHuffman tree visualization saved to: %s\n", path)
		}
	}

	decoded, err := huffman.Decode(encoded, root)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nDecoded Text: %q\n", decoded)

	if decoded == input {
		fmt.Println("\nSUCCESS: decoded text matches the original.")
	} else {
		fmt.Println("\nERROR: decoded text does NOT match the original.")
		os.Exit(1)
	}
}
