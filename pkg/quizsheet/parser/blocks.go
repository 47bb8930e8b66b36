package parser

import (
	"iter"
	"strings"
)

// Block is a contiguous run of non-blank lines representing one
// question, separated from its neighbors by blank lines.
type Block struct {
	// Index is the 1-based block number in input order.
	Index int
	// Lines are the block's lines in order of appearance.
	Lines []string
}

// Raw returns the block's original text with lines rejoined.
func (b Block) Raw() string {
	return strings.Join(b.Lines, "\n")
}

// SplitBlocks groups lines into blocks separated by one or more blank
// lines. The returned sequence is finite and restartable, and yields
// blocks in input order. Runs of blank lines never produce empty
// blocks.
func SplitBlocks(lines []string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		var current []string
		index := 0
		flush := func() bool {
			if len(current) == 0 {
				return true
			}
			index++
			block := Block{Index: index, Lines: current}
			current = nil
			return yield(block)
		}
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				if !flush() {
					return
				}
				continue
			}
			current = append(current, line)
		}
		flush()
	}
}

// CollectBlocks materializes the block sequence into a slice.
func CollectBlocks(lines []string) []Block {
	var blocks []Block
	for b := range SplitBlocks(lines) {
		blocks = append(blocks, b)
	}
	return blocks
}
