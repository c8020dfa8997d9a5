// Package planner orders parsed offsets and turns them into the cut
// instructions handed to ffmpeg, one per output segment.
package planner

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shirerpeton/audioSplitter/internal/common"
	"github.com/shirerpeton/audioSplitter/internal/parser"
)

// Plan returns len(offsets)+1 instructions in ascending time order. Each
// segment starts where the previous one ended; the first starts at zero and
// the last has no end. Equal offsets keep their input order. The offsets
// slice is not modified.
func Plan(input string, offsets []common.TimeOffset, extension string) []common.CutInstruction {
	sorted := slices.Clone(offsets)
	slices.SortStableFunc(sorted, func(a, b common.TimeOffset) int {
		return cmp.Compare(a.TotalMilliseconds(), b.TotalMilliseconds())
	})

	ext := strings.TrimPrefix(extension, ".")
	instructions := make([]common.CutInstruction, 0, len(sorted)+1)
	from := parser.Render(common.TimeOffset{})
	for i, ts := range sorted {
		to := parser.Render(ts)
		instructions = append(instructions, newInstruction(i+1, input, from, to, ext))
		from = to
	}
	return append(instructions, newInstruction(len(sorted)+1, input, from, "", ext))
}

func newInstruction(index int, input, from, to, ext string) common.CutInstruction {
	return common.CutInstruction{
		Index:  index,
		Input:  input,
		From:   from,
		To:     to,
		Output: fmt.Sprintf("%d.%s", index, ext),
	}
}
