package chunking

import "strings"

// Boundary preference, strongest first: paragraph, line, sentence, word.
var boundaries = [][]rune{
	[]rune("\n\n"),
	[]rune("\n"),
	[]rune(". "),
	[]rune(" "),
}

// Splitter produces overlapping chunks of roughly ChunkSize characters,
// cutting at the strongest boundary available inside the tail of the window
// so chunks do not end mid-sentence.
type Splitter struct {
	ChunkSize int
	Overlap   int
}

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 5
	}
	return &Splitter{
		ChunkSize: chunkSize,
		Overlap:   overlap,
	}
}

func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	out := make([]string, 0, len(runes)/s.ChunkSize+1)
	start := 0
	for start < len(runes) {
		end := start + s.ChunkSize
		if end >= len(runes) {
			appendChunk(&out, runes[start:])
			break
		}

		cut := s.boundaryCut(runes, start, end)
		appendChunk(&out, runes[start:cut])

		next := cut - s.Overlap
		if next <= start {
			// No boundary left room for overlap; move on without it so the
			// loop always makes progress.
			next = cut
		}
		start = next
	}
	return out
}

// boundaryCut finds the cut position for a window [start, end). Boundaries
// are only honored in the second half of the window; a chunk shorter than
// half the target size is worse than a mid-sentence cut.
func (s *Splitter) boundaryCut(runes []rune, start, end int) int {
	floor := start + s.ChunkSize/2
	for _, sep := range boundaries {
		if idx := lastIndexRunes(runes, sep, floor, end); idx >= 0 {
			return idx + len(sep)
		}
	}
	return end
}

// lastIndexRunes reports the last occurrence of sep fully inside
// runes[from:to), or -1.
func lastIndexRunes(runes, sep []rune, from, to int) int {
	for i := to - len(sep); i >= from; i-- {
		match := true
		for j := range sep {
			if runes[i+j] != sep[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func appendChunk(out *[]string, runes []rune) {
	chunk := strings.TrimSpace(string(runes))
	if chunk != "" {
		*out = append(*out, chunk)
	}
}
