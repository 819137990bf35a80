package text

import (
	"regexp"
	"strings"
)

const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

var (
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	sentenceRe  = regexp.MustCompile(`(?s)(.*?[.!?])(?:\s+|$)`)
)

// unit is a splittable piece of the source text plus the separator used to
// rejoin it with the preceding unit when merging.
type unit struct {
	text string
	sep  string
}

// Split breaks text into chunks of at most maxSize characters, preferring
// paragraph boundaries, then sentence boundaries, then raw character windows.
// Consecutive chunks share overlap characters wherever the surrounding text
// allows it, so context survives a cut boundary. Deterministic, no side
// effects.
func Split(text string, maxSize, overlap int) []string {
	if maxSize <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= maxSize {
		overlap = 0
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= maxSize {
		return []string{text}
	}

	var chunks []string
	var b strings.Builder

	flush := func() string {
		chunk := b.String()
		chunks = append(chunks, chunk)
		b.Reset()
		return chunk
	}

	for _, u := range splitUnits(text, maxSize) {
		if len(u.text) > maxSize {
			// Unsplittable run: emit fixed windows with exact overlap.
			// The trailing partial window stays in the buffer so later
			// units can merge onto it.
			if b.Len() > 0 {
				flush()
			}
			stride := maxSize - overlap
			start := 0
			for start+maxSize < len(u.text) {
				chunks = append(chunks, u.text[start:start+maxSize])
				start += stride
			}
			b.WriteString(u.text[start:])
			continue
		}

		if b.Len() == 0 {
			b.WriteString(u.text)
			continue
		}

		if b.Len()+len(u.sep)+len(u.text) <= maxSize {
			b.WriteString(u.sep)
			b.WriteString(u.text)
			continue
		}

		// Start a new chunk, seeded with the tail of the previous one so
		// neighbouring chunks overlap.
		prev := flush()
		if overlap > 0 && len(prev) > overlap && overlap+len(u.sep)+len(u.text) <= maxSize {
			b.WriteString(prev[len(prev)-overlap:])
			b.WriteString(u.sep)
		}
		b.WriteString(u.text)
	}

	if b.Len() > 0 {
		flush()
	}

	return chunks
}

// splitUnits breaks text into paragraphs, descending to sentences for
// paragraphs above maxSize. Sentences still above maxSize are returned as-is
// and windowed by the caller.
func splitUnits(text string, maxSize int) []unit {
	var units []unit

	for _, para := range paragraphRe.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len(para) <= maxSize {
			units = append(units, unit{text: para, sep: "\n\n"})
			continue
		}

		first := true
		for _, sentence := range splitSentences(para) {
			sep := " "
			if first {
				sep = "\n\n"
				first = false
			}
			units = append(units, unit{text: sentence, sep: sep})
		}
	}

	return units
}

func splitSentences(text string) []string {
	var sentences []string

	last := 0
	for _, loc := range sentenceRe.FindAllStringSubmatchIndex(text, -1) {
		s := strings.TrimSpace(text[loc[2]:loc[3]])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}

	if rest := strings.TrimSpace(text[last:]); rest != "" {
		sentences = append(sentences, rest)
	}
	if len(sentences) == 0 {
		sentences = append(sentences, text)
	}

	return sentences
}
