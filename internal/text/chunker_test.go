package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		assert.Nil(t, Split("", 500, 50))
		assert.Nil(t, Split("   \n\t  ", 500, 50))
	})

	t.Run("Short Text Single Chunk", func(t *testing.T) {
		text := "A single short paragraph."
		chunks := Split(text, 500, 50)
		require.Len(t, chunks, 1)
		assert.Equal(t, text, chunks[0])
	})

	t.Run("Paragraphs Merge Within Limit", func(t *testing.T) {
		text := "First paragraph here.\n\nSecond paragraph here."
		chunks := Split(text, 500, 50)
		require.Len(t, chunks, 1)
		assert.Equal(t, "First paragraph here.\n\nSecond paragraph here.", chunks[0])
	})

	t.Run("Max Size Respected", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < 40; i++ {
			sb.WriteString("This sentence fills out a paragraph with ordinary prose. ")
			if i%5 == 4 {
				sb.WriteString("\n\n")
			}
		}
		chunks := Split(sb.String(), 500, 50)
		assert.Greater(t, len(chunks), 1)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 500)
		}
	})

	t.Run("Unsplittable Run Windows With Exact Overlap", func(t *testing.T) {
		text := strings.Repeat("a", 1200)
		chunks := Split(text, 500, 50)
		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 500)
		assert.Len(t, chunks[1], 500)
		assert.Len(t, chunks[2], 300)
		assert.Equal(t, chunks[0][450:], chunks[1][:50])
		assert.Equal(t, chunks[1][450:], chunks[2][:50])
	})

	t.Run("Window Count Is Ceil Of Stride", func(t *testing.T) {
		// stride = 500-50 = 450, so ceil((1200-50)/450) = 3 windows
		text := strings.Repeat("x", 1200)
		assert.Len(t, Split(text, 500, 50), 3)
	})

	t.Run("Chunk Boundary Seeds Overlap", func(t *testing.T) {
		p1 := strings.Repeat("a", 60)
		p2 := strings.Repeat("b", 60)
		chunks := Split(p1+"\n\n"+p2, 100, 20)
		require.Len(t, chunks, 2)
		assert.Equal(t, p1, chunks[0])
		assert.True(t, strings.HasPrefix(chunks[1], chunks[0][40:]), "second chunk should start with the tail of the first")
		assert.True(t, strings.HasSuffix(chunks[1], p2))
	})

	t.Run("Oversized Paragraph Splits On Sentences", func(t *testing.T) {
		sentence := "The quick brown fox jumps over the lazy dog near the riverbank. "
		text := strings.TrimSpace(strings.Repeat(sentence, 20))
		chunks := Split(text, 200, 20)
		assert.Greater(t, len(chunks), 1)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 200)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		text := strings.Repeat("Stable input produces stable output. ", 50)
		assert.Equal(t, Split(text, 300, 30), Split(text, 300, 30))
	})

	t.Run("Degenerate Overlap Clamped", func(t *testing.T) {
		text := strings.Repeat("z", 300)
		chunks := Split(text, 100, 100)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 100)
		}
		assert.Equal(t, 3, len(chunks))
	})
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One. Two! Three? Trailing fragment")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Trailing fragment"}, got)

	got = splitSentences("no terminator at all")
	assert.Equal(t, []string{"no terminator at all"}, got)
}
