package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordAnswer(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantHit bool
		contain string
	}{
		{"Education", "what is your education", true, "Bachelor of Science in Computer Science"},
		{"Experience Upper Case", "Tell me about his WORK history", true, "AI Application Specialist"},
		{"Skills", "which frameworks does he know", true, "React"},
		{"Projects", "show me a project", true, "Fantasy Football"},
		{"Hobbies", "does he go to the gym", true, "gym"},
		{"Greeting", "hello there", true, "Dixon's AI assistant"},
		{"Contact", "can I get contact details", true, "dixonzor@gmail.com"},
		{"General Who", "who is he", true, "CS graduate from Penn State"},
		{"Substring Match", "this message only matters", true, "Dixon's AI assistant"},
		{"No Match", "tell me a fun fact", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := KeywordAnswer(tt.message)
			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.Contains(t, answer, tt.contain)
			}
		})
	}
}

func TestKeywordAnswer_CategoryPriority(t *testing.T) {
	// "work" (experience) appears before "project" in the category order, so
	// a message with both resolves to experience.
	answer, ok := KeywordAnswer("what project work has he done")
	assert.True(t, ok)
	assert.Contains(t, answer, "AI Application Specialist")
}

func TestFallbackAnswer_Default(t *testing.T) {
	answer := FallbackAnswer("tell me a fun fact")
	assert.Contains(t, answer, "Dixon Zor is a CS graduate")
}

func TestProjectFallback(t *testing.T) {
	got := projectFallback("Project: Football AI. An NFL prediction system.")
	assert.Contains(t, got, "Football AI is a professional-level project")

	got = projectFallback("no marker here")
	assert.Contains(t, got, "this project is a professional-level project")
}
