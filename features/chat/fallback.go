package chat

import "strings"

// Canned answers matched by keyword category. The shortcut takes priority
// over live inference for these domains: the answers are reliable and cost
// nothing.
type category struct {
	keywords []string
	answer   string
}

var categories = []category{
	{
		keywords: []string{"experience", "work", "job", "role"},
		answer:   "Dixon is currently an AI Application Specialist at Penn State Nittany AI Alliance, where he develops automated analytics dashboards using Azure, builds AI frameworks for RAG/CAG, and creates CI/CD pipelines. Previously he was a Research Assistant at the Human in Computing and Cognition Lab studying human-AI interaction and cognitive biases (2023-2025).",
	},
	{
		keywords: []string{"education", "school", "university", "degree", "gpa"},
		answer:   "Dixon graduated from The Pennsylvania State University, College of Engineering with a Bachelor of Science in Computer Science in May 2025.",
	},
	{
		keywords: []string{"skill", "tech", "language", "framework"},
		answer:   "Dixon's skills include: Languages: JavaScript, Python, C, C++, MATLAB, SQL, Verilog. Frameworks: React, Node.js, Next.js, Flask, Tailwind. Tools: FastAPI, Docker, Azure, GCP, AWS, Postgres, MongoDB. He specializes in ML/AI and RAG systems.",
	},
	{
		keywords: []string{"project", "football", "fantasy"},
		answer:   "Dixon built a Fantasy Football Prediction AI using a Stacked XGBoost Ensemble to predict NFL player performance (2012-2024), plus Video Editing Tools including a silence truncator. Check out github.com/DixonzorCmpsi!",
	},
	{
		keywords: []string{"hobby", "interest", "nfl", "gym", "youtube"},
		answer:   "Dixon loves the NFL and makes YouTube videos about football analytics! He also enjoys the gym, video editing, and public speaking.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		answer:   "Hi there! I'm Dixon's AI assistant. I can tell you about his experience at Penn State AI Alliance, his education, skills (Python, React, Cloud, ML), projects (Football AI, Video Tools), or interests. What would you like to know?",
	},
	{
		keywords: []string{"contact", "email", "phone", "linkedin"},
		answer:   "You can reach Dixon at: Email: dixonzor@gmail.com | LinkedIn: linkedin.com/in/dixon-zor | GitHub: github.com/DixonzorCmpsi",
	},
}

// generalKeywords trigger the shortcut without a dedicated category answer.
var generalKeywords = []string{"resume", "about", "who"}

const defaultAnswer = "Dixon Zor is a CS graduate from Penn State (May 2025), now an AI Application Specialist. He builds AI frameworks, automated systems, and loves NFL analytics. Ask about his experience, skills, projects, or education!"

// KeywordAnswer returns the canned answer for the first category whose
// keyword appears in the message, matching on lower-cased substrings. The
// second return reports whether any keyword hit.
func KeywordAnswer(message string) (string, bool) {
	lower := strings.ToLower(message)

	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.answer, true
			}
		}
	}
	for _, kw := range generalKeywords {
		if strings.Contains(lower, kw) {
			return defaultAnswer, true
		}
	}
	return "", false
}

// FallbackAnswer is the deterministic terminal answer when every provider
// failed: the keyword answer when one matches, else the default summary.
func FallbackAnswer(message string) string {
	if answer, ok := KeywordAnswer(message); ok {
		return answer
	}
	return defaultAnswer
}

// projectFallback builds a terminal answer for project-context requests,
// naming the project when the context carries a "Project:" marker.
func projectFallback(projectContext string) string {
	name := "this project"
	if idx := strings.Index(projectContext, "Project: "); idx != -1 {
		rest := projectContext[idx+len("Project: "):]
		if end := strings.IndexAny(rest, ".\n"); end != -1 {
			rest = rest[:end]
		}
		if rest = strings.TrimSpace(rest); rest != "" {
			name = rest
		}
	}
	return name + " is a professional-level project showcasing technical excellence and practical application. Check out the README and GitHub repository for more details!"
}
