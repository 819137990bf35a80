package ingest

// Chunk types stored in the vector index. Every chunk's source traces back
// to a roster entry's repo name or the literal "profile".
const (
	TypeBio     = "bio"
	TypeProject = "project"

	SourceProfile = "profile"
)

// Chunk is one embeddable window of portfolio text plus the metadata written
// alongside it into the index.
type Chunk struct {
	Text   string
	Source string
	Type   string
	Index  int
	Vector []float32
}
