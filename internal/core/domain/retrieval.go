package domain

// EmbeddingDim is the output dimensionality of the configured embedding model
// (BAAI/bge-m3). Every vector stored in or queried against the index must have
// exactly this length; a mismatch is a hard error, never silently truncated.
const EmbeddingDim = 1024

// Apology is returned verbatim when retrieval finds nothing. Callers compare
// against it character for character, so it must never be reworded in place.
const Apology = "I’m sorry, I don’t have that specific information right now."

// ContextSeparator joins selected chunk texts into the generation context.
const ContextSeparator = "\n---\n"

// Match is one nearest-neighbor hit from the vector index. Transient,
// produced per query, never persisted.
type Match struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// EditMatch is a Match shaped for the manual-correction workflow.
type EditMatch struct {
	ID          string  `json:"id"`
	CurrentText string  `json:"current_text"`
	Score       float64 `json:"score"`
}
