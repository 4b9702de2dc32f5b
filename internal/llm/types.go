package llm

// Role represents the role of a message sender in a conversation.
type Role string

// RoleUser is the only role the adapter sends; prompts are always a single
// user turn.
const RoleUser Role = "user"

// Message represents a single message in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Article is one academic article record as returned by the model.
type Article struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Journal   string `json:"journal"`
	Year      int    `json:"year"`
	Abstract  string `json:"abstract"`
	Citations int    `json:"citations"`
	PDFURL    string `json:"pdf_url"`
}

// SearchResult is the outcome of an article search.
type SearchResult struct {
	ResultsCount int       `json:"results_count"`
	Articles     []Article `json:"articles"`
}

// ProposalSection describes one section the generated proposal must contain.
type ProposalSection struct {
	Title        string `json:"title" validate:"required"`
	Instructions string `json:"instructions,omitempty"`
}
