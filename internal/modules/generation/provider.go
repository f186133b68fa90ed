package generation

import "context"

// Message is one role-tagged block of the provider protocol.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// TextGenerationProvider is the single network boundary of the
// pipeline. Implementations wrap whatever chat API the deployment
// uses; the pipeline only needs text in, text out.
type TextGenerationProvider interface {
	Invoke(ctx context.Context, messages []Message) (string, error)
}

// PromptDocument is a compiled instruction document: a system block
// with the stable instructions and a user block with the run's data.
type PromptDocument struct {
	System string
	User   string
}

// Messages renders the document in provider wire order.
func (d PromptDocument) Messages() []Message {
	return []Message{
		{Role: RoleSystem, Content: d.System},
		{Role: RoleUser, Content: d.User},
	}
}
