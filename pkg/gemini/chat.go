package gemini

import (
	"context"
)

// ChatTurn is one prior message in a conversation, oldest first.
type ChatTurn struct {
	Role string // RoleUser | RoleModel
	Text string
}

// Chat generates the assistant reply for a conversation history.
func (c *Client) Chat(ctx context.Context, turns []ChatTurn) (string, error) {
	contents := make([]*Content, 0, len(turns))
	for _, turn := range turns {
		contents = append(contents, &Content{
			Parts: []*Part{{Text: turn.Text}},
			Role:  turn.Role,
		})
	}
	return c.generate(ctx, contents)
}
