package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

const extractPrompt = `Extract the complete plain text content of the attached file (%s). ` +
	`Return ONLY the extracted text, preserving paragraph breaks. ` +
	`Do not add commentary, headers or markdown formatting of your own.`

// ExtractText sends the file bytes inline and asks the model to transcribe
// them. It satisfies the extraction pipeline's External interface. Output may
// vary between calls for the same input; callers accept that for this path.
func (c *Client) ExtractText(ctx context.Context, content []byte, hint string) (string, error) {
	mime := mimetype.Detect(content).String()

	contents := []*Content{
		{
			Role: RoleUser,
			Parts: []*Part{
				{Text: fmt.Sprintf(extractPrompt, hint)},
				{InlineData: &InlineData{
					MimeType: mime,
					Data:     base64.StdEncoding.EncodeToString(content),
				}},
			},
		},
	}

	text, err := c.generate(ctx, contents)
	if err != nil {
		return "", fmt.Errorf("extract %q: %w", hint, err)
	}
	return text, nil
}
