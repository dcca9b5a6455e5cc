package gemini

import (
	"context"
	"fmt"
)

const researchPrompt = `You are a business analyst. Write today's (%s) news digest for the company "%s"%s.
Cover: recent announcements, market and competitor movements relevant to them, and
regulatory or industry developments. Use short paragraphs with a one-line headline
each. If you have no reliable information about this specific company, write an
industry-level digest instead and say so in the first line.`

// ResearchCompanyNews produces one day's news digest for a company. This is
// the per-entity task the daily batch run delegates to.
func (c *Client) ResearchCompanyNews(ctx context.Context, companyName, industry, date string) (string, error) {
	industryClause := ""
	if industry != "" {
		industryClause = fmt.Sprintf(" (industry: %s)", industry)
	}

	contents := []*Content{
		{
			Role:  RoleUser,
			Parts: []*Part{{Text: fmt.Sprintf(researchPrompt, date, companyName, industryClause)}},
		},
	}

	text, err := c.generate(ctx, contents)
	if err != nil {
		return "", fmt.Errorf("research news for %q: %w", companyName, err)
	}
	return trimMarkdownFence(text), nil
}
