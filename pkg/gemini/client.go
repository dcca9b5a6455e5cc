// Package gemini is the HTTP client for the Google Gemini API. It backs the
// external content extractor, the chat assistant and the company news
// research task.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 60 * time.Second
	endpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type Content struct {
	Parts []*Part `json:"parts"`
	Role  string  `json:"role,omitempty"`
}

type generateRequest struct {
	Contents []*Content `json:"contents"`
}

type candidate struct {
	Content *Content `json:"content"`
}

type generateResponse struct {
	Candidates []*candidate `json:"candidates"`
}

type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithModel overrides the default model name.
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// generate posts one generateContent request and returns the first candidate
// text. Timeouts come from ctx or the client's own transport timeout,
// whichever fires first.
func (c *Client) generate(ctx context.Context, contents []*Content) (string, error) {
	payload, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(endpointFormat, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"gemini: status %d with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var genRes generateResponse
	if err := json.Unmarshal(resBody, &genRes); err != nil {
		return "", err
	}
	if len(genRes.Candidates) == 0 || genRes.Candidates[0].Content == nil || len(genRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	return genRes.Candidates[0].Content.Parts[0].Text, nil
}

// trimMarkdownFence strips a ``` wrapper the model sometimes adds around
// structured output.
func trimMarkdownFence(s string) string {
	b := bytes.TrimSpace([]byte(s))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return string(bytes.TrimSpace(b))
}
