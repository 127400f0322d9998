package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultGeminiModel is the generation model used when none is
// configured.
const DefaultGeminiModel = "gemini-2.5-flash"

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const geminiPrompt = `You are an AI specialized in reading receipts.
The receipt contains item names and prices only.

Return valid JSON in this format:
{
  "menus": [{"name": "Latte", "price": 25000}, {"name": "Cake", "price": 20000}],
  "total": 45000
}
Rules:
- Remove currency symbols or commas.
- Return only JSON (no extra text).`

// Gemini extracts receipt data by sending the image to the Gemini
// generateContent REST endpoint with a strict-JSON prompt. One
// synchronous request, no retry.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGemini builds the extractor. A missing API key is a configuration
// error, reported at construction so a misconfigured extractor is
// never placed in the chain.
func NewGemini(apiKey, model string) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY is not set", ErrConfiguration)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Extract implements Extractor.
func (g *Gemini) Extract(ctx context.Context, in Input) (*Result, error) {
	if len(in.ImagePNG) == 0 {
		return nil, fmt.Errorf("gemini: no image supplied")
	}

	var req geminiRequest
	req.Contents = []geminiContent{{Parts: []geminiPart{
		{Text: geminiPrompt},
		{InlineData: &geminiInlineData{
			MimeType: "image/png",
			Data:     base64.StdEncoding.EncodeToString(in.ImagePNG),
		}},
	}}}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("gemini: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty response")
	}

	return parseMenuJSON(gr.Candidates[0].Content.Parts[0].Text)
}

// parseMenuJSON parses the model's JSON answer, tolerating markdown
// code fences around it.
func parseMenuJSON(text string) (*Result, error) {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var payload struct {
		Menus []LineItem      `json:"menus"`
		Total json.RawMessage `json:"total"`
	}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("gemini: parse answer: %w", err)
	}

	res := &Result{}
	for _, m := range payload.Menus {
		if strings.TrimSpace(m.Name) == "" {
			continue
		}
		res.Items = append(res.Items, m)
	}
	if len(payload.Total) > 0 {
		if err := res.Total.UnmarshalJSON(payload.Total); err != nil {
			return nil, fmt.Errorf("gemini: parse total: %w", err)
		}
	}
	return res, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
