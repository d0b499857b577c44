// Package genai is a thin HTTP client for the generative-language provider:
// text recommendation, streamed chat, search-grounded chat, image generation
// and long-running video generation. The API key stays server-side; handlers
// never see it.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrKeyNotFound signals the provider rejected the configured key or
	// model with a "Requested entity was not found" answer. Callers escalate
	// this distinctly so the operator can re-provision credentials; it is
	// never silently swallowed into a fallback message.
	ErrKeyNotFound = errors.New("genai: requested entity was not found")
	// ErrNoContent means the provider answered successfully but returned no
	// usable candidate part.
	ErrNoContent = errors.New("genai: response contained no content")
)

type Config struct {
	APIKey  string
	BaseURL string // e.g. "https://generativelanguage.googleapis.com"
	Timeout time.Duration
}

type Client struct {
	apiKey string
	base   string
	client *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		apiKey: cfg.APIKey,
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// Citation is one grounding source attached to a generated answer.
type Citation struct {
	Kind  string `json:"kind"` // "web" or "maps"
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// wire types (provider REST shapes)

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type generationConfig struct {
	Temperature *float64     `json:"temperature,omitempty"`
	ImageConfig *imageConfig `json:"imageConfig,omitempty"`
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web  *chunkSource `json:"web,omitempty"`
	Maps *chunkSource `json:"maps,omitempty"`
}

type chunkSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// generate performs a single models/<model>:generateContent call.
func (c *Client) generate(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.base, model)
	respBody, err := c.post(ctx, url, reqBody)
	if err != nil {
		return nil, err
	}
	defer respBody.Close()

	var result generateResponse
	if err := json.NewDecoder(respBody).Decode(&result); err != nil {
		return nil, fmt.Errorf("genai: decode response: %w", err)
	}
	return &result, nil
}

// post issues a JSON POST and returns the response body on success. Provider
// errors are mapped onto the package sentinels.
func (c *Client) post(ctx context.Context, url string, body any) (io.ReadCloser, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("genai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("genai: HTTP POST %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, c.statusError(resp)
	}
	return resp.Body, nil
}

func httpGet(ctx context.Context, url, apiKey string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", apiKey)
	return req, nil
}

func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var ae apiError
	_ = json.Unmarshal(raw, &ae)
	msg := ae.Error.Message
	if msg == "" {
		msg = string(raw)
	}
	if resp.StatusCode == http.StatusNotFound || strings.Contains(msg, "Requested entity was not found") {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, msg)
	}
	return fmt.Errorf("genai: HTTP %d: %s", resp.StatusCode, msg)
}

// firstText concatenates the text parts of the first candidate.
func firstText(resp *generateResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrNoContent
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", ErrNoContent
	}
	return sb.String(), nil
}

func userContent(text string) []content {
	return []content{{Role: "user", Parts: []part{{Text: text}}}}
}

func systemContent(text string) *content {
	if text == "" {
		return nil
	}
	return &content{Parts: []part{{Text: text}}}
}
