package genai

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Recommend performs a single request/response generation with an optional
// system instruction.
func (c *Client) Recommend(ctx context.Context, model, prompt, systemInstruction string) (string, error) {
	resp, err := c.generate(ctx, model, generateRequest{
		Contents:          userContent(prompt),
		SystemInstruction: systemContent(systemInstruction),
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// ChatGrounded asks with the search retrieval tool enabled and returns the
// answer together with its grounding citations. Citations are reported as
// the provider emitted them: unordered and not deduplicated.
func (c *Client) ChatGrounded(ctx context.Context, model, prompt string) (string, []Citation, error) {
	resp, err := c.generate(ctx, model, generateRequest{
		Contents: userContent(prompt),
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return "", nil, err
	}

	text, err := firstText(resp)
	if err != nil {
		return "", nil, err
	}

	citations := []Citation{}
	if gm := resp.Candidates[0].GroundingMetadata; gm != nil {
		for _, chunk := range gm.GroundingChunks {
			if chunk.Web != nil {
				citations = append(citations, Citation{Kind: "web", Title: chunk.Web.Title, URI: chunk.Web.URI})
			}
			if chunk.Maps != nil {
				citations = append(citations, Citation{Kind: "maps", Title: chunk.Maps.Title, URI: chunk.Maps.URI})
			}
		}
	}
	return text, citations, nil
}

// ChatStream streams a generation and invokes onDelta for every text delta,
// strictly in emission order. It returns the full concatenated text. A
// non-nil error from onDelta aborts the stream.
func (c *Client) ChatStream(ctx context.Context, model, prompt, systemInstruction string, onDelta func(delta string) error) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse", c.base, model)
	body, err := c.post(ctx, url, generateRequest{
		Contents:          userContent(prompt),
		SystemInstruction: systemContent(systemInstruction),
	})
	if err != nil {
		return "", err
	}
	defer body.Close()

	var full strings.Builder
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var chunk generateResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return full.String(), fmt.Errorf("genai: decode stream chunk: %w", err)
		}
		delta, err := firstText(&chunk)
		if err != nil {
			// keep going: some chunks carry only metadata
			continue
		}
		full.WriteString(delta)
		if onDelta != nil {
			if err := onDelta(delta); err != nil {
				return full.String(), err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return full.String(), fmt.Errorf("genai: read stream: %w", err)
	}
	if full.Len() == 0 {
		return "", ErrNoContent
	}
	return full.String(), nil
}
