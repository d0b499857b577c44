package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// GenerateImage renders a prompt into PNG bytes with the requested aspect
// ratio ("1:1", "16:9", ...) and size tier ("1K", "2K", "4K").
func (c *Client) GenerateImage(ctx context.Context, model, prompt, aspectRatio, imageSize string) ([]byte, error) {
	resp, err := c.generate(ctx, model, generateRequest{
		Contents: userContent(prompt),
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: aspectRatio, ImageSize: imageSize},
		},
	})
	if err != nil {
		return nil, err
	}
	return firstImage(resp)
}

// EditImage applies a text instruction to an existing PNG.
func (c *Client) EditImage(ctx context.Context, model string, png []byte, prompt string) ([]byte, error) {
	resp, err := c.generate(ctx, model, generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString(png)}},
				{Text: prompt},
			},
		}},
	})
	if err != nil {
		return nil, err
	}
	return firstImage(resp)
}

func firstImage(resp *generateResponse) ([]byte, error) {
	if len(resp.Candidates) == 0 {
		return nil, ErrNoContent
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData == nil {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("genai: decode image data: %w", err)
		}
		return raw, nil
	}
	return nil, ErrNoContent
}

// video long-running operation wire types

type videoInstance struct {
	Prompt string      `json:"prompt"`
	Image  *inlineData `json:"image,omitempty"`
}

type videoParameters struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	Resolution  string `json:"resolution,omitempty"`
	SampleCount int    `json:"sampleCount,omitempty"`
}

type videoRequest struct {
	Instances  []videoInstance `json:"instances"`
	Parameters videoParameters `json:"parameters"`
}

// Operation is the remote job handle returned by video generation. Name is
// opaque and only meaningful to VideoOperation.
type Operation struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
	// Err carries the job-reported failure once Done is true.
	Err error `json:"-"`
	// ResultURI points at the rendered video once Done is true. It needs the
	// API key appended (WithResultKey) before it can be fetched.
	ResultURI string `json:"-"`
}

type operationWire struct {
	Name  string `json:"name"`
	Done  bool   `json:"done"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Response *struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response,omitempty"`
}

// GenerateVideo submits a long-running video render and returns its handle.
// The optional image seeds the first frame.
func (c *Client) GenerateVideo(ctx context.Context, model, prompt string, image []byte, aspectRatio string) (Operation, error) {
	inst := videoInstance{Prompt: prompt}
	if len(image) > 0 {
		inst.Image = &inlineData{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString(image)}
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:predictLongRunning", c.base, model)
	body, err := c.post(ctx, endpoint, videoRequest{
		Instances:  []videoInstance{inst},
		Parameters: videoParameters{AspectRatio: aspectRatio, Resolution: "720p", SampleCount: 1},
	})
	if err != nil {
		return Operation{}, err
	}
	defer body.Close()

	var wire operationWire
	if err := json.NewDecoder(body).Decode(&wire); err != nil {
		return Operation{}, fmt.Errorf("genai: decode operation: %w", err)
	}
	if wire.Name == "" {
		return Operation{}, ErrNoContent
	}
	return decodeOperation(wire), nil
}

// VideoOperation re-fetches a job's status by handle.
func (c *Client) VideoOperation(ctx context.Context, name string) (Operation, error) {
	endpoint := fmt.Sprintf("%s/v1beta/%s", c.base, name)
	req, err := httpGet(ctx, endpoint, c.apiKey)
	if err != nil {
		return Operation{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Operation{}, fmt.Errorf("genai: HTTP GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return Operation{}, c.statusError(resp)
	}

	var wire operationWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Operation{}, fmt.Errorf("genai: decode operation: %w", err)
	}
	return decodeOperation(wire), nil
}

// WithResultKey appends the API key to a result locator so it can be fetched.
func (c *Client) WithResultKey(uri string) string {
	if uri == "" {
		return uri
	}
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + "key=" + url.QueryEscape(c.apiKey)
}

func decodeOperation(wire operationWire) Operation {
	op := Operation{Name: wire.Name, Done: wire.Done}
	if wire.Error != nil {
		op.Err = fmt.Errorf("genai: video job failed: %s", wire.Error.Message)
	}
	if wire.Response != nil {
		samples := wire.Response.GenerateVideoResponse.GeneratedSamples
		if len(samples) > 0 {
			op.ResultURI = samples[0].Video.URI
		}
	}
	return op
}
