package studio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/premiumparfumes/storefront-backend/internal/genai"
	"github.com/premiumparfumes/storefront-backend/internal/videojob"
)

// fakeMedia scripts provider media answers without any network.
type fakeMedia struct {
	image   []byte
	edited  []byte
	initial genai.Operation
	// statuses is consumed one per VideoOperation call; the last one repeats.
	statuses []genai.Operation
	polls    int

	lastEditInput []byte
}

func (f *fakeMedia) GenerateImage(ctx context.Context, model, prompt, aspectRatio, imageSize string) ([]byte, error) {
	return f.image, nil
}

func (f *fakeMedia) EditImage(ctx context.Context, model string, png []byte, prompt string) ([]byte, error) {
	f.lastEditInput = png
	return f.edited, nil
}

func (f *fakeMedia) GenerateVideo(ctx context.Context, model, prompt string, image []byte, aspectRatio string) (genai.Operation, error) {
	return f.initial, nil
}

func (f *fakeMedia) VideoOperation(ctx context.Context, name string) (genai.Operation, error) {
	idx := f.polls
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	f.polls++
	return f.statuses[idx], nil
}

func (f *fakeMedia) WithResultKey(uri string) string {
	return uri + "?key=k"
}

func newStudio(gen MediaGenerator) *Service {
	return NewService(gen, Models{Image: "img", ImageEdit: "edit", Video: "veo"},
		videojob.Poller{Interval: time.Millisecond, MaxAttempts: 5})
}

func TestGenerateImage_ReturnsDataURL(t *testing.T) {
	png := []byte{1, 2, 3}
	s := newStudio(&fakeMedia{image: png})

	url, err := s.GenerateImage(context.Background(), "bottle on marble", "", "")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	if url != want {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestGenerateImage_EmptyPrompt(t *testing.T) {
	s := newStudio(&fakeMedia{})
	if _, err := s.GenerateImage(context.Background(), "  ", "1:1", "1K"); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestEditImage_AcceptsDataURL(t *testing.T) {
	src := []byte{9, 9, 9}
	fake := &fakeMedia{edited: []byte{1}}
	s := newStudio(fake)

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(src)
	if _, err := s.EditImage(context.Background(), dataURL, "brighter"); err != nil {
		t.Fatalf("EditImage: %v", err)
	}
	if !bytes.Equal(fake.lastEditInput, src) {
		t.Fatalf("data URL payload not decoded")
	}

	// bare base64 works too
	if _, err := s.EditImage(context.Background(), base64.StdEncoding.EncodeToString(src), "brighter"); err != nil {
		t.Fatalf("EditImage bare base64: %v", err)
	}

	if _, err := s.EditImage(context.Background(), "%%%not-base64%%%", "brighter"); !errors.Is(err, ErrBadImageData) {
		t.Fatalf("expected ErrBadImageData, got %v", err)
	}
}

func TestGenerateVideo_PollsUntilDone(t *testing.T) {
	fake := &fakeMedia{
		initial: genai.Operation{Name: "op-1"},
		statuses: []genai.Operation{
			{Name: "op-1"},
			{Name: "op-1"},
			{Name: "op-1", Done: true, ResultURI: "https://files.example.com/v.mp4"},
		},
	}
	s := newStudio(fake)

	url, err := s.GenerateVideo(context.Background(), "slow pan", "", "16:9")
	if err != nil {
		t.Fatalf("GenerateVideo: %v", err)
	}
	if url != "https://files.example.com/v.mp4?key=k" {
		t.Fatalf("unexpected url %q", url)
	}
	if fake.polls != 3 {
		t.Fatalf("expected 3 status polls, got %d", fake.polls)
	}
}

func TestGenerateVideo_TimedOut(t *testing.T) {
	fake := &fakeMedia{
		initial:  genai.Operation{Name: "op-1"},
		statuses: []genai.Operation{{Name: "op-1"}},
	}
	s := newStudio(fake)

	_, err := s.GenerateVideo(context.Background(), "slow pan", "", "")
	if !errors.Is(err, videojob.ErrTimedOut) {
		t.Fatalf("expected ErrTimedOut, got %v", err)
	}
}

func TestGenerateVideo_JobFailure(t *testing.T) {
	jobErr := errors.New("render failed")
	fake := &fakeMedia{
		initial:  genai.Operation{Name: "op-1"},
		statuses: []genai.Operation{{Name: "op-1", Done: true, Err: jobErr}},
	}
	s := newStudio(fake)

	_, err := s.GenerateVideo(context.Background(), "slow pan", "", "")
	if !errors.Is(err, jobErr) {
		t.Fatalf("expected the job error, got %v", err)
	}
	if errors.Is(err, videojob.ErrTimedOut) {
		t.Fatalf("a job failure must not look like a timeout")
	}
}

func TestVideoEndpoint_TimeoutMapsTo504(t *testing.T) {
	fake := &fakeMedia{
		initial:  genai.Operation{Name: "op-1"},
		statuses: []genai.Operation{{Name: "op-1"}},
	}
	app := fiber.New()
	NewHandler(newStudio(fake)).RegisterPublicRoutes(app)

	body := []byte(`{"prompt":"slow pan"}`)
	req := httptest.NewRequest("POST", "/api/v1/studio/video", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 504 {
		t.Fatalf("expected 504, got %d", res.StatusCode)
	}
	var payload map[string]any
	json.NewDecoder(res.Body).Decode(&payload)
	if payload["kind"] != "timed_out" {
		t.Fatalf("expected timed_out kind, got %v", payload)
	}
}

func TestImageEndpoint(t *testing.T) {
	app := fiber.New()
	NewHandler(newStudio(&fakeMedia{image: []byte{7}})).RegisterPublicRoutes(app)

	body := []byte(`{"prompt":"bottle"}`)
	req := httptest.NewRequest("POST", "/api/v1/studio/image", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var payload map[string]string
	json.NewDecoder(res.Body).Decode(&payload)
	if !strings.HasPrefix(payload["imageUrl"], "data:image/png;base64,") {
		t.Fatalf("expected a data URL, got %q", payload["imageUrl"])
	}
}
