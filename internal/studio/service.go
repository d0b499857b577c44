package studio

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/premiumparfumes/storefront-backend/internal/genai"
	"github.com/premiumparfumes/storefront-backend/internal/videojob"
)

var (
	ErrEmptyPrompt  = errors.New("prompt must not be empty")
	ErrBadImageData = errors.New("image data must be base64 or a data URL")
)

// MediaGenerator is the slice of the provider client the studio needs.
type MediaGenerator interface {
	GenerateImage(ctx context.Context, model, prompt, aspectRatio, imageSize string) ([]byte, error)
	EditImage(ctx context.Context, model string, png []byte, prompt string) ([]byte, error)
	GenerateVideo(ctx context.Context, model, prompt string, image []byte, aspectRatio string) (genai.Operation, error)
	VideoOperation(ctx context.Context, name string) (genai.Operation, error)
	WithResultKey(uri string) string
}

type Models struct {
	Image     string
	ImageEdit string
	Video     string
}

// Service renders product imagery and cinematic clips through the provider.
type Service struct {
	gen    MediaGenerator
	models Models
	poller videojob.Poller
}

func NewService(gen MediaGenerator, models Models, poller videojob.Poller) *Service {
	return &Service{gen: gen, models: models, poller: poller}
}

// GenerateImage returns a data URL for immediate rendering.
func (s *Service) GenerateImage(ctx context.Context, prompt, aspectRatio, imageSize string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}
	if imageSize == "" {
		imageSize = "1K"
	}
	png, err := s.gen.GenerateImage(ctx, s.models.Image, prompt, aspectRatio, imageSize)
	if err != nil {
		return "", err
	}
	return toDataURL(png), nil
}

// EditImage applies a text instruction to an uploaded or generated image.
func (s *Service) EditImage(ctx context.Context, imageData, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	png, err := fromImageData(imageData)
	if err != nil {
		return "", err
	}
	out, err := s.gen.EditImage(ctx, s.models.ImageEdit, png, prompt)
	if err != nil {
		return "", err
	}
	return toDataURL(out), nil
}

// GenerateVideo submits a render job and awaits it, polling sequentially at
// a fixed interval with a bounded attempt budget. The returned URL already
// carries the access key needed to fetch the clip.
func (s *Service) GenerateVideo(ctx context.Context, prompt, imageData, aspectRatio string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if aspectRatio != "9:16" {
		aspectRatio = "16:9"
	}

	var image []byte
	if imageData != "" {
		var err error
		if image, err = fromImageData(imageData); err != nil {
			return "", err
		}
	}

	op, err := s.gen.GenerateVideo(ctx, s.models.Video, prompt, image, aspectRatio)
	if err != nil {
		return "", err
	}

	err = s.poller.Await(ctx, func(ctx context.Context) (bool, error) {
		if op.Done {
			return true, op.Err
		}
		next, err := s.gen.VideoOperation(ctx, op.Name)
		if err != nil {
			return false, err
		}
		op = next
		if op.Done && op.Err != nil {
			return true, op.Err
		}
		return op.Done, nil
	})
	if err != nil {
		return "", err
	}
	if op.ResultURI == "" {
		return "", genai.ErrNoContent
	}
	return s.gen.WithResultKey(op.ResultURI), nil
}

func toDataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// fromImageData accepts either a bare base64 payload or a data URL.
func fromImageData(data string) ([]byte, error) {
	if idx := strings.Index(data, ","); idx >= 0 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, ErrBadImageData
	}
	return raw, nil
}
