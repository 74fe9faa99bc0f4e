package synthesizer

import (
	"context"

	"github.com/notin-app/notin-service/pkg/code"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Config configures the Gemini synthesizer.
type Config struct {
	APIKey     string
	Model      string
	APIVersion string
}

// GeminiSynthesizer implements Synthesizer on the Gemini API.
type GeminiSynthesizer struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiSynthesizer creates the Gemini client and synthesizer.
func NewGeminiSynthesizer(ctx context.Context, cfg Config, logger *zap.Logger) (*GeminiSynthesizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, err
	}
	return &GeminiSynthesizer{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (s *GeminiSynthesizer) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		s.logger.Error("gemini generate failed", zap.String("model", s.model), zap.Error(err))
		return "", code.ErrorGeneration.WithDetails(err.Error())
	}
	text := resp.Text()
	if text == "" {
		return "", code.ErrorGeneration.WithDetails("model returned no text")
	}
	return text, nil
}

func (s *GeminiSynthesizer) SynthesizeNotes(ctx context.Context, text string) (string, error) {
	return s.generate(ctx, NotesPrompt(text))
}

func (s *GeminiSynthesizer) SynthesizeTitle(ctx context.Context, text string) (string, error) {
	return s.generate(ctx, TitlePrompt(text))
}
