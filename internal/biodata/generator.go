// Package biodata drafts marriage biodata text with a language model.
package biodata

import (
	"context"
	"strings"

	"ShaadiBiodata/internal/apperr"
	"ShaadiBiodata/internal/logger"
)

const (
	promptTemplate = "Write a concise marriage biodata based on the following information:\n"

	MaxTokens   = 100
	Temperature = 0.7
)

var (
	ErrMissingInput  = apperr.New(apperr.KindMissingInput, "No input info provided for bio generation")
	ErrNotConfigured = apperr.New(apperr.KindExternalService, "AI service not configured")
	ErrGeneration    = apperr.New(apperr.KindExternalService, "Failed to generate biodata via AI")
)

// TextGenerator is the language-model side of bio generation.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

type Generator struct {
	llm TextGenerator
}

// NewGenerator accepts a nil llm; Generate then fails with ErrNotConfigured.
func NewGenerator(llm TextGenerator) *Generator {
	return &Generator{llm: llm}
}

func (g *Generator) Configured() bool {
	return g.llm != nil
}

func Prompt(info string) string {
	return promptTemplate + info
}

func (g *Generator) Generate(ctx context.Context, info string) (string, error) {
	if strings.TrimSpace(info) == "" {
		return "", ErrMissingInput
	}
	if g.llm == nil {
		return "", ErrNotConfigured
	}

	text, err := g.llm.GenerateText(ctx, Prompt(info), MaxTokens, Temperature)
	if err != nil {
		logger.Log.Errorw("Generate(): language model failed", "error", err)
		return "", apperr.Wrap(ErrGeneration, err)
	}
	return text, nil
}
