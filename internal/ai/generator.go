// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"log/slog"
	"strings"

	"frontfusion/internal/apperr"
)

// systemPrompt instructs the model to emit a single runnable file using
// the closed utility-class vocabulary the theme rewriter operates on.
// Keeping the generator on this vocabulary is what makes pattern-based
// theming viable downstream.
const systemPrompt = `You are an expert frontend developer generating UI code.

Rules:
- Output a single complete, runnable file inside one fenced code block.
- Style exclusively with Tailwind utility classes.
- For dark surfaces use the gray/slate/zinc/neutral/stone 800-900 shades;
  for light surfaces the white/50 shades; for accents blue/violet/indigo 600.
- Do not include explanations outside the code block.`

// Generator shapes prompts for the generative model and translates any
// provider failure into a single opaque condition. It performs exactly
// one external round trip per call and never retries — resubmission is
// the caller's decision.
type Generator struct {
	registry *Registry
}

// NewGenerator creates a Generator over the given provider registry.
func NewGenerator(registry *Registry) *Generator {
	return &Generator{registry: registry}
}

// Generate produces UI source for a free-form prompt. The prompt must be
// non-empty after trimming.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperr.New(apperr.Validation, "Valid prompt is required")
	}
	return g.call(ctx, prompt)
}

// Correct asks the model to fix existing code according to a correction
// prompt. The instruction is validated; the code passes through untouched.
func (g *Generator) Correct(ctx context.Context, initialCode, correctionPrompt string) (string, error) {
	correctionPrompt = strings.TrimSpace(correctionPrompt)
	if initialCode == "" || correctionPrompt == "" {
		return "", apperr.New(apperr.Validation, "Initial code and valid correction prompt are required")
	}
	return g.call(ctx, derivedPrompt(correctionPrompt, initialCode))
}

// Modify asks the model to change existing code per client instructions.
func (g *Generator) Modify(ctx context.Context, code, instructions string) (string, error) {
	instructions = strings.TrimSpace(instructions)
	if code == "" || instructions == "" {
		return "", apperr.New(apperr.Validation, "Code and valid modification instructions are required")
	}
	return g.call(ctx, derivedPrompt(instructions, code))
}

// derivedPrompt builds the composite prompt used by correction and
// modification operations. No size limit is enforced at this layer.
func derivedPrompt(instruction, code string) string {
	return instruction + " based on the following code:\n\n" + code
}

// call performs the external round trip. Upstream detail is logged for
// diagnostics and replaced by a generic message — callers never see the
// provider's error.
func (g *Generator) call(ctx context.Context, prompt string) (string, error) {
	result, err := g.registry.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		slog.Error("generation failed",
			"provider", g.registry.ActiveName(),
			"error", err,
		)
		return "", apperr.Wrap(apperr.Upstream, "Failed to generate UI. Please try again later.", err)
	}
	return result, nil
}
