// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"frontfusion/internal/ai"
	"frontfusion/internal/apperr"
	"frontfusion/internal/assemble"
	"frontfusion/internal/bundle"
	"frontfusion/internal/cache"
	"frontfusion/internal/extract"
	"frontfusion/internal/models"
	"frontfusion/internal/theme"
)

// AI serves the generation, correction, modification, theming and compile
// endpoints. The result cache is optional; a nil cache disables prompt
// memoization without changing behavior.
type AI struct {
	gen      *ai.Generator
	compiler *bundle.Compiler
	results  *cache.ResultCache
}

func NewAI(gen *ai.Generator, compiler *bundle.Compiler, results *cache.ResultCache) *AI {
	return &AI{gen: gen, compiler: compiler, results: results}
}

type generateRequest struct {
	Prompt    string           `json:"prompt"`
	Framework models.Framework `json:"framework"`
	Theme     string           `json:"theme"`
	Palette   *theme.Palette   `json:"palette"`
}

type generateResponse struct {
	Result string            `json:"result"`
	Files  map[string]string `json:"files"`
}

// GenerateUI runs the full pipeline: model call, code extraction, optional
// theme rewrite, and file-set assembly. Identical prompts are served from
// the raw-result cache when one is configured.
func (h *AI) GenerateUI(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		writeError(w, apperr.New(apperr.Validation, "Prompt is required"))
		return
	}
	fw := req.Framework
	if fw == "" {
		fw = models.FrameworkTailwind
	}
	if !fw.Valid() {
		writeError(w, apperr.New(apperr.Validation, "Unknown framework"))
		return
	}

	raw, cached := "", false
	if h.results != nil {
		raw, cached = h.results.Get(r.Context(), req.Prompt)
	}
	if !cached {
		var err error
		raw, err = h.gen.Generate(r.Context(), req.Prompt)
		if err != nil {
			writeError(w, err)
			return
		}
		if h.results != nil {
			h.results.Set(r.Context(), req.Prompt, raw)
		}
	}

	code := extract.Extract(raw)
	if req.Theme != "" {
		code = theme.Apply(code, req.Theme, req.Palette)
	}
	writeJSON(w, http.StatusOK, generateResponse{
		Result: code,
		Files:  assemble.Assemble(code, fw),
	})
}

type correctRequest struct {
	InitialCode      string `json:"initial_code"`
	CorrectionPrompt string `json:"correction_prompt"`
}

// CorrectUI asks the model to fix previously generated code against a
// correction instruction.
func (h *AI) CorrectUI(w http.ResponseWriter, r *http.Request) {
	var req correctRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.InitialCode) == "" {
		writeError(w, apperr.New(apperr.Validation, "Initial code is required"))
		return
	}
	if strings.TrimSpace(req.CorrectionPrompt) == "" {
		writeError(w, apperr.New(apperr.Validation, "Correction prompt is required"))
		return
	}
	raw, err := h.gen.Correct(r.Context(), req.InitialCode, req.CorrectionPrompt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": extract.Extract(raw)})
}

type modifyRequest struct {
	Code         string `json:"code"`
	Instructions string `json:"instructions"`
}

// ModifyCode applies free-form edit instructions to existing code.
func (h *AI) ModifyCode(w http.ResponseWriter, r *http.Request) {
	var req modifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeError(w, apperr.New(apperr.Validation, "Code is required"))
		return
	}
	if strings.TrimSpace(req.Instructions) == "" {
		writeError(w, apperr.New(apperr.Validation, "Instructions are required"))
		return
	}
	raw, err := h.gen.Modify(r.Context(), req.Code, req.Instructions)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": extract.Extract(raw)})
}

type applyThemeRequest struct {
	Code    string         `json:"code"`
	Theme   string         `json:"theme"`
	Palette *theme.Palette `json:"palette"`
}

// ApplyTheme rewrites the color vocabulary of existing code. No model call
// is involved; the rewrite is deterministic and idempotent.
func (h *AI) ApplyTheme(w http.ResponseWriter, r *http.Request) {
	var req applyThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Theme == "" {
		writeError(w, apperr.New(apperr.Validation, "Theme is required"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"result": theme.Apply(req.Code, req.Theme, req.Palette),
	})
}

type compileRequest struct {
	Files map[string]string `json:"files"`
}

// Compile bundles a component file set into a single preview module.
func (h *AI) Compile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	code, err := h.compiler.Compile(r.Context(), req.Files)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"code": code})
}
