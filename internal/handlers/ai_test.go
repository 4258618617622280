// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontfusion/internal/ai"
	"frontfusion/internal/assemble"
	"frontfusion/internal/bundle"
)

// scriptedProvider returns a fixed response or error for every call.
type scriptedProvider struct {
	response string
	err      error
}

func (s *scriptedProvider) Name() string { return "scripted" }

func (s *scriptedProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.response, s.err
}

func testAIHandlers(p *scriptedProvider) *AI {
	reg := ai.NewRegistry("scripted", nil)
	reg.Register("scripted", p)
	return NewAI(ai.NewGenerator(reg), bundle.New(1), nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rr.Body.String())
	}
	return body
}

func TestGenerateUIHandler(t *testing.T) {
	t.Run("returns extracted code and assembled files", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{
			response: "Sure!\n```html\n<div class=\"p-4\">hi</div>\n```\nDone.",
		})

		rr := postJSON(t, h.GenerateUI, map[string]any{"prompt": "a card"})
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d (%s)", rr.Code, rr.Body.String())
		}

		body := decodeBody(t, rr)
		if body["result"] != `<div class="p-4">hi</div>` {
			t.Errorf("result: got %q", body["result"])
		}
		files, ok := body["files"].(map[string]any)
		if !ok {
			t.Fatalf("files missing: %v", body)
		}
		if files[assemble.PrimaryMarkupFile] != `<div class="p-4">hi</div>` {
			t.Errorf("primary file: got %q", files[assemble.PrimaryMarkupFile])
		}
	})

	t.Run("react framework assembles scaffold", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{
			response: "```jsx\nexport default function App() { return <div/>; }\n```",
		})

		rr := postJSON(t, h.GenerateUI, map[string]any{"prompt": "a card", "framework": "react"})
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		body := decodeBody(t, rr)
		files := body["files"].(map[string]any)
		if files[assemble.ComponentEntryFile] == nil || files[assemble.BundleEntryFile] == nil {
			t.Errorf("scaffold incomplete: %v", files)
		}
	})

	t.Run("theme rewrite applied to result", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{
			response: "```html\n<div class=\"bg-white\">x</div>\n```",
		})

		rr := postJSON(t, h.GenerateUI, map[string]any{"prompt": "a card", "theme": "dark"})
		body := decodeBody(t, rr)
		if body["result"] != `<div class="bg-gray-900">x</div>` {
			t.Errorf("themed result: got %q", body["result"])
		}
	})

	t.Run("missing prompt is 400", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{response: "x"})
		rr := postJSON(t, h.GenerateUI, map[string]any{"prompt": "   "})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})

	t.Run("unknown framework is 400", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{response: "x"})
		rr := postJSON(t, h.GenerateUI, map[string]any{"prompt": "a card", "framework": "svelte"})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})

	t.Run("provider failure is opaque 500", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{err: errors.New("api key revoked")})
		rr := postJSON(t, h.GenerateUI, map[string]any{"prompt": "a card"})
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("status: got %d, want 500", rr.Code)
		}
		if strings.Contains(rr.Body.String(), "revoked") {
			t.Errorf("provider detail leaked: %s", rr.Body.String())
		}
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{response: "x"})
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		h.GenerateUI(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})
}

func TestCorrectAndModifyHandlers(t *testing.T) {
	t.Run("correct extracts the fixed code", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{response: "```html\n<div>fixed</div>\n```"})
		rr := postJSON(t, h.CorrectUI, map[string]any{
			"initial_code":      "<div>broken</div>",
			"correction_prompt": "fix it",
		})
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		if body := decodeBody(t, rr); body["result"] != "<div>fixed</div>" {
			t.Errorf("result: got %q", body["result"])
		}
	})

	t.Run("correct requires both fields", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{response: "x"})
		rr := postJSON(t, h.CorrectUI, map[string]any{"initial_code": "<div/>"})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})

	t.Run("modify", func(t *testing.T) {
		h := testAIHandlers(&scriptedProvider{response: "```html\n<div>new</div>\n```"})
		rr := postJSON(t, h.ModifyCode, map[string]any{
			"code":         "<div>old</div>",
			"instructions": "change it",
		})
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		if body := decodeBody(t, rr); body["result"] != "<div>new</div>" {
			t.Errorf("result: got %q", body["result"])
		}
	})
}

func TestApplyThemeHandler(t *testing.T) {
	h := testAIHandlers(&scriptedProvider{})

	t.Run("rewrites without a model call", func(t *testing.T) {
		rr := postJSON(t, h.ApplyTheme, map[string]any{
			"code":  `<div class="bg-white">x</div>`,
			"theme": "dark",
		})
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d", rr.Code)
		}
		if body := decodeBody(t, rr); body["result"] != `<div class="bg-gray-900">x</div>` {
			t.Errorf("result: got %q", body["result"])
		}
	})

	t.Run("custom palette", func(t *testing.T) {
		rr := postJSON(t, h.ApplyTheme, map[string]any{
			"code":    `<button class="bg-blue-600">Go</button>`,
			"theme":   "custom",
			"palette": map[string]string{"primary": "#7c3aed"},
		})
		if body := decodeBody(t, rr); body["result"] != `<button class="bg-violet-600">Go</button>` {
			t.Errorf("result: got %q", body["result"])
		}
	})

	t.Run("missing theme is 400", func(t *testing.T) {
		rr := postJSON(t, h.ApplyTheme, map[string]any{"code": "<div/>"})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})
}

func TestCompileHandler(t *testing.T) {
	h := testAIHandlers(&scriptedProvider{})

	t.Run("bundles the file set", func(t *testing.T) {
		rr := postJSON(t, h.Compile, map[string]any{
			"files": map[string]string{
				assemble.BundleEntryFile: "export const answer = 42;",
			},
		})
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d (%s)", rr.Code, rr.Body.String())
		}
		body := decodeBody(t, rr)
		if code, _ := body["code"].(string); !strings.Contains(code, "42") {
			t.Errorf("compiled code: got %q", body["code"])
		}
	})

	t.Run("missing entry is 400", func(t *testing.T) {
		rr := postJSON(t, h.Compile, map[string]any{
			"files": map[string]string{"src/App.jsx": "x"},
		})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})

	t.Run("broken source is reported", func(t *testing.T) {
		rr := postJSON(t, h.Compile, map[string]any{
			"files": map[string]string{
				assemble.BundleEntryFile: "export default function ( {",
			},
		})
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("status: got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Compilation failed") {
			t.Errorf("body: %s", rr.Body.String())
		}
	})
}
