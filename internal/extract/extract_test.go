// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package extract

import "testing"

func TestExtractFencedBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "html tagged fence",
			raw:  "Here is your component:\n```html\n<div class=\"p-4\">hi</div>\n```\nEnjoy!",
			want: `<div class="p-4">hi</div>`,
		},
		{
			name: "jsx tagged fence",
			raw:  "```jsx\nexport default function App() { return <div/>; }\n```",
			want: "export default function App() { return <div/>; }",
		},
		{
			name: "untagged fence",
			raw:  "```\n<section>x</section>\n```",
			want: "<section>x</section>",
		},
		{
			name: "first of several fences wins",
			raw:  "```html\n<p>one</p>\n```\ntext\n```html\n<p>two</p>\n```",
			want: "<p>one</p>",
		},
		{
			name: "interior whitespace trimmed",
			raw:  "```html\n\n  <div>padded</div>\n\n```",
			want: "<div>padded</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.raw); got != tt.want {
				t.Errorf("Extract: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractLineFilterFallback(t *testing.T) {
	t.Run("drops commentary lines", func(t *testing.T) {
		raw := "# Generated UI\n<div>real content</div>\n* uses flexbox\nKey improvements were made."
		want := "<div>real content</div>"
		if got := Extract(raw); got != want {
			t.Errorf("Extract: got %q, want %q", got, want)
		}
	})

	t.Run("kept lines are untouched", func(t *testing.T) {
		raw := "<div>\n  <span># not a heading here</span>\n</div>"
		if got := Extract(raw); got != raw {
			t.Errorf("Extract rewrote kept lines: got %q", got)
		}
	})

	t.Run("plain code passes through", func(t *testing.T) {
		raw := `<button class="bg-blue-600">Go</button>`
		if got := Extract(raw); got != raw {
			t.Errorf("Extract: got %q, want input unchanged", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Extract(""); got != "" {
			t.Errorf("Extract(\"\"): got %q, want empty", got)
		}
	})

	t.Run("all commentary collapses to empty", func(t *testing.T) {
		raw := "# heading\n* bullet\n```"
		if got := Extract(raw); got != "" {
			t.Errorf("Extract: got %q, want empty", got)
		}
	})
}
