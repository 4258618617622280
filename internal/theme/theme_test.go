// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package theme

import "testing"

func TestApplyLight(t *testing.T) {
	src := `<div class="bg-neutral-900 text-slate-100 border-zinc-700">` +
		`<button class="bg-indigo-600 hover:bg-gray-800">Go</button>` +
		`<a class="text-purple-400">link</a></div>`
	want := `<div class="bg-white text-gray-900 border-gray-200">` +
		`<button class="bg-blue-600 hover:bg-gray-50">Go</button>` +
		`<a class="text-blue-600">link</a></div>`

	got := Apply(src, Light, nil)
	if got != want {
		t.Errorf("Apply light:\ngot  %q\nwant %q", got, want)
	}
}

func TestApplyDark(t *testing.T) {
	src := `<main class="bg-white text-gray-900 border-slate-200">` +
		`<button class="bg-blue-600 hover:bg-zinc-50">Go</button>` +
		`<span class="text-sky-600">x</span>` +
		`<aside class="bg-gray-50"></aside></main>`
	want := `<main class="bg-gray-900 text-gray-100 border-gray-700">` +
		`<button class="bg-violet-600 hover:bg-gray-800">Go</button>` +
		`<span class="text-violet-400">x</span>` +
		`<aside class="bg-gray-800"></aside></main>`

	got := Apply(src, Dark, nil)
	if got != want {
		t.Errorf("Apply dark:\ngot  %q\nwant %q", got, want)
	}
}

func TestApplyIdempotent(t *testing.T) {
	src := `<div class="bg-neutral-900 text-slate-100 border-zinc-700 bg-white ` +
		`text-gray-900 border-slate-200 bg-indigo-600 hover:bg-gray-800 hover:bg-zinc-50">`

	for _, theme := range []string{Light, Dark, Custom} {
		t.Run(theme, func(t *testing.T) {
			once := Apply(src, theme, nil)
			twice := Apply(once, theme, nil)
			if once != twice {
				t.Errorf("second application changed output:\nonce  %q\ntwice %q", once, twice)
			}
		})
	}

	// Palettes whose slots quantize back into the match vocabulary: the
	// gray-500 fallback, and a primary that lands on a neutral shade the
	// background rule also matches.
	palettes := map[string]*Palette{
		"fallback": {
			Background: "#123456", Text: "#abcdef", Border: "#000000",
			Primary: "#ffffff", Secondary: "#111111", Accent: "#222222",
		},
		"neutral primary": {
			Background: "#0f172a", Text: "#e2e8f0", Border: "#334155",
			Primary: "#1e293b", Secondary: "#4f46e5", Accent: "#06b6d4",
		},
	}
	for name, p := range palettes {
		t.Run("custom "+name, func(t *testing.T) {
			once := Apply(src, Custom, p)
			twice := Apply(once, Custom, p)
			if once != twice {
				t.Errorf("second application changed output:\nonce  %q\ntwice %q", once, twice)
			}
		})
	}
}

// A rewritten token must never be a prefix of a larger match on the next
// pass, and a slot landing in another rule's vocabulary must stay put.
func TestApplyCustomStableTokens(t *testing.T) {
	t.Run("fallback token survives re-application", func(t *testing.T) {
		p := &Palette{Background: "#123456"}
		once := Apply(`<div class="bg-white">`, Custom, p)
		if once != `<div class="bg-gray-500">` {
			t.Fatalf("first application: got %q", once)
		}
		if twice := Apply(once, Custom, p); twice != once {
			t.Errorf("token corrupted on re-application: %q", twice)
		}
	})

	t.Run("neutral primary survives re-application", func(t *testing.T) {
		p := DefaultPalette()
		p.Primary = "#1e293b"
		once := Apply(`<button class="bg-blue-600">Go</button>`, Custom, p)
		if once != `<button class="bg-slate-800">Go</button>` {
			t.Fatalf("first application: got %q", once)
		}
		if twice := Apply(once, Custom, p); twice != once {
			t.Errorf("primary recaptured by background rule: %q", twice)
		}
	})
}

func TestApplyCustom(t *testing.T) {
	t.Run("nil palette uses default", func(t *testing.T) {
		src := `<div class="bg-white text-zinc-900 border-gray-200">` +
			`<button class="bg-blue-600 focus:ring-cyan-300">Go</button></div>`
		want := `<div class="bg-slate-900 text-slate-200 border-slate-700">` +
			`<button class="bg-violet-600 focus:ring-cyan-500">Go</button></div>`

		got := Apply(src, Custom, nil)
		if got != want {
			t.Errorf("Apply custom:\ngot  %q\nwant %q", got, want)
		}
	})

	t.Run("hover accent maps to secondary", func(t *testing.T) {
		src := `<button class="bg-blue-600 hover:bg-blue-700">Go</button>`
		want := `<button class="bg-violet-600 hover:bg-indigo-600">Go</button>`

		got := Apply(src, Custom, DefaultPalette())
		if got != want {
			t.Errorf("Apply custom:\ngot  %q\nwant %q", got, want)
		}
	})

	t.Run("unknown colors quantize to gray", func(t *testing.T) {
		p := &Palette{
			Background: "#123456",
			Text:       "#abcdef",
			Border:     "#000000",
			Primary:    "#ffffff",
			Secondary:  "#111111",
			Accent:     "#222222",
		}
		got := Apply(`<div class="bg-white text-slate-900">`, Custom, p)
		want := `<div class="bg-gray-500 text-gray-500">`
		if got != want {
			t.Errorf("Apply custom fallback:\ngot  %q\nwant %q", got, want)
		}
	})
}

func TestApplyPassthrough(t *testing.T) {
	t.Run("unknown theme", func(t *testing.T) {
		src := `<div class="bg-white">x</div>`
		if got := Apply(src, "sepia", nil); got != src {
			t.Errorf("unknown theme rewrote source: %q", got)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		if got := Apply("", Dark, nil); got != "" {
			t.Errorf("empty source: got %q, want empty", got)
		}
	})

	t.Run("tokens outside vocabulary untouched", func(t *testing.T) {
		src := `<div class="bg-rose-500 text-amber-300 custom-class">x</div>`
		if got := Apply(src, Light, nil); got != src {
			t.Errorf("out-of-vocabulary tokens rewritten: %q", got)
		}
	})
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#0f172a", "slate-900"},
		{"#7C3AED", "violet-600"}, // case-insensitive
		{"#06b6d4", "cyan-500"},
		{"#bada55", "gray-500"}, // not in the table
		{"", "gray-500"},
	}
	for _, tt := range tests {
		if got := quantize(tt.hex); got != tt.want {
			t.Errorf("quantize(%q): got %q, want %q", tt.hex, got, tt.want)
		}
	}
}
