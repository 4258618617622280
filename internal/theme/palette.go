// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package theme

import "strings"

// Palette holds the six user-chosen colors of a custom theme, as hex
// strings from a color picker (e.g. "#0f172a").
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
}

// DefaultPalette returns the palette preloaded in the color picker: a
// slate base with violet/indigo/cyan accents.
func DefaultPalette() *Palette {
	return &Palette{
		Background: "#0f172a",
		Text:       "#e2e8f0",
		Border:     "#334155",
		Primary:    "#7c3aed",
		Secondary:  "#4f46e5",
		Accent:     "#06b6d4",
	}
}

// colorTokens maps picker hex values to Tailwind color names. Quantization
// is exact-match only: colors outside this table fall back to a neutral
// token rather than interpolating to a nearest shade.
var colorTokens = map[string]string{
	"#0f172a": "slate-900",
	"#1e293b": "slate-800",
	"#334155": "slate-700",
	"#475569": "slate-600",
	"#64748b": "slate-500",
	"#94a3b8": "slate-400",
	"#cbd5e1": "slate-300",
	"#e2e8f0": "slate-200",
	"#f1f5f9": "slate-100",
	"#f8fafc": "slate-50",
	"#7c3aed": "violet-600",
	"#6d28d9": "violet-700",
	"#4f46e5": "indigo-600",
	"#4338ca": "indigo-700",
	"#06b6d4": "cyan-500",
	"#0891b2": "cyan-600",
}

// quantize maps a hex color to its Tailwind token, or "gray-500" when the
// color is not in the fixed palette table.
func quantize(hex string) string {
	if tok, ok := colorTokens[strings.ToLower(hex)]; ok {
		return tok
	}
	return "gray-500"
}

func (p *Palette) backgroundToken() string { return quantize(p.Background) }
func (p *Palette) textToken() string       { return quantize(p.Text) }
func (p *Palette) borderToken() string     { return quantize(p.Border) }
func (p *Palette) primaryToken() string    { return quantize(p.Primary) }
func (p *Palette) secondaryToken() string  { return quantize(p.Secondary) }
func (p *Palette) accentToken() string     { return quantize(p.Accent) }
