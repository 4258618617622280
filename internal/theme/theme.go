// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package theme rewrites Tailwind utility classes in generated source to
// match a target theme. It performs pattern substitution, not parsing:
// generated code uses a small closed vocabulary of utility tokens (the
// generator is instructed to stick to it), so wholesale token replacement
// is robust against partial or invalid markup where a real parser would
// choke.
//
// All substitutions for a theme are evaluated in a single combined pass
// over the original text. Evaluating rules independently against the
// input, rather than chaining sequential replacements, guarantees two
// invariants: rule order never changes the result, and re-applying a
// theme to already-themed text is a no-op. Light and dark keep their
// replacement vocabulary disjoint from their match vocabulary; custom
// palettes can quantize a slot back into the match vocabulary, so their
// rule sets pin every replacement token as a first-wins fixed point.
package theme

import (
	"regexp"
	"strings"
)

// Theme names accepted by Apply. Anything else passes text through unchanged.
const (
	Light  = "light"
	Dark   = "dark"
	Custom = "custom"
)

// neutral is the family alternation for the neutral-shade tokens the
// generator emits for backgrounds, text, and borders.
const neutral = `(?:gray|slate|zinc|neutral|stone)`

// accentHues is the family alternation for button and heading accents.
const accentHues = `(?:blue|violet|indigo|purple|cyan)`

// rule pairs one match pattern with its replacement token. The pattern is
// compiled twice: into the theme's combined alternation, and anchored on
// its own so the dispatcher can identify which rule produced a match.
type rule struct {
	anchored *regexp.Regexp
	repl     string
}

// ruleSet holds a theme's rules plus the combined single-pass matcher.
type ruleSet struct {
	rules    []rule
	combined *regexp.Regexp
}

// compile builds a ruleSet from (pattern, replacement) pairs. Patterns are
// joined into one alternation; earlier rules win when two could match at
// the same offset, which mirrors the first-replacement-wins behaviour the
// role tables were designed around.
func compile(pairs [][2]string) *ruleSet {
	rs := &ruleSet{}
	var alts []string
	for _, p := range pairs {
		rs.rules = append(rs.rules, rule{
			anchored: regexp.MustCompile(`^(?:` + p[0] + `)$`),
			repl:     p[1],
		})
		alts = append(alts, `(?:`+p[0]+`)`)
	}
	rs.combined = regexp.MustCompile(strings.Join(alts, `|`))
	return rs
}

// apply rewrites every matched token in one pass over source.
func (rs *ruleSet) apply(source string) string {
	return rs.combined.ReplaceAllStringFunc(source, func(tok string) string {
		for _, r := range rs.rules {
			if r.anchored.MatchString(tok) {
				return r.repl
			}
		}
		return tok // unreachable: combined is the union of all rules
	})
}

// lightRules maps dark-vocabulary tokens to the light palette. Hover
// variants are listed first so they are preferred over their bare-token
// suffixes at the same match position.
var lightRules = compile([][2]string{
	{`hover:bg-` + neutral + `-800\b`, "hover:bg-gray-50"},
	{`bg-` + neutral + `-900\b`, "bg-white"},
	{`bg-` + neutral + `-800\b`, "bg-white"},
	{`text-` + neutral + `-100\b`, "text-gray-900"},
	{`border-` + neutral + `-700\b`, "border-gray-200"},
	{`bg-(?:violet|indigo|purple)-600\b`, "bg-blue-600"},
	{`text-(?:violet|indigo|purple)-400\b`, "text-blue-600"},
})

// darkRules maps light-vocabulary tokens to the dark palette.
var darkRules = compile([][2]string{
	{`hover:bg-` + neutral + `-50\b`, "hover:bg-gray-800"},
	{`bg-white\b`, "bg-gray-900"},
	{`bg-(?:slate|zinc|neutral|stone)-50\b`, "bg-gray-900"},
	{`bg-gray-50\b`, "bg-gray-800"},
	{`text-` + neutral + `-900\b`, "text-gray-100"},
	{`border-` + neutral + `-200\b`, "border-gray-700"},
	{`bg-(?:blue|indigo|sky)-600\b`, "bg-violet-600"},
	{`text-(?:blue|indigo|sky)-600\b`, "text-violet-400"},
})

// fixedPoints prepends a self-mapping rule for every replacement token.
// Quantization can land a palette slot inside another rule's source
// vocabulary (a slate primary, the gray-500 fallback); pinning each
// target as an earlier first-wins rule keeps re-application from
// recapturing it. A source token that collides with a target is kept
// as-is rather than rewritten.
func fixedPoints(pairs [][2]string) [][2]string {
	seen := make(map[string]bool, len(pairs))
	out := make([][2]string, 0, 2*len(pairs))
	for _, p := range pairs {
		if seen[p[1]] {
			continue
		}
		seen[p[1]] = true
		out = append(out, [2]string{regexp.QuoteMeta(p[1]), p[1]})
	}
	return append(out, pairs...)
}

// customRules builds the rule set for a user-chosen palette. Focus and
// hover accent rules consume the full shade suffix, matching whatever
// shade the generator picked.
func customRules(p *Palette) *ruleSet {
	bg := p.backgroundToken()
	return compile(fixedPoints([][2]string{
		{`hover:bg-` + neutral + `-(?:50|800)\b`, "hover:bg-" + bg + "/80"},
		{`hover:bg-` + accentHues + `-[^"'\s]+`, "hover:bg-" + p.secondaryToken()},
		{`hover:text-` + accentHues + `-[^"'\s]+`, "hover:text-" + p.primaryToken()},
		{`focus:ring-` + accentHues + `-[^"'\s]+`, "focus:ring-" + p.accentToken()},
		{`focus:border-` + accentHues + `-[^"'\s]+`, "focus:border-" + p.accentToken()},
		{`bg-white\b`, "bg-" + bg},
		{`bg-` + neutral + `-(?:50|800|900)\b`, "bg-" + bg},
		{`bg-` + accentHues + `-600\b`, "bg-" + p.primaryToken()},
		{`text-` + neutral + `-(?:100|900)\b`, "text-" + p.textToken()},
		{`text-` + accentHues + `-(?:400|600)\b`, "text-" + p.primaryToken()},
		{`border-` + neutral + `-(?:200|700)\b`, "border-" + p.borderToken()},
	}))
}

// Apply rewrites source for the named theme. Unknown theme names return
// the input unchanged; empty source returns the empty string. For the
// custom theme a nil palette falls back to DefaultPalette.
func Apply(source, themeName string, palette *Palette) string {
	if source == "" {
		return ""
	}

	switch themeName {
	case Light:
		return lightRules.apply(source)
	case Dark:
		return darkRules.apply(source)
	case Custom:
		if palette == nil {
			palette = DefaultPalette()
		}
		return customRules(palette).apply(source)
	}
	return source
}
