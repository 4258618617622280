// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

// Package extract turns raw generative-model output into clean source text.
// Model responses usually wrap the code in a fenced block surrounded by
// prose; the extractor pulls out the block interior, or falls back to a
// line filter that strips obvious commentary. It is fail-open: on any
// input it cannot make sense of, the original text is returned so the
// worst case is showing raw model output to the user.
package extract

import (
	"regexp"
	"strings"
)

// fencedBlockRe matches the first fenced code block tagged as html, jsx,
// or tsx (or untagged). The interior is captured verbatim.
var fencedBlockRe = regexp.MustCompile("(?s)```(?:html|jsx|tsx)?\n(.*?)```")

// commentLineRe matches lines that are pure commentary in model output:
// bullet markers, headings, stray fence delimiters, and the "key
// improvements" epilogue Gemini likes to append.
var commentLineRe = regexp.MustCompile("(?i)^(\\*|#|```|key improvements)")

// Extract returns the clean source contained in raw model output.
//
// The common case is a single fenced block, whose trimmed interior is
// trusted as-is. When no fence is found, a best-effort line filter drops
// commentary lines and rejoins the rest; kept lines are never rewritten.
func Extract(raw string) string {
	if m := fencedBlockRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}

	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if commentLineRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
