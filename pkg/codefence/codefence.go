// Package codefence strips Markdown fenced-code-block delimiters from model
// output while leaving the fenced code untouched.
package codefence

import "strings"

// Fence is the Markdown code fence delimiter.
const Fence = "```"

// Strip removes every fence marker from raw and trims surrounding whitespace.
//
// An opening marker is the fence followed by an optional ASCII-letter language
// tag and an optional line break. A fence seen while a block is open closes
// it and takes with it the whitespace run before it, starting at the first
// line break of that run. If a language tag follows that fence, it starts the
// next block instead: the tag and one line break go, the text before it stays.
// Text between markers is kept verbatim.
//
// Strip is idempotent: the scan repeats until the text holds no fence.
func Strip(raw string) string {
	out := raw
	for strings.Contains(out, Fence) {
		out = scan(out)
	}
	return strings.TrimSpace(out)
}

// scan performs a single left-to-right pass over s.
func scan(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	open := false
	for {
		i := strings.Index(s, Fence)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}

		rest := s[i+len(Fence):]
		if open && startsWithTag(rest) {
			b.WriteString(s[:i])
			s = skipOpeningTail(rest)
			continue
		}

		if open {
			b.WriteString(trimBeforeClosing(s[:i]))
			s = rest
		} else {
			b.WriteString(s[:i])
			s = skipOpeningTail(rest)
		}
		open = !open
	}
}

// trimBeforeClosing drops the trailing whitespace run of seg from its first
// line break onwards. Runs without a line break are kept.
func trimBeforeClosing(seg string) string {
	start := len(seg)
	for start > 0 && isSpace(seg[start-1]) {
		start--
	}
	if nl := strings.IndexByte(seg[start:], '\n'); nl >= 0 {
		return seg[:start+nl]
	}
	return seg
}

// skipOpeningTail consumes the language tag and one optional line break that
// may follow an opening fence.
func skipOpeningTail(s string) string {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	switch {
	case strings.HasPrefix(s[i:], "\r\n"):
		i += 2
	case strings.HasPrefix(s[i:], "\n"):
		i++
	}
	return s[i:]
}

func startsWithTag(s string) bool {
	return len(s) > 0 && isLetter(s[0])
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
