// Package ai talks to an OpenAI-compatible chat-completions endpoint and
// turns its untrusted replies into coach text or food coordinates. Every
// reply goes through the layered extractor in this file; nothing from the
// wire is ever written into game state without validation.
package ai

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Bounds applied to extracted text before it reaches the renderer.
const (
	maxRawLen      = 2000 // cap on sanitized raw payloads, in runes
	maxSentenceLen = 120  // cap on single-line coach text, in runes
	maxHexLen      = 20   // pure-hex strings longer than this look like IDs
)

// defaultSentence replaces single-line replies that fail the post-filter.
const defaultSentence = "继续加油，好好表现！"

// metadataKeys are JSON keys whose string values are provider bookkeeping,
// not answer text. The leaf walk skips them.
var metadataKeys = map[string]bool{
	"id":                 true,
	"object":             true,
	"model":              true,
	"role":               true,
	"type":               true,
	"name":               true,
	"finish_reason":      true,
	"system_fingerprint": true,
	"service_tier":       true,
	"logprobs":           true,
	"created":            true,
	"index":              true,
	"usage":              true,
}

// chatEnvelope matches the conventional chat-completions response shape.
type chatEnvelope struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractText recovers the most likely answer text from an arbitrary
// response payload. Preference order: the conventional
// choices[0].message.content path, then the longest string leaf of the
// parsed document with metadata keys excluded, then the sanitized raw
// text itself.
func ExtractText(raw string) string {
	var env chatEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil {
		if len(env.Choices) > 0 && env.Choices[0].Message.Content != "" {
			return env.Choices[0].Message.Content
		}
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err == nil {
		if best := longestStringLeaf(doc); best != "" {
			return best
		}
	}

	return truncateRunes(sanitize(raw), maxRawLen)
}

// ExtractSentence extracts a single line of coach text. Replies that look
// like opaque identifiers or that carry no CJK prose are replaced by a
// fixed default; the survivor is cut at the first sentence boundary.
func ExtractSentence(raw string) string {
	text := strings.TrimSpace(ExtractText(raw))
	if text == "" || looksLikeHexID(text) || !containsCJK(text) {
		return defaultSentence
	}

	for _, part := range strings.FieldsFunc(text, isSentenceBoundary) {
		part = strings.TrimSpace(strings.Trim(part, quoteCutset))
		if part == "" {
			continue
		}
		if len([]rune(part)) > maxSentenceLen {
			return string([]rune(part)[:maxSentenceLen]) + "…"
		}
		return part
	}
	return defaultSentence
}

// ExtractCoordinate parses a coordinate pair out of a placement reply.
// It first honors explicit "X:"/"Y:" markers, then falls back to scanning
// for the first adjacent pair of integer tokens. ok is false when neither
// strategy finds two integers; the caller must then place locally.
func ExtractCoordinate(raw string) (x, y int, ok bool) {
	text := ExtractText(raw)
	text = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '{', '}', '[', ']', '\n', '\r', '“', '”', '‘', '’', '「', '」':
			return -1
		}
		return r
	}, text)

	if x, y, ok = markedCoordinate(text); ok {
		return x, y, true
	}
	return adjacentIntPair(text)
}

// markedCoordinate reads the first numeric token after an "X:" marker and
// after a "Y:" marker. Missing markers or unparseable tokens make it fall
// through to the delimiter scan instead of failing the extraction.
func markedCoordinate(text string) (int, int, bool) {
	upper := strings.ToUpper(strings.NewReplacer("：", ":").Replace(text))
	xi := strings.Index(upper, "X:")
	yi := strings.Index(upper, "Y:")
	if xi < 0 || yi < 0 {
		return 0, 0, false
	}
	x, okX := firstInt(upper[xi+2:])
	y, okY := firstInt(upper[yi+2:])
	if !okX || !okY {
		return 0, 0, false
	}
	return x, y, true
}

// firstInt returns the first run of digits in s as an integer.
func firstInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}

// adjacentIntPair splits on common delimiters and returns the leftmost
// pair of neighboring tokens that both parse as integers.
func adjacentIntPair(text string) (int, int, bool) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', ',', ';', '(', ')', '，', '；', '（', '）', '、':
			return true
		}
		return false
	})
	for i := 0; i+1 < len(tokens); i++ {
		a, errA := strconv.Atoi(tokens[i])
		b, errB := strconv.Atoi(tokens[i+1])
		if errA == nil && errB == nil {
			return a, b, true
		}
	}
	return 0, 0, false
}

// longestStringLeaf walks the parsed document and returns the longest
// string value found outside metadata keys. Map keys are visited in
// sorted order so the first-seen tie-break is deterministic.
func longestStringLeaf(doc any) string {
	var best string
	var walk func(node any)
	walk = func(node any) {
		switch v := node.(type) {
		case string:
			if len([]rune(v)) > len([]rune(best)) {
				best = v
			}
		case []any:
			for _, item := range v {
				walk(item)
			}
		case map[string]any:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if metadataKeys[k] {
					continue
				}
				walk(v[k])
			}
		}
	}
	walk(doc)
	return best
}

// sanitize collapses control characters to spaces and trims the result.
func sanitize(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// looksLikeHexID reports whether the string is purely hexadecimal and long
// enough to be an opaque identifier rather than prose.
func looksLikeHexID(s string) bool {
	if len(s) <= maxHexLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// containsCJK reports whether the string holds at least one character in
// the CJK Unified Ideographs range. The coach replies in Chinese, so a
// reply without any is most likely not the expected text.
func containsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

func isSentenceBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '。', '！', '？', '.', '!', '?', '；', ';':
		return true
	}
	return false
}

// quoteCutset lists quote characters stripped from sentence edges.
const quoteCutset = "\"'“”‘’「」『』"
