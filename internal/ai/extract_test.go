package ai

import (
	"strings"
	"testing"
)

func envelope(content string) string {
	return `{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"` + content + `"},"finish_reason":"stop"}]}`
}

func TestExtractTextEnvelope(t *testing.T) {
	got := ExtractText(envelope("你好，蛇友！"))
	if got != "你好，蛇友！" {
		t.Errorf("ExtractText() = %q, expected envelope content", got)
	}
}

func TestExtractTextLongestLeaf(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "nested object",
			raw:      `{"result":{"text":"这是一条很长的教练回复"},"note":"短"}`,
			expected: "这是一条很长的教练回复",
		},
		{
			name:     "metadata keys skipped",
			raw:      `{"id":"abcdef0123456789abcdef0123456789","model":"gpt-4o-mini-2024-07-18","data":"加油"}`,
			expected: "加油",
		},
		{
			name:     "array of strings",
			raw:      `["a","继续保持状态","bb"]`,
			expected: "继续保持状态",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractText(tc.raw); got != tc.expected {
				t.Errorf("ExtractText() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestExtractTextRawFallback(t *testing.T) {
	got := ExtractText("not json \x01 at all")
	if got != "not json   at all" {
		t.Errorf("ExtractText() = %q, expected sanitized raw", got)
	}
}

func TestExtractTextRawCapped(t *testing.T) {
	raw := strings.Repeat("x", maxRawLen+50)
	got := ExtractText(raw)
	if len([]rune(got)) != maxRawLen {
		t.Errorf("len = %d, expected cap %d", len([]rune(got)), maxRawLen)
	}
}

func TestExtractSentence(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "first sentence wins",
			raw:      envelope("吃得漂亮！下一个目标在等你。"),
			expected: "吃得漂亮",
		},
		{
			name:     "quotes stripped",
			raw:      envelope("“干得好”"),
			expected: "干得好",
		},
		{
			name:     "hex id rejected",
			raw:      "abc123def456abc123def456",
			expected: defaultSentence,
		},
		{
			name:     "short hex passes the id check but has no prose",
			raw:      "abc123",
			expected: defaultSentence,
		},
		{
			name:     "no cjk rejected",
			raw:      envelope("Great job, keep going!"),
			expected: defaultSentence,
		},
		{
			name:     "empty rejected",
			raw:      "",
			expected: defaultSentence,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractSentence(tc.raw); got != tc.expected {
				t.Errorf("ExtractSentence(%q) = %q, expected %q", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestExtractSentenceTruncated(t *testing.T) {
	long := strings.Repeat("好", maxSentenceLen+10)
	got := ExtractSentence(long)

	runes := []rune(got)
	if len(runes) != maxSentenceLen+1 {
		t.Fatalf("len = %d, expected %d", len(runes), maxSentenceLen+1)
	}
	if runes[len(runes)-1] != '…' {
		t.Errorf("truncated sentence does not end with ellipsis: %q", got)
	}
}

func TestExtractCoordinate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		x, y int
		ok   bool
	}{
		{name: "marked pair", raw: envelope("X:3,Y:4"), x: 3, y: 4, ok: true},
		{name: "marked pair in prose", raw: envelope("嗯，我建议 X:3, Y:4 这个位置"), x: 3, y: 4, ok: true},
		{name: "full width colon", raw: envelope("X：5，Y：7"), x: 5, y: 7, ok: true},
		{name: "lowercase markers", raw: envelope("x:2 y:9"), x: 2, y: 9, ok: true},
		{name: "adjacent pair fallback", raw: envelope("放在 12, 7 附近吧"), x: 12, y: 7, ok: true},
		{name: "parenthesized pair", raw: envelope("(8, 3)"), x: 8, y: 3, ok: true},
		{name: "single number", raw: envelope("只有 5"), ok: false},
		{name: "no numbers", raw: envelope("放哪儿都行"), ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := ExtractCoordinate(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if ok && (x != tc.x || y != tc.y) {
				t.Errorf("ExtractCoordinate() = (%d,%d), expected (%d,%d)", x, y, tc.x, tc.y)
			}
		})
	}
}

func TestExtractCoordinateFromPlainJSON(t *testing.T) {
	// Coordinates buried in a non-envelope payload still come through the
	// leaf walk.
	x, y, ok := ExtractCoordinate(`{"answer":"食物放 X:6 Y:2"}`)
	if !ok || x != 6 || y != 2 {
		t.Errorf("ExtractCoordinate() = (%d,%d,%v), expected (6,2,true)", x, y, ok)
	}
}

func TestLooksLikeHexID(t *testing.T) {
	tests := []struct {
		s        string
		expected bool
	}{
		{s: "abc123def456abc123def456", expected: true},
		{s: "ABCDEF0123456789ABCDEF", expected: true},
		{s: "abc123def456", expected: false},
		{s: "abc123def456abc123defg456", expected: false},
		{s: "", expected: false},
	}

	for _, tc := range tests {
		if got := looksLikeHexID(tc.s); got != tc.expected {
			t.Errorf("looksLikeHexID(%q) = %v, expected %v", tc.s, got, tc.expected)
		}
	}
}
