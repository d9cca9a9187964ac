package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttributes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected AttributeList
	}{
		{
			name:  "simple attributes",
			input: "BANDWIDTH=1280000,RESOLUTION=852x480",
			expected: AttributeList{
				{Key: "bandwidth", Value: "1280000"},
				{Key: "resolution", Value: "852x480"},
			},
		},
		{
			name:  "quoted value keeps quotes and commas",
			input: `BANDWIDTH=1280000,CODECS="avc1.42e00a,mp4a.40.2"`,
			expected: AttributeList{
				{Key: "bandwidth", Value: "1280000"},
				{Key: "codecs", Value: `"avc1.42e00a,mp4a.40.2"`},
			},
		},
		{
			name:  "single-quoted value",
			input: `NAME='My Stream',TYPE=AUDIO`,
			expected: AttributeList{
				{Key: "name", Value: "'My Stream'"},
				{Key: "type", Value: "AUDIO"},
			},
		},
		{
			name:  "keys normalized",
			input: "FRAME-RATE=29.97,Stable-Variant-ID=\"v1\"",
			expected: AttributeList{
				{Key: "frame_rate", Value: "29.97"},
				{Key: "stable_variant_id", Value: `"v1"`},
			},
		},
		{
			name:  "bare positional value",
			input: "10/30,SCTE35=\"abc\"",
			expected: AttributeList{
				{Key: "", Value: "10/30"},
				{Key: "scte35", Value: `"abc"`},
			},
		},
		{
			name:  "whitespace around separators",
			input: " KEY1 = v1 , KEY2 = \"v2\" ",
			expected: AttributeList{
				{Key: "key1", Value: "v1"},
				{Key: "key2", Value: `"v2"`},
			},
		},
		{
			name:  "unterminated quote consumes the rest of the line",
			input: `URI="broken,KEY=v`,
			expected: AttributeList{
				{Key: "uri", Value: `"broken,KEY=v`},
			},
		},
		{
			name:  "duplicate keys preserved",
			input: "A=1,A=2",
			expected: AttributeList{
				{Key: "a", Value: "1"},
				{Key: "a", Value: "2"},
			},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseAttributes(tc.input))
		})
	}
}

func TestParseAttributesKeyCharset(t *testing.T) {
	attrs := parseAttributes(`FRAME-RATE=29.97,X-Custom-Attr-9="v",PROGRAM-ID=1`)
	for _, attr := range attrs {
		for i := 0; i < len(attr.Key); i++ {
			c := attr.Key[i]
			valid := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
			assert.True(t, valid, "unexpected character %q in key %q", c, attr.Key)
		}
	}
}

func TestAttributeListGet(t *testing.T) {
	attrs := parseAttributes(`METHOD=AES-128,URI="https://k/1",A=1,A=2`)

	assert.Equal(t, "AES-128", attrs.Get("method", ""))
	assert.Equal(t, `"https://k/1"`, attrs.Get("uri", ""))
	assert.Equal(t, "https://k/1", attrs.GetUnquoted("uri", ""))
	assert.Equal(t, "1", attrs.Get("a", ""), "first duplicate wins")
	assert.Equal(t, "fallback", attrs.Get("missing", "fallback"))
	assert.True(t, attrs.Has("method"))
	assert.False(t, attrs.Has("missing"))
}

func TestAttributeListNumericAccessors(t *testing.T) {
	attrs := parseAttributes("INT=42,NEG=-7,BIG=9007199254740993,FLOAT=29.97,BAD=oops")

	assert.Equal(t, 42, attrs.GetInt("int", 0))
	assert.Equal(t, -7, attrs.GetInt("neg", 0))
	assert.Equal(t, int64(9007199254740993), attrs.GetInt64("big", 0))
	assert.Equal(t, 29.97, attrs.GetFloat("float", 0))

	assert.Equal(t, 99, attrs.GetInt("bad", 99), "malformed value falls back to default")
	assert.Equal(t, int64(99), attrs.GetInt64("bad", 99))
	assert.Equal(t, 9.9, attrs.GetFloat("bad", 9.9))
	assert.Equal(t, 5, attrs.GetInt("missing", 5))
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "abc", unquote(`"abc"`))
	assert.Equal(t, "abc", unquote("'abc'"))
	assert.Equal(t, `"abc'`, unquote(`"abc'`), "mismatched quotes left alone")
	assert.Equal(t, `"`, unquote(`"`))
	assert.Equal(t, "", unquote(`""`))
	assert.Equal(t, "plain", unquote("plain"))
}

func TestParseLeadingFloat(t *testing.T) {
	assert.Equal(t, 5.5, parseLeadingFloat("5.5"))
	assert.Equal(t, 5.5, parseLeadingFloat("5.5,Title"))
	assert.Equal(t, 10.0, parseLeadingFloat(" 10"))
	assert.Equal(t, -3.25, parseLeadingFloat("-3.25abc"))
	assert.Equal(t, 0.0, parseLeadingFloat("invalid"))
	assert.Equal(t, 0.0, parseLeadingFloat(""))
}
