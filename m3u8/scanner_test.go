package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectLines(t *testing.T, input string) []string {
	t.Helper()
	var lines []string
	sc := lineScanner{buf: []byte(input)}
	for {
		kind, line, ok := sc.next()
		if !ok {
			break
		}
		if kind == lineBlank {
			continue
		}
		lines = append(lines, string(line))
	}
	return lines
}

func TestLineScannerLineEndings(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"LF", "#EXTM3U\n#EXTINF:4,\na.ts\n"},
		{"CRLF", "#EXTM3U\r\n#EXTINF:4,\r\na.ts\r\n"},
		{"CR", "#EXTM3U\r#EXTINF:4,\ra.ts\r"},
		{"no trailing newline", "#EXTM3U\n#EXTINF:4,\na.ts"},
	}

	expected := []string{"#EXTM3U", "#EXTINF:4,", "a.ts"}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, expected, collectLines(t, tc.input))
		})
	}
}

func TestLineScannerTrimsWhitespace(t *testing.T) {
	lines := collectLines(t, "  #EXTM3U  \n\t a.ts \t\n")
	assert.Equal(t, []string{"#EXTM3U", "a.ts"}, lines)
}

func TestLineScannerSkipsBlankLines(t *testing.T) {
	lines := collectLines(t, "#EXTM3U\n\n   \n\t\na.ts\n\n")
	assert.Equal(t, []string{"#EXTM3U", "a.ts"}, lines)
}

func TestLineScannerClassification(t *testing.T) {
	sc := lineScanner{buf: []byte("#EXTINF:4,\nsegment.ts\n")}

	kind, line, ok := sc.next()
	assert.True(t, ok)
	assert.Equal(t, lineTag, kind)
	assert.Equal(t, "#EXTINF:4,", string(line))

	kind, line, ok = sc.next()
	assert.True(t, ok)
	assert.Equal(t, lineURI, kind)
	assert.Equal(t, "segment.ts", string(line))

	_, _, ok = sc.next()
	assert.False(t, ok)
}

func TestLineScannerEmptyInput(t *testing.T) {
	sc := lineScanner{buf: nil}
	_, _, ok := sc.next()
	assert.False(t, ok)
}
