package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/openwurl/openm3u8/m3u8"
)

func mediaPlaylist(t *testing.T) *m3u8.Playlist {
	t.Helper()
	playlist, err := m3u8.Parse([]byte(`#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-PLAYLIST-TYPE:VOD
#EXT-X-KEY:METHOD=AES-128,URI="k1"
#EXTINF:9.009,First
segment0.ts
#EXT-X-CUE-OUT:30
#EXTINF:9.009,
segment1.ts
#EXT-X-ENDLIST`))
	require.NoError(t, err)
	return playlist
}

func masterPlaylist(t *testing.T) *m3u8.Playlist {
	t.Helper()
	playlist, err := m3u8.Parse([]byte(`#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=1280000,RESOLUTION=852x480,CODECS="avc1.42e00a"
480p.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=5000000,RESOLUTION=1920x1080
1080p.m3u8`))
	require.NoError(t, err)
	return playlist
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{}

	data, err := formatter.Format(mediaPlaylist(t), false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(10), decoded["target_duration"])
	assert.Equal(t, "vod", decoded["playlist_type"])

	pretty, err := formatter.Format(mediaPlaylist(t), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")
}

func TestYAMLFormatter(t *testing.T) {
	formatter := &YAMLFormatter{}

	data, err := formatter.Format(mediaPlaylist(t), false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.NotEmpty(t, decoded)
}

func TestCSVFormatter(t *testing.T) {
	formatter := &CSVFormatter{}

	data, err := formatter.Format(mediaPlaylist(t), false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one row per segment")
	assert.Contains(t, lines[0], "uri")
	assert.Contains(t, lines[1], "segment0.ts")
	assert.Contains(t, lines[1], "true", "first segment is encrypted")
	assert.Contains(t, lines[2], "segment1.ts")
}

func TestTableFormatterMediaPlaylist(t *testing.T) {
	formatter := &TableFormatter{}

	data, err := formatter.Format(mediaPlaylist(t), false)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "MEDIA PLAYLIST")
	assert.Contains(t, text, "Playlist Type:")
	assert.Contains(t, text, "Vod", "lowercased document field is title-cased for display")
	assert.Contains(t, text, "Segments:")
}

func TestTableFormatterMasterPlaylist(t *testing.T) {
	formatter := &TableFormatter{}

	data, err := formatter.Format(masterPlaylist(t), false)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "MASTER PLAYLIST")
	assert.Contains(t, text, "480p.m3u8")
	assert.Contains(t, text, "1.3 Mbps")
	assert.Contains(t, text, "5.0 Mbps")
	assert.Contains(t, text, "852x480")
}

func TestFormatBandwidth(t *testing.T) {
	assert.Equal(t, "5.0 Mbps", FormatBandwidth(5000000))
	assert.Equal(t, "128 kbps", FormatBandwidth(128000))
	assert.Equal(t, "500 bps", FormatBandwidth(500))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "9.5s", FormatDuration(9.5))
	assert.Equal(t, "1m30s", FormatDuration(90))
}
