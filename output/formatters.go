// Package output renders parsed playlist documents for humans and
// downstream tooling.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/openwurl/openm3u8/m3u8"
)

var titleCaser = cases.Title(language.English)

// Formatter interface for different output formats
type Formatter interface {
	Format(playlist *m3u8.Playlist, prettyPrint bool) ([]byte, error)
}

// JSONFormatter formats a playlist document as JSON
type JSONFormatter struct{}

func (f *JSONFormatter) Format(playlist *m3u8.Playlist, prettyPrint bool) ([]byte, error) {
	if prettyPrint {
		return json.MarshalIndent(playlist, "", "  ")
	}
	return json.Marshal(playlist)
}

// YAMLFormatter formats a playlist document as YAML
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(playlist *m3u8.Playlist, prettyPrint bool) ([]byte, error) {
	return yaml.Marshal(playlist)
}

// CSVFormatter formats the segment table as CSV: one row per segment
// with the fields CDN tooling cares about.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(playlist *m3u8.Playlist, prettyPrint bool) ([]byte, error) {
	var result strings.Builder
	writer := csv.NewWriter(&result)

	header := []string{
		"index",
		"uri",
		"duration_s",
		"title",
		"discontinuity",
		"cue_out",
		"cue_in",
		"gap",
		"encrypted",
		"parts",
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, seg := range playlist.Segments {
		record := []string{
			strconv.Itoa(i),
			seg.URI,
			strconv.FormatFloat(seg.Duration, 'f', 3, 64),
			seg.Title,
			strconv.FormatBool(seg.Discontinuity),
			strconv.FormatBool(seg.CueOut),
			strconv.FormatBool(seg.CueIn),
			strconv.FormatBool(seg.GapTag),
			strconv.FormatBool(seg.Key != nil && seg.Key.Method != "" && seg.Key.Method != "NONE"),
			strconv.Itoa(len(seg.Parts)),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return []byte(result.String()), nil
}

// TableFormatter formats a playlist summary as a human-readable table
type TableFormatter struct{}

func (f *TableFormatter) Format(playlist *m3u8.Playlist, prettyPrint bool) ([]byte, error) {
	var result strings.Builder

	if playlist.IsVariant {
		result.WriteString("MASTER PLAYLIST\n")
		result.WriteString("===============\n\n")
	} else {
		result.WriteString("MEDIA PLAYLIST\n")
		result.WriteString("==============\n\n")
	}

	writeRow := func(label, value string) {
		if value != "" {
			result.WriteString(fmt.Sprintf("%-22s %s\n", label+":", value))
		}
	}

	if playlist.Version != 0 {
		writeRow("Version", strconv.Itoa(playlist.Version))
	}
	if playlist.TargetDuration != 0 {
		writeRow("Target Duration", strconv.Itoa(playlist.TargetDuration)+"s")
	}
	if playlist.HasMediaSequence {
		writeRow("Media Sequence", strconv.FormatInt(playlist.MediaSequence, 10))
	}
	// Scalar document strings are stored lowercased; title-case for display
	writeRow("Playlist Type", titleCaser.String(playlist.PlaylistType))
	writeRow("Allow Cache", titleCaser.String(playlist.AllowCache))
	writeRow("Program Date Time", playlist.ProgramDateTime)

	if playlist.IsVariant {
		writeRow("Variants", strconv.Itoa(len(playlist.Variants)))
		writeRow("Renditions", strconv.Itoa(len(playlist.Media)))
		if len(playlist.IFrameVariants) > 0 {
			writeRow("I-Frame Variants", strconv.Itoa(len(playlist.IFrameVariants)))
		}
		if len(playlist.ImageVariants) > 0 {
			writeRow("Image Variants", strconv.Itoa(len(playlist.ImageVariants)))
		}
	} else {
		writeRow("Segments", strconv.Itoa(len(playlist.Segments)))
		writeRow("Total Duration", FormatDuration(playlist.TotalDuration()))
		writeRow("Live", strconv.FormatBool(playlist.IsLive()))
		if len(playlist.Keys) > 0 {
			writeRow("Keys", strconv.Itoa(len(playlist.Keys)))
		}
	}

	if len(playlist.Variants) > 0 {
		result.WriteString("\nVariants:\n")
		result.WriteString("---------\n")
		for i, v := range playlist.Variants {
			result.WriteString(fmt.Sprintf("%d. %s", i+1, v.URI))
			var details []string
			if v.Bandwidth > 0 {
				details = append(details, FormatBandwidth(v.Bandwidth))
			}
			if v.Resolution != "" {
				details = append(details, v.Resolution)
			}
			if v.Codecs != "" {
				details = append(details, v.Codecs)
			}
			if len(details) > 0 {
				result.WriteString(" (" + strings.Join(details, ", ") + ")")
			}
			result.WriteString("\n")
		}
	}

	return []byte(result.String()), nil
}

// FormatBandwidth formats bits per second for human-readable output
func FormatBandwidth(bps int64) string {
	switch {
	case bps >= 1_000_000:
		return fmt.Sprintf("%.1f Mbps", float64(bps)/1_000_000)
	case bps >= 1_000:
		return fmt.Sprintf("%.0f kbps", float64(bps)/1_000)
	default:
		return fmt.Sprintf("%d bps", bps)
	}
}

// FormatDuration formats seconds for human-readable output
func FormatDuration(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds) / 60
	remaining := seconds - float64(minutes*60)
	return fmt.Sprintf("%dm%.0fs", minutes, remaining)
}
