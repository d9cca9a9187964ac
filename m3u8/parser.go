package m3u8

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/openwurl/openm3u8/logging"
)

// Parser parses M3U8 playlist content. The zero value is not usable;
// construct with NewParser or NewConfigurableParser. A Parser is safe for
// concurrent use: all per-parse state lives on the call stack.
type Parser struct {
	tags           []tagEntry
	customHandlers map[string]TagHandler
	config         *ParserConfig
}

// TagHandler processes one tag line. Custom handlers registered on a
// Parser run before the built-in dispatch table; Value is the portion of
// the line after the first ':' (empty when the tag has no body).
type TagHandler struct {
	Name        string
	Description string
	Handler     func(value string, doc *Playlist, line string)
}

// NewParser creates an M3U8 parser with the default tag set and
// configuration.
func NewParser() *Parser {
	return NewConfigurableParser(nil)
}

// NewConfigurableParser creates an M3U8 parser with the given
// configuration. A nil config selects DefaultConfig().
func NewConfigurableParser(config *ParserConfig) *Parser {
	if config == nil {
		config = DefaultConfig()
	}

	tags := defaultTagTable()

	// Longest prefix wins so that e.g. DISCONTINUITY-SEQUENCE is never
	// routed to the DISCONTINUITY handler.
	sort.SliceStable(tags, func(i, j int) bool {
		return len(tags[i].prefix) > len(tags[j].prefix)
	})

	p := &Parser{
		tags:           tags,
		customHandlers: make(map[string]TagHandler),
		config:         config,
	}

	for tagName, description := range config.CustomTagHandlers {
		name := tagName
		p.RegisterTagHandler(TagHandler{
			Name:        name,
			Description: description,
			Handler: func(value string, doc *Playlist, line string) {
				if doc.Custom == nil {
					doc.Custom = make(map[string]string)
				}
				doc.Custom[customTagKey(name)] = value
			},
		})
	}

	return p
}

// RegisterTagHandler registers a custom tag handler, keyed by the full
// tag name without its ':' separator (e.g. "#EXT-X-CUSTOM"). Custom
// handlers take precedence over the built-in tag set.
func (p *Parser) RegisterTagHandler(handler TagHandler) {
	p.customHandlers[handler.Name] = handler
}

// RegisteredTags returns the names of all custom tag handlers.
func (p *Parser) RegisteredTags() []string {
	tags := make([]string, 0, len(p.customHandlers))
	for tag := range p.customHandlers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Parse parses an M3U8 manifest from a byte buffer. The buffer is only
// read for the duration of the call; the returned document owns all of
// its strings. Parsing is best-effort: malformed attribute values surface
// as zero or missing fields, never as errors. The only error conditions
// are empty input and, in strict mode, a missing #EXTM3U header.
func (p *Parser) Parse(data []byte) (*Playlist, error) {
	if len(data) == 0 {
		return nil, NewParseError(ErrCodeEmptyPlaylist, "empty playlist", nil)
	}

	doc := &Playlist{}
	st := &parserState{}
	sc := lineScanner{buf: data}

	lineNumber := 0
	sawHeader := false

	for {
		kind, raw, ok := sc.next()
		if !ok {
			break
		}
		lineNumber++

		switch kind {
		case lineBlank:
			continue

		case lineTag:
			line := string(raw)
			if !sawHeader && strings.HasPrefix(line, "#EXTM3U") {
				sawHeader = true
			}
			p.dispatchTag(line, doc, st)

		case lineURI:
			uri := string(raw)
			switch {
			case st.expectSegment:
				finalizeSegment(doc, st, uri)
			case st.expectPlaylist:
				finalizePlaylist(doc, st, uri)
			}
			// Stray URIs with no preceding segment or variant tags are
			// ignored, like unknown tags.
		}
	}

	if p.config.StrictMode && !sawHeader {
		return nil, NewParseErrorWithFields(ErrCodeInvalidFormat,
			"missing #EXTM3U header", nil,
			logging.Fields{"lines": lineNumber})
	}

	// A trailing segment whose URI never arrived is still surfaced, with
	// an empty URI. Pending dateranges and staged metadata are dropped.
	if st.currentSegment != nil {
		doc.Segments = append(doc.Segments, st.currentSegment)
	}

	logging.Debug("parsed M3U8 playlist", logging.Fields{
		"lines":      lineNumber,
		"segments":   len(doc.Segments),
		"variants":   len(doc.Variants),
		"is_variant": doc.IsVariant,
	})

	return doc, nil
}

// ParseReader parses an M3U8 manifest from an io.Reader.
func (p *Parser) ParseReader(r io.Reader) (*Playlist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewParseError(ErrCodeReadFailed, "error reading playlist", err)
	}
	return p.Parse(data)
}

// Parse parses an M3U8 manifest with the default parser. See
// (*Parser).Parse for semantics.
func Parse(data []byte) (*Playlist, error) {
	return NewParser().Parse(data)
}

// ParseReader parses an M3U8 manifest from r with the default parser.
func ParseReader(r io.Reader) (*Playlist, error) {
	return NewParser().ParseReader(r)
}

// dispatchTag routes a tag line to its handler. Custom handlers are
// consulted first, then the built-in longest-prefix table. Unrecognized
// tags are comments; they are captured when the configuration asks for
// it and dropped otherwise.
func (p *Parser) dispatchTag(line string, doc *Playlist, st *parserState) {
	if len(p.customHandlers) > 0 {
		name := line
		if idx := strings.IndexByte(line, ':'); idx >= 0 {
			name = line[:idx]
		}
		if handler, ok := p.customHandlers[name]; ok {
			handler.Handler(afterColon(line), doc, line)
			return
		}
	}

	for _, entry := range p.tags {
		if strings.HasPrefix(line, entry.prefix) {
			entry.handler(p, line, doc, st)
			return
		}
	}

	if p.config.CaptureUnknownTags {
		if name, found := strings.CutPrefix(line, "#EXT-X-"); found {
			if idx := strings.IndexByte(name, ':'); idx >= 0 {
				name = name[:idx]
			}
			if doc.Custom == nil {
				doc.Custom = make(map[string]string)
			}
			doc.Custom["custom_"+strings.ToLower(name)] = afterColon(line)
		}
	}
}

func customTagKey(tagName string) string {
	return "custom_" + strings.ToLower(strings.TrimPrefix(tagName, "#EXT-X-"))
}

// finalizeSegment consumes the pending parser state at a URI line,
// appends the finished segment, and resets the per-segment one-shots.
func finalizeSegment(doc *Playlist, st *parserState, uri string) {
	seg := st.segment()
	seg.URI = uri

	seg.Discontinuity = st.discontinuity
	seg.CueIn = st.cueIn
	seg.CueOut = st.cueOut
	seg.CueOutStart = st.cueOutStart
	seg.CueOutExplicitlyDuration = st.cueOutExplicitlyDuration
	seg.GapTag = st.gap
	seg.Blackout = st.blackout

	seg.ProgramDateTime = st.programDateTime
	st.programDateTime = ""

	// While a cue-out span is open, every segment in it sees the same
	// SCTE-35 payload; the segment that follows the CUE-IN takes
	// ownership and the state is cleared.
	seg.SCTE35 = st.scte35
	seg.OatclsSCTE35 = st.oatclsSCTE35
	seg.SCTE35Duration = st.scte35Duration
	seg.SCTE35ElapsedTime = st.scte35Elapsed
	if !st.cueOut {
		st.scte35 = ""
		st.oatclsSCTE35 = ""
		st.scte35Duration = ""
		st.scte35Elapsed = ""
	}

	// Asset metadata follows the same copy-inside-span, move-outside rule.
	if st.assetMetadata != nil {
		if st.cueOut {
			seg.AssetMetadata = append(AttributeList(nil), st.assetMetadata...)
		} else {
			seg.AssetMetadata = st.assetMetadata
			st.assetMetadata = nil
		}
	}

	seg.Key = st.currentKey
	seg.InitSection = st.currentMap

	seg.DateRanges = st.dateRanges
	st.dateRanges = nil

	doc.Segments = append(doc.Segments, seg)

	st.currentSegment = nil
	st.expectSegment = false
	st.discontinuity = false
	st.cueIn = false
	// cueOut is re-asserted by the next CUE-OUT-CONT when the span is
	// still open; with no CONT the span closes implicitly.
	st.cueOut = false
	st.cueOutStart = false
	st.cueOutExplicitlyDuration = false
	st.gap = false
	st.blackout = ""
}

// finalizePlaylist consumes the staged stream-info attributes at a URI
// line and appends the finished variant.
func finalizePlaylist(doc *Playlist, st *parserState, uri string) {
	if st.streamInf != nil {
		v := &Variant{
			URI:              uri,
			ProgramID:        st.streamInf.GetInt("program_id", 0),
			AverageBandwidth: st.streamInf.GetInt64("average_bandwidth", 0),
			Resolution:       st.streamInf.Get("resolution", ""),
			Codecs:           st.streamInf.GetUnquoted("codecs", ""),
			FrameRate:        st.streamInf.GetFloat("frame_rate", 0),
			Video:            st.streamInf.GetUnquoted("video", ""),
			Audio:            st.streamInf.GetUnquoted("audio", ""),
			Subtitles:        st.streamInf.GetUnquoted("subtitles", ""),
			ClosedCaptions:   st.streamInf.Get("closed_captions", ""),
			VideoRange:       st.streamInf.GetUnquoted("video_range", ""),
			HDCPLevel:        st.streamInf.Get("hdcp_level", ""),
			PathwayID:        st.streamInf.GetUnquoted("pathway_id", ""),
			StableVariantID:  st.streamInf.GetUnquoted("stable_variant_id", ""),
			ReqVideoLayout:   st.streamInf.Get("req_video_layout", ""),
		}

		// BANDWIDTH is parsed through float so fractional values from
		// sloppy encoders still land as a usable integer.
		if bw := st.streamInf.GetUnquoted("bandwidth", ""); bw != "" {
			if f, err := strconv.ParseFloat(strings.TrimSpace(bw), 64); err == nil {
				v.Bandwidth = int64(f)
			}
		}

		doc.Variants = append(doc.Variants, v)
	}

	st.streamInf = nil
	st.expectPlaylist = false
}
