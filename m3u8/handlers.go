package m3u8

import (
	"strconv"
	"strings"
)

// tagEntry routes one recognized tag to its handler. Prefixes carry the
// trailing ':' when the tag has a body, so dispatch and body extraction
// share the same offset.
type tagEntry struct {
	prefix  string
	handler func(p *Parser, line string, doc *Playlist, st *parserState)
}

// defaultTagTable returns the built-in tag set. Dispatch sorts it longest
// prefix first: the set contains overlap pairs (DISCONTINUITY /
// DISCONTINUITY-SEQUENCE, CUE-OUT / CUE-OUT-CONT) that make the ordering
// load-bearing.
func defaultTagTable() []tagEntry {
	entries := []tagEntry{
		{"#EXTM3U", handleHeader},
		{"#EXTINF:", handleExtInf},
		{"#EXT-X-TARGETDURATION:", handleTargetDuration},
		{"#EXT-X-MEDIA-SEQUENCE:", handleMediaSequence},
		{"#EXT-X-DISCONTINUITY-SEQUENCE:", handleDiscontinuitySequence},
		{"#EXT-X-VERSION:", handleVersion},
		{"#EXT-X-ALLOW-CACHE:", handleAllowCache},
		{"#EXT-X-PLAYLIST-TYPE:", handlePlaylistType},
		{"#EXT-X-PROGRAM-DATE-TIME:", handleProgramDateTime},
		{"#EXT-X-ENDLIST", handleEndlist},
		{"#EXT-X-I-FRAMES-ONLY", handleIFramesOnly},
		{"#EXT-X-INDEPENDENT-SEGMENTS", handleIndependentSegments},
		{"#EXT-X-IMAGES-ONLY", handleImagesOnly},
		{"#EXT-X-DISCONTINUITY", handleDiscontinuity},
		{"#EXT-X-GAP", handleGap},
		{"#EXT-X-BLACKOUT", handleBlackout},
		{"#EXT-X-CUE-IN", handleCueIn},
		{"#EXT-X-CUE-SPAN", handleCueSpan},
		{"#EXT-X-CUE-OUT-CONT", handleCueOutCont},
		{"#EXT-X-CUE-OUT", handleCueOut},
		{"#EXT-OATCLS-SCTE35:", handleOatclsSCTE35},
		{"#EXT-X-ASSET:", handleAsset},
		{"#EXT-X-KEY:", handleKey},
		{"#EXT-X-SESSION-KEY:", handleSessionKey},
		{"#EXT-X-MAP:", handleMap},
		{"#EXT-X-BYTERANGE:", handleByteRange},
		{"#EXT-X-BITRATE:", handleBitrate},
		{"#EXT-X-DATERANGE:", handleDateRange},
		{"#EXT-X-STREAM-INF:", handleStreamInf},
		{"#EXT-X-I-FRAME-STREAM-INF:", handleIFrameStreamInf},
		{"#EXT-X-IMAGE-STREAM-INF:", handleImageStreamInf},
		{"#EXT-X-MEDIA:", handleMedia},
		{"#EXT-X-START:", handleStart},
		{"#EXT-X-SERVER-CONTROL:", handleServerControl},
		{"#EXT-X-PART-INF:", handlePartInf},
		{"#EXT-X-SKIP:", handleSkip},
		{"#EXT-X-RENDITION-REPORT:", handleRenditionReport},
		{"#EXT-X-SESSION-DATA:", handleSessionData},
		{"#EXT-X-PRELOAD-HINT:", handlePreloadHint},
		{"#EXT-X-CONTENT-STEERING:", handleContentSteering},
		{"#EXT-X-TILES:", handleTiles},
		{"#EXT-X-PART:", handlePart},
	}
	return entries
}

// tagBody returns the portion of line after prefix.
func tagBody(line, prefix string) string {
	return line[len(prefix):]
}

// afterColon returns the portion of line after the first ':', or "" when
// the line carries no body.
func afterColon(line string) string {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		return line[idx+1:]
	}
	return ""
}

// parseLeadingFloat parses a float from the leading numeric prefix of s,
// stopping at the first byte that cannot extend the number. Malformed
// input yields 0.
func parseLeadingFloat(s string) float64 {
	i := 0
	n := len(s)
	for i < n && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	j := i
	if j < n && (s[j] == '+' || s[j] == '-') {
		j++
	}
	seenDot := false
	for j < n {
		c := s[j]
		if c >= '0' && c <= '9' {
			j++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			j++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(s[i:j], 64)
	if err != nil {
		return 0
	}
	return f
}

func handleHeader(p *Parser, line string, doc *Playlist, st *parserState) {
	// #EXTM3U is recognized and carries no data
}

func handleExtInf(p *Parser, line string, doc *Playlist, st *parserState) {
	body := tagBody(line, "#EXTINF:")
	seg := st.segment()
	seg.Duration = parseLeadingFloat(body)

	// Only the first comma separates duration from title; titles may
	// contain commas of their own.
	if idx := strings.IndexByte(body, ','); idx >= 0 {
		title := strings.TrimLeft(body[idx+1:], " \t")
		if title != "" {
			seg.Title = title
		}
	}
	st.expectSegment = true
}

func handleTargetDuration(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimSpace(tagBody(line, "#EXT-X-TARGETDURATION:"))
	if v, err := strconv.Atoi(body); err == nil {
		doc.TargetDuration = v
	}
}

func handleMediaSequence(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimSpace(tagBody(line, "#EXT-X-MEDIA-SEQUENCE:"))
	if v, err := strconv.ParseInt(body, 10, 64); err == nil {
		doc.MediaSequence = v
	}
	doc.HasMediaSequence = true
}

func handleDiscontinuitySequence(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimSpace(tagBody(line, "#EXT-X-DISCONTINUITY-SEQUENCE:"))
	if v, err := strconv.ParseInt(body, 10, 64); err == nil {
		doc.DiscontinuitySequence = v
	}
}

func handleVersion(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimSpace(tagBody(line, "#EXT-X-VERSION:"))
	if v, err := strconv.Atoi(body); err == nil {
		doc.Version = v
	}
}

func handleAllowCache(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimLeft(tagBody(line, "#EXT-X-ALLOW-CACHE:"), " \t")
	doc.AllowCache = strings.ToLower(body)
}

func handlePlaylistType(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimLeft(tagBody(line, "#EXT-X-PLAYLIST-TYPE:"), " \t")
	doc.PlaylistType = strings.ToLower(body)
}

func handleProgramDateTime(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimLeft(tagBody(line, "#EXT-X-PROGRAM-DATE-TIME:"), " \t")
	st.programDateTime = body

	// The document records only the first occurrence; segments follow the
	// most recent.
	if doc.ProgramDateTime == "" {
		doc.ProgramDateTime = body
	}
}

func handleEndlist(p *Parser, line string, doc *Playlist, st *parserState) {
	doc.IsEndlist = true
}

func handleIFramesOnly(p *Parser, line string, doc *Playlist, st *parserState) {
	doc.IsIFramesOnly = true
}

func handleIndependentSegments(p *Parser, line string, doc *Playlist, st *parserState) {
	doc.IsIndependentSegments = true
}

func handleImagesOnly(p *Parser, line string, doc *Playlist, st *parserState) {
	doc.IsImagesOnly = true
}

func handleDiscontinuity(p *Parser, line string, doc *Playlist, st *parserState) {
	st.discontinuity = true
}

func handleGap(p *Parser, line string, doc *Playlist, st *parserState) {
	st.gap = true
}

func handleBlackout(p *Parser, line string, doc *Playlist, st *parserState) {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		st.blackout = line[idx+1:]
	} else {
		st.blackout = BlackoutPresent
	}
}

func handleCueIn(p *Parser, line string, doc *Playlist, st *parserState) {
	st.cueIn = true
}

func handleCueSpan(p *Parser, line string, doc *Playlist, st *parserState) {
	st.cueOut = true
}

func handleCueOut(p *Parser, line string, doc *Playlist, st *parserState) {
	st.cueOut = true
	st.cueOutStart = true

	body := afterColon(line)
	if body == "" {
		return
	}

	if strings.Contains(strings.ToUpper(body), "DURATION") {
		st.cueOutExplicitlyDuration = true
	}

	attrs := parseAttributes(body)
	if cue := attrs.GetUnquoted("cue", ""); cue != "" {
		st.scte35 = cue
	}

	// A keyed DURATION wins over a bare "<seconds>" body
	duration := attrs.Get("duration", "")
	if duration == "" {
		duration = attrs.Get("", "")
	}
	if duration != "" {
		st.scte35Duration = duration
	}
}

func handleCueOutCont(p *Parser, line string, doc *Playlist, st *parserState) {
	st.cueOut = true

	body := afterColon(line)
	if body == "" {
		return
	}

	attrs := parseAttributes(body)

	// Legacy "<elapsed>/<total>" positional form
	if bare := attrs.Get("", ""); bare != "" {
		if slash := strings.IndexByte(bare, '/'); slash >= 0 {
			st.scte35Elapsed = bare[:slash]
			st.scte35Duration = bare[slash+1:]
		} else {
			st.scte35Duration = bare
		}
	}

	if v := attrs.GetUnquoted("duration", ""); v != "" {
		st.scte35Duration = v
	}
	if v := attrs.GetUnquoted("scte35", ""); v != "" {
		st.scte35 = v
	}
	if v := attrs.GetUnquoted("elapsedtime", ""); v != "" {
		st.scte35Elapsed = v
	}
}

func handleOatclsSCTE35(p *Parser, line string, doc *Playlist, st *parserState) {
	body := tagBody(line, "#EXT-OATCLS-SCTE35:")
	st.oatclsSCTE35 = body
	if st.scte35 == "" {
		st.scte35 = body
	}
}

func handleAsset(p *Parser, line string, doc *Playlist, st *parserState) {
	st.assetMetadata = parseAttributes(tagBody(line, "#EXT-X-ASSET:"))
}

func handleKey(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-KEY:"))
	key := keyFromAttributes(attrs)
	st.currentKey = key
	doc.Keys = append(doc.Keys, key)
}

func handleSessionKey(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-SESSION-KEY:"))
	doc.SessionKeys = append(doc.SessionKeys, keyFromAttributes(attrs))
}

func keyFromAttributes(attrs AttributeList) *Key {
	return &Key{
		Method:            attrs.GetUnquoted("method", ""),
		URI:               attrs.GetUnquoted("uri", ""),
		IV:                attrs.GetUnquoted("iv", ""),
		Keyformat:         attrs.GetUnquoted("keyformat", ""),
		Keyformatversions: attrs.GetUnquoted("keyformatversions", ""),
	}
}

func handleMap(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-MAP:"))
	m := &Map{
		URI:       attrs.GetUnquoted("uri", ""),
		ByteRange: attrs.GetUnquoted("byterange", ""),
	}
	st.currentMap = m
	doc.SegmentMaps = append(doc.SegmentMaps, m)
}

func handleByteRange(p *Parser, line string, doc *Playlist, st *parserState) {
	st.segment().ByteRange = tagBody(line, "#EXT-X-BYTERANGE:")
	st.expectSegment = true
}

func handleBitrate(p *Parser, line string, doc *Playlist, st *parserState) {
	body := strings.TrimSpace(tagBody(line, "#EXT-X-BITRATE:"))
	seg := st.segment()
	if v, err := strconv.Atoi(body); err == nil {
		seg.Bitrate = v
	}
}

func handleDateRange(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-DATERANGE:"))

	dr := &DateRange{
		ID:              attrs.GetUnquoted("id", ""),
		Class:           attrs.GetUnquoted("class", ""),
		StartDate:       attrs.GetUnquoted("start_date", ""),
		EndDate:         attrs.GetUnquoted("end_date", ""),
		Duration:        attrs.GetFloat("duration", 0),
		PlannedDuration: attrs.GetFloat("planned_duration", 0),
		SCTE35Cmd:       attrs.Get("scte35_cmd", ""),
		SCTE35Out:       attrs.Get("scte35_out", ""),
		SCTE35In:        attrs.Get("scte35_in", ""),
		EndOnNext:       attrs.Get("end_on_next", ""),
	}

	for _, attr := range attrs {
		if strings.HasPrefix(attr.Key, "x_") {
			dr.XAttrs = append(dr.XAttrs, attr)
		}
	}

	// Pending dateranges attach to the next finalized segment or part,
	// in tag order.
	st.dateRanges = append(st.dateRanges, dr)
}

func handleStreamInf(p *Parser, line string, doc *Playlist, st *parserState) {
	doc.IsVariant = true
	doc.HasMediaSequence = false
	st.streamInf = parseAttributes(tagBody(line, "#EXT-X-STREAM-INF:"))
	st.expectPlaylist = true
}

func handleIFrameStreamInf(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-I-FRAME-STREAM-INF:"))
	doc.IFrameVariants = append(doc.IFrameVariants, &IFrameVariant{
		URI:              attrs.GetUnquoted("uri", ""),
		ProgramID:        attrs.GetInt("program_id", 0),
		Bandwidth:        attrs.GetInt64("bandwidth", 0),
		AverageBandwidth: attrs.GetInt64("average_bandwidth", 0),
		Resolution:       attrs.Get("resolution", ""),
		Codecs:           attrs.GetUnquoted("codecs", ""),
		VideoRange:       attrs.GetUnquoted("video_range", ""),
		HDCPLevel:        attrs.Get("hdcp_level", ""),
		PathwayID:        attrs.GetUnquoted("pathway_id", ""),
		StableVariantID:  attrs.GetUnquoted("stable_variant_id", ""),
	})
}

func handleImageStreamInf(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-IMAGE-STREAM-INF:"))
	doc.ImageVariants = append(doc.ImageVariants, &ImageVariant{
		URI:              attrs.GetUnquoted("uri", ""),
		ProgramID:        attrs.GetInt("program_id", 0),
		Bandwidth:        attrs.GetInt64("bandwidth", 0),
		AverageBandwidth: attrs.GetInt64("average_bandwidth", 0),
		Resolution:       attrs.Get("resolution", ""),
		Codecs:           attrs.GetUnquoted("codecs", ""),
		PathwayID:        attrs.GetUnquoted("pathway_id", ""),
		StableVariantID:  attrs.GetUnquoted("stable_variant_id", ""),
	})
}

func handleMedia(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-MEDIA:"))
	doc.Media = append(doc.Media, &Media{
		Type:              attrs.Get("type", ""),
		URI:               attrs.GetUnquoted("uri", ""),
		GroupID:           attrs.GetUnquoted("group_id", ""),
		Language:          attrs.GetUnquoted("language", ""),
		AssocLanguage:     attrs.GetUnquoted("assoc_language", ""),
		Name:              attrs.GetUnquoted("name", ""),
		Default:           attrs.Get("default", ""),
		Autoselect:        attrs.Get("autoselect", ""),
		Forced:            attrs.Get("forced", ""),
		InstreamID:        attrs.GetUnquoted("instream_id", ""),
		Characteristics:   attrs.GetUnquoted("characteristics", ""),
		Channels:          attrs.GetUnquoted("channels", ""),
		StableRenditionID: attrs.GetUnquoted("stable_rendition_id", ""),
	})
}

func handleStart(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-START:"))
	doc.Start = &Start{
		TimeOffset: attrs.GetFloat("time_offset", 0),
		Precise:    attrs.Get("precise", ""),
	}
}

func handleServerControl(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-SERVER-CONTROL:"))
	doc.ServerControl = &ServerControl{
		CanBlockReload:    attrs.Get("can_block_reload", ""),
		HoldBack:          attrs.GetFloat("hold_back", 0),
		PartHoldBack:      attrs.GetFloat("part_hold_back", 0),
		CanSkipUntil:      attrs.GetFloat("can_skip_until", 0),
		CanSkipDateranges: attrs.Get("can_skip_dateranges", ""),
	}
}

func handlePartInf(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-PART-INF:"))
	doc.PartInf = &PartInf{
		PartTarget: attrs.GetFloat("part_target", 0),
	}
}

func handleSkip(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-SKIP:"))
	doc.Skip = &Skip{
		SkippedSegments:           attrs.GetInt("skipped_segments", 0),
		RecentlyRemovedDateranges: attrs.GetUnquoted("recently_removed_dateranges", ""),
	}
}

func handleRenditionReport(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-RENDITION-REPORT:"))
	rr := &RenditionReport{
		URI: attrs.GetUnquoted("uri", ""),
	}
	if attrs.Has("last_msn") {
		rr.LastMSN = attrs.GetInt64("last_msn", 0)
		rr.HasLastMSN = true
	}
	if attrs.Has("last_part") {
		rr.LastPart = attrs.GetInt64("last_part", 0)
		rr.HasLastPart = true
	}
	doc.RenditionReports = append(doc.RenditionReports, rr)
}

func handleSessionData(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-SESSION-DATA:"))
	doc.SessionData = append(doc.SessionData, &SessionData{
		DataID:   attrs.GetUnquoted("data_id", ""),
		Value:    attrs.GetUnquoted("value", ""),
		URI:      attrs.GetUnquoted("uri", ""),
		Language: attrs.GetUnquoted("language", ""),
	})
}

func handlePreloadHint(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-PRELOAD-HINT:"))
	hint := &PreloadHint{
		Type: attrs.Get("type", ""),
		URI:  attrs.GetUnquoted("uri", ""),
	}
	if attrs.Has("byterange_start") {
		hint.ByteRangeStart = attrs.GetInt("byterange_start", 0)
		hint.HasByteRangeStart = true
	}
	if attrs.Has("byterange_length") {
		hint.ByteRangeLength = attrs.GetInt("byterange_length", 0)
		hint.HasByteRangeLength = true
	}
	doc.PreloadHint = hint
}

func handleContentSteering(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-CONTENT-STEERING:"))
	doc.ContentSteering = &ContentSteering{
		ServerURI: attrs.GetUnquoted("server_uri", ""),
		PathwayID: attrs.GetUnquoted("pathway_id", ""),
	}
}

func handleTiles(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-TILES:"))
	doc.Tiles = append(doc.Tiles, &Tiles{
		Resolution: attrs.Get("resolution", ""),
		Layout:     attrs.Get("layout", ""),
		Duration:   attrs.GetFloat("duration", 0),
		URI:        attrs.GetUnquoted("uri", ""),
	})
}

func handlePart(p *Parser, line string, doc *Playlist, st *parserState) {
	attrs := parseAttributes(tagBody(line, "#EXT-X-PART:"))
	part := &Part{
		URI:         attrs.GetUnquoted("uri", ""),
		Duration:    attrs.GetFloat("duration", 0),
		ByteRange:   attrs.Get("byterange", ""),
		Independent: attrs.Get("independent", ""),
		Gap:         attrs.Get("gap", ""),
		GapTag:      st.gap,
	}

	// Pending dateranges attach to the part, not the enclosing segment
	part.DateRanges = st.dateRanges
	st.dateRanges = nil
	st.gap = false

	seg := st.segment()
	seg.Parts = append(seg.Parts, part)
}
