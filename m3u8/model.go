package m3u8

// Playlist represents a parsed M3U8 playlist document. A media playlist
// carries Segments; a master (variant) playlist carries Variants, Media
// renditions, and session-level records. Both shapes share this type.
type Playlist struct {
	TargetDuration        int    `json:"target_duration,omitempty"`
	Version               int    `json:"version,omitempty"`
	MediaSequence         int64  `json:"media_sequence,omitempty"`
	HasMediaSequence      bool   `json:"has_media_sequence,omitempty"`
	DiscontinuitySequence int64  `json:"discontinuity_sequence,omitempty"`
	AllowCache            string `json:"allow_cache,omitempty"`
	PlaylistType          string `json:"playlist_type,omitempty"`
	ProgramDateTime       string `json:"program_date_time,omitempty"`

	IsVariant             bool `json:"is_variant,omitempty"`
	IsEndlist             bool `json:"is_endlist,omitempty"`
	IsIFramesOnly         bool `json:"is_i_frames_only,omitempty"`
	IsIndependentSegments bool `json:"is_independent_segments,omitempty"`
	IsImagesOnly          bool `json:"is_images_only,omitempty"`

	Start           *Start           `json:"start,omitempty"`
	ServerControl   *ServerControl   `json:"server_control,omitempty"`
	PartInf         *PartInf         `json:"part_inf,omitempty"`
	Skip            *Skip            `json:"skip,omitempty"`
	PreloadHint     *PreloadHint     `json:"preload_hint,omitempty"`
	ContentSteering *ContentSteering `json:"content_steering,omitempty"`

	Segments         []*Segment         `json:"segments,omitempty"`
	Variants         []*Variant         `json:"variants,omitempty"`
	IFrameVariants   []*IFrameVariant   `json:"iframe_variants,omitempty"`
	ImageVariants    []*ImageVariant    `json:"image_variants,omitempty"`
	Media            []*Media           `json:"media,omitempty"`
	Keys             []*Key             `json:"keys,omitempty"`
	SessionKeys      []*Key             `json:"session_keys,omitempty"`
	SegmentMaps      []*Map             `json:"segment_maps,omitempty"`
	RenditionReports []*RenditionReport `json:"rendition_reports,omitempty"`
	SessionData      []*SessionData     `json:"session_data,omitempty"`
	Tiles            []*Tiles           `json:"tiles,omitempty"`

	// Custom holds bodies of unrecognized #EXT-X-* tags when capture is
	// enabled in the parser configuration, and of tags named in the
	// configuration's CustomTagHandlers. Nil when no such tag was seen.
	Custom map[string]string `json:"custom,omitempty"`
}

// IsLive reports whether the playlist describes a live stream: a media
// playlist with no #EXT-X-ENDLIST marker.
func (p *Playlist) IsLive() bool {
	return !p.IsVariant && !p.IsEndlist
}

// TotalDuration returns the sum of all segment durations in seconds.
func (p *Playlist) TotalDuration() float64 {
	var total float64
	for _, seg := range p.Segments {
		total += seg.Duration
	}
	return total
}

// Segment represents an individual media segment: the accumulation of the
// tags preceding a URI line plus the URI itself. Key and InitSection are
// references into the document's Keys and SegmentMaps collections, shared
// between all segments they apply to.
type Segment struct {
	URI       string  `json:"uri"`
	Duration  float64 `json:"duration"`
	Title     string  `json:"title,omitempty"`
	ByteRange string  `json:"byterange,omitempty"`
	Bitrate   int     `json:"bitrate,omitempty"`

	Discontinuity   bool   `json:"discontinuity,omitempty"`
	ProgramDateTime string `json:"program_date_time,omitempty"`

	CueIn                    bool   `json:"cue_in,omitempty"`
	CueOut                   bool   `json:"cue_out,omitempty"`
	CueOutStart              bool   `json:"cue_out_start,omitempty"`
	CueOutExplicitlyDuration bool   `json:"cue_out_explicitly_duration,omitempty"`
	SCTE35                   string `json:"scte35,omitempty"`
	OatclsSCTE35             string `json:"oatcls_scte35,omitempty"`
	SCTE35Duration           string `json:"scte35_duration,omitempty"`
	SCTE35ElapsedTime        string `json:"scte35_elapsedtime,omitempty"`

	AssetMetadata AttributeList `json:"asset_metadata,omitempty"`

	Key         *Key `json:"key,omitempty"`
	InitSection *Map `json:"init_section,omitempty"`

	DateRanges []*DateRange `json:"dateranges,omitempty"`

	GapTag   bool   `json:"gap_tag,omitempty"`
	Blackout string `json:"blackout,omitempty"`

	Parts []*Part `json:"parts,omitempty"`
}

// BlackoutPresent is stored in Segment.Blackout when an #EXT-X-BLACKOUT
// tag carried no parameters. Consumers treat it as boolean true.
const BlackoutPresent = "__BLACKOUT_TRUE__"

// Variant represents a stream variant declared by #EXT-X-STREAM-INF
// followed by a playlist URI line.
type Variant struct {
	URI string `json:"uri"`

	ProgramID        int     `json:"program_id,omitempty"`
	Bandwidth        int64   `json:"bandwidth,omitempty"`
	AverageBandwidth int64   `json:"average_bandwidth,omitempty"`
	Resolution       string  `json:"resolution,omitempty"`
	Codecs           string  `json:"codecs,omitempty"`
	FrameRate        float64 `json:"frame_rate,omitempty"`
	Video            string  `json:"video,omitempty"`
	Audio            string  `json:"audio,omitempty"`
	Subtitles        string  `json:"subtitles,omitempty"`
	ClosedCaptions   string  `json:"closed_captions,omitempty"`
	VideoRange       string  `json:"video_range,omitempty"`
	HDCPLevel        string  `json:"hdcp_level,omitempty"`
	PathwayID        string  `json:"pathway_id,omitempty"`
	StableVariantID  string  `json:"stable_variant_id,omitempty"`
	ReqVideoLayout   string  `json:"req_video_layout,omitempty"`
}

// IFrameVariant represents an #EXT-X-I-FRAME-STREAM-INF declaration.
// The URI is carried as a tag attribute; no separate URI line follows.
type IFrameVariant struct {
	URI string `json:"uri"`

	ProgramID        int    `json:"program_id,omitempty"`
	Bandwidth        int64  `json:"bandwidth,omitempty"`
	AverageBandwidth int64  `json:"average_bandwidth,omitempty"`
	Resolution       string `json:"resolution,omitempty"`
	Codecs           string `json:"codecs,omitempty"`
	VideoRange       string `json:"video_range,omitempty"`
	HDCPLevel        string `json:"hdcp_level,omitempty"`
	PathwayID        string `json:"pathway_id,omitempty"`
	StableVariantID  string `json:"stable_variant_id,omitempty"`
}

// ImageVariant represents an #EXT-X-IMAGE-STREAM-INF declaration.
type ImageVariant struct {
	URI string `json:"uri"`

	ProgramID        int    `json:"program_id,omitempty"`
	Bandwidth        int64  `json:"bandwidth,omitempty"`
	AverageBandwidth int64  `json:"average_bandwidth,omitempty"`
	Resolution       string `json:"resolution,omitempty"`
	Codecs           string `json:"codecs,omitempty"`
	PathwayID        string `json:"pathway_id,omitempty"`
	StableVariantID  string `json:"stable_variant_id,omitempty"`
}

// Media represents an #EXT-X-MEDIA rendition declaration.
type Media struct {
	Type              string `json:"type,omitempty"`
	URI               string `json:"uri,omitempty"`
	GroupID           string `json:"group_id,omitempty"`
	Language          string `json:"language,omitempty"`
	AssocLanguage     string `json:"assoc_language,omitempty"`
	Name              string `json:"name,omitempty"`
	Default           string `json:"default,omitempty"`
	Autoselect        string `json:"autoselect,omitempty"`
	Forced            string `json:"forced,omitempty"`
	InstreamID        string `json:"instream_id,omitempty"`
	Characteristics   string `json:"characteristics,omitempty"`
	Channels          string `json:"channels,omitempty"`
	StableRenditionID string `json:"stable_rendition_id,omitempty"`
}

// Key represents an encryption key declared by #EXT-X-KEY or
// #EXT-X-SESSION-KEY. All fields are stored with quotes stripped.
type Key struct {
	Method            string `json:"method,omitempty"`
	URI               string `json:"uri,omitempty"`
	IV                string `json:"iv,omitempty"`
	Keyformat         string `json:"keyformat,omitempty"`
	Keyformatversions string `json:"keyformatversions,omitempty"`
}

// Map represents an initialization section declared by #EXT-X-MAP.
type Map struct {
	URI       string `json:"uri,omitempty"`
	ByteRange string `json:"byterange,omitempty"`
}

// DateRange represents an #EXT-X-DATERANGE declaration. XAttrs carries
// every attribute whose normalized key begins with "x_", quotes preserved.
type DateRange struct {
	ID              string        `json:"id,omitempty"`
	Class           string        `json:"class,omitempty"`
	StartDate       string        `json:"start_date,omitempty"`
	EndDate         string        `json:"end_date,omitempty"`
	Duration        float64       `json:"duration,omitempty"`
	PlannedDuration float64       `json:"planned_duration,omitempty"`
	SCTE35Cmd       string        `json:"scte35_cmd,omitempty"`
	SCTE35Out       string        `json:"scte35_out,omitempty"`
	SCTE35In        string        `json:"scte35_in,omitempty"`
	EndOnNext       string        `json:"end_on_next,omitempty"`
	XAttrs          AttributeList `json:"x_attrs,omitempty"`
}

// Part represents a partial segment declared by #EXT-X-PART (LL-HLS).
type Part struct {
	URI         string       `json:"uri,omitempty"`
	Duration    float64      `json:"duration,omitempty"`
	ByteRange   string       `json:"byterange,omitempty"`
	Independent string       `json:"independent,omitempty"`
	Gap         string       `json:"gap,omitempty"`
	GapTag      bool         `json:"gap_tag,omitempty"`
	DateRanges  []*DateRange `json:"dateranges,omitempty"`
}

// RenditionReport represents an #EXT-X-RENDITION-REPORT declaration.
type RenditionReport struct {
	URI         string `json:"uri,omitempty"`
	LastMSN     int64  `json:"last_msn,omitempty"`
	LastPart    int64  `json:"last_part,omitempty"`
	HasLastMSN  bool   `json:"has_last_msn,omitempty"`
	HasLastPart bool   `json:"has_last_part,omitempty"`
}

// SessionData represents an #EXT-X-SESSION-DATA declaration.
type SessionData struct {
	DataID   string `json:"data_id,omitempty"`
	Value    string `json:"value,omitempty"`
	URI      string `json:"uri,omitempty"`
	Language string `json:"language,omitempty"`
}

// Tiles represents an #EXT-X-TILES declaration (trick-play image tiles).
type Tiles struct {
	Resolution string  `json:"resolution,omitempty"`
	Layout     string  `json:"layout,omitempty"`
	Duration   float64 `json:"duration,omitempty"`
	URI        string  `json:"uri,omitempty"`
}

// Start represents an #EXT-X-START declaration.
type Start struct {
	TimeOffset float64 `json:"time_offset"`
	Precise    string  `json:"precise,omitempty"`
}

// ServerControl represents an #EXT-X-SERVER-CONTROL declaration (LL-HLS).
type ServerControl struct {
	CanBlockReload    string  `json:"can_block_reload,omitempty"`
	HoldBack          float64 `json:"hold_back,omitempty"`
	PartHoldBack      float64 `json:"part_hold_back,omitempty"`
	CanSkipUntil      float64 `json:"can_skip_until,omitempty"`
	CanSkipDateranges string  `json:"can_skip_dateranges,omitempty"`
}

// PartInf represents an #EXT-X-PART-INF declaration (LL-HLS).
type PartInf struct {
	PartTarget float64 `json:"part_target"`
}

// Skip represents an #EXT-X-SKIP declaration (LL-HLS delta updates).
type Skip struct {
	SkippedSegments           int    `json:"skipped_segments"`
	RecentlyRemovedDateranges string `json:"recently_removed_dateranges,omitempty"`
}

// PreloadHint represents an #EXT-X-PRELOAD-HINT declaration (LL-HLS).
type PreloadHint struct {
	Type               string `json:"type,omitempty"`
	URI                string `json:"uri,omitempty"`
	ByteRangeStart     int    `json:"byterange_start,omitempty"`
	ByteRangeLength    int    `json:"byterange_length,omitempty"`
	HasByteRangeStart  bool   `json:"has_byterange_start,omitempty"`
	HasByteRangeLength bool   `json:"has_byterange_length,omitempty"`
}

// ContentSteering represents an #EXT-X-CONTENT-STEERING declaration.
type ContentSteering struct {
	ServerURI string `json:"server_uri,omitempty"`
	PathwayID string `json:"pathway_id,omitempty"`
}
