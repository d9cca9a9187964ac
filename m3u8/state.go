package m3u8

// parserState is the accumulator threaded through a single parse. It binds
// tags encountered before a URI line to the segment or variant that line
// finalizes.
//
// Two categories of state cross tag boundaries. Sticky references
// (currentKey, currentMap) apply to every subsequent segment until
// overwritten. One-shots (discontinuity, gap, blackout, cue flags, staged
// program-date-time, pending dateranges) attach to the next finalized
// segment and are reset there. The SCTE-35 quartet and pending asset
// metadata are the exception: while a cue-out span is open they are copied
// into each segment, and only the segment that closes the span takes
// ownership.
type parserState struct {
	expectSegment  bool
	expectPlaylist bool

	currentSegment *Segment

	currentKey *Key
	currentMap *Map

	cueOut                   bool
	cueOutStart              bool
	cueOutExplicitlyDuration bool
	cueIn                    bool
	discontinuity            bool
	gap                      bool
	blackout                 string

	scte35         string
	oatclsSCTE35   string
	scte35Duration string
	scte35Elapsed  string

	assetMetadata   AttributeList
	programDateTime string

	dateRanges []*DateRange

	streamInf AttributeList
}

// segment returns the in-progress segment, allocating one on first use.
func (st *parserState) segment() *Segment {
	if st.currentSegment == nil {
		st.currentSegment = &Segment{}
	}
	return st.currentSegment
}
