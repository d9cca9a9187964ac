package m3u8

// Sample M3U8 content shared across test files
var (
	TestMediaPlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:0
#EXTINF:9.009,
segment0.ts
#EXTINF:9.009,
segment1.ts
#EXTINF:9.009,
segment2.ts
#EXT-X-ENDLIST`

	TestMasterPlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-STREAM-INF:BANDWIDTH=1280000,CODECS="avc1.42e00a,mp4a.40.2",RESOLUTION=852x480
480p.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2560000,CODECS="avc1.42e00a,mp4a.40.2",RESOLUTION=1280x720
720p.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=5000000,CODECS="avc1.42e00a,mp4a.40.2",RESOLUTION=1920x1080
1080p.m3u8`

	TestLivePlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:123456
#EXTINF:10.0,
segment123456.ts
#EXTINF:10.0,
segment123457.ts
#EXTINF:10.0,
segment123458.ts`

	TestEncryptedPlaylist = `#EXTM3U
#EXT-X-VERSION:5
#EXT-X-TARGETDURATION:6
#EXT-X-KEY:METHOD=AES-128,URI="https://keys.example.com/k1",IV=0x9c7db8778570d05c3177c349fd9236aa
#EXTINF:6.0,
enc0.ts
#EXTINF:6.0,
enc1.ts
#EXT-X-KEY:METHOD=NONE
#EXTINF:6.0,
clear0.ts
#EXT-X-ENDLIST`

	TestAdBreakPlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:10
#EXTINF:10.0,
content0.ts
#EXT-X-CUE-OUT:DURATION=30,CUE="/DA0AAAAAAAA"
#EXTINF:10.0,
ad0.ts
#EXT-X-CUE-OUT-CONT:10/30,SCTE35="/DA0AAAAAAAA"
#EXTINF:10.0,
ad1.ts
#EXT-X-CUE-OUT-CONT:20/30,SCTE35="/DA0AAAAAAAA"
#EXTINF:10.0,
ad2.ts
#EXT-X-CUE-IN
#EXTINF:10.0,
content1.ts
#EXT-X-ENDLIST`

	TestLowLatencyPlaylist = `#EXTM3U
#EXT-X-VERSION:9
#EXT-X-TARGETDURATION:4
#EXT-X-SERVER-CONTROL:CAN-BLOCK-RELOAD=YES,PART-HOLD-BACK=1.0,CAN-SKIP-UNTIL=24.0
#EXT-X-PART-INF:PART-TARGET=0.5
#EXT-X-MAP:URI="init.mp4"
#EXTINF:4.0,
fs0.mp4
#EXT-X-PART:DURATION=0.5,URI="fs1.part0.mp4",INDEPENDENT=YES
#EXT-X-PART:DURATION=0.5,URI="fs1.part1.mp4"
#EXTINF:1.0,
fs1.mp4
#EXT-X-PRELOAD-HINT:TYPE=PART,URI="fs2.part0.mp4"
#EXT-X-RENDITION-REPORT:URI="low.m3u8",LAST-MSN=432,LAST-PART=1`

	TestFullMasterPlaylist = `#EXTM3U
#EXT-X-VERSION:7
#EXT-X-INDEPENDENT-SEGMENTS
#EXT-X-CONTENT-STEERING:SERVER-URI="https://steering.example.com/manifest",PATHWAY-ID="CDN-A"
#EXT-X-SESSION-DATA:DATA-ID="com.example.title",VALUE="Example Stream",LANGUAGE="en"
#EXT-X-SESSION-KEY:METHOD=SAMPLE-AES,URI="skd://key42"
#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aud",NAME="English",LANGUAGE="en",DEFAULT=YES,AUTOSELECT=YES,URI="audio/en.m3u8",CHANNELS="2"
#EXT-X-MEDIA:TYPE=SUBTITLES,GROUP-ID="subs",NAME="Deutsch",LANGUAGE="de",FORCED=NO,URI="subs/de.m3u8"
#EXT-X-STREAM-INF:BANDWIDTH=5000000,AVERAGE-BANDWIDTH=4500000,RESOLUTION=1920x1080,CODECS="avc1.4d401f,mp4a.40.2",FRAME-RATE=29.97,AUDIO="aud",SUBTITLES="subs",VIDEO-RANGE=SDR,PATHWAY-ID="CDN-A"
hi/index.m3u8
#EXT-X-I-FRAME-STREAM-INF:BANDWIDTH=180000,URI="iframe/index.m3u8",CODECS="avc1.4d401f",RESOLUTION=1920x1080
#EXT-X-IMAGE-STREAM-INF:BANDWIDTH=40000,URI="images/index.m3u8",RESOLUTION=320x180,CODECS="jpeg"
#EXT-X-TILES:RESOLUTION=320x180,LAYOUT=5x4,DURATION=6.006,URI="tiles/index.m3u8"`
)
