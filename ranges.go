package colormatrix

// RangeProfile holds the 8-bit quantization parameters of a sample range
// convention: the luma offset (footroom), the luma excursion and the chroma
// excursion.
type RangeProfile struct {
	YOffset     int64
	YExcursion  int64
	UVExcursion int64
}

var (
	videoRangeProfile = RangeProfile{YOffset: 16, YExcursion: 219, UVExcursion: 224}
	fullRangeProfile  = RangeProfile{YOffset: 0, YExcursion: 255, UVExcursion: 255}
)

// RangeFor returns the quantization profile for the video (limited) or full
// sample range. This is a closed, two valued choice, profiles are never
// constructed ad hoc.
func RangeFor(videoRange bool) RangeProfile {
	if videoRange {
		return videoRangeProfile
	}
	return fullRangeProfile
}
