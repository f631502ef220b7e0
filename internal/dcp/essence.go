package dcp

// EssenceType identifies the encoded payload carried by an essence file.
type EssenceType int

const (
	EssenceUnknown EssenceType = iota
	EssenceMPEG2
	EssenceJPEG2000
	EssenceJPEG2000Stereo
	EssencePCM48K
	EssencePCM96K
	EssenceTimedText
)

// String returns the essence type's diagnostic name.
func (t EssenceType) String() string {
	switch t {
	case EssenceMPEG2:
		return "mpeg2"
	case EssenceJPEG2000:
		return "jpeg2000"
	case EssenceJPEG2000Stereo:
		return "jpeg2000-stereo"
	case EssencePCM48K:
		return "pcm-24b-48k"
	case EssencePCM96K:
		return "pcm-24b-96k"
	case EssenceTimedText:
		return "timed-text"
	default:
		return "unknown"
	}
}

// TrackClass groups essence types into the reel track slots.
type TrackClass int

const (
	ClassUnknown TrackClass = iota
	ClassPicture
	ClassSound
	ClassTimedText
)

// String returns the track class's diagnostic name.
func (c TrackClass) String() string {
	switch c {
	case ClassPicture:
		return "picture"
	case ClassSound:
		return "sound"
	case ClassTimedText:
		return "subtitle"
	default:
		return "unknown"
	}
}

// Classify maps an essence type to the reel slot it belongs in. The function
// is total: any unrecognized type maps to ClassUnknown, which callers treat
// as an error condition.
func Classify(t EssenceType) TrackClass {
	switch t {
	case EssenceMPEG2, EssenceJPEG2000, EssenceJPEG2000Stereo:
		return ClassPicture
	case EssencePCM48K, EssencePCM96K:
		return ClassSound
	case EssenceTimedText:
		return ClassTimedText
	default:
		return ClassUnknown
	}
}
