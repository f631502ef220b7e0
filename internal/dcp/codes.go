package dcp

import "errors"

// Code is the numeric result taxonomy shared with external consumers.
type Code int

const (
	CodeNoError Code = iota
	CodeGeneric
	CodeFileOpen
	CodeInvalidTrackType
	CodeNoPictureTrack
	CodeMultiplePictureTrack
	CodeSpecificationMismatch
	CodeCapacityExceeded
)

// String returns the code's diagnostic name.
func (c Code) String() string {
	switch c {
	case CodeNoError:
		return "no_error"
	case CodeGeneric:
		return "generic"
	case CodeFileOpen:
		return "file_open"
	case CodeInvalidTrackType:
		return "invalid_track_type"
	case CodeNoPictureTrack:
		return "no_picture_track"
	case CodeMultiplePictureTrack:
		return "multiple_picture_track"
	case CodeSpecificationMismatch:
		return "specification_mismatch"
	case CodeCapacityExceeded:
		return "capacity_exceeded"
	default:
		return "unknown"
	}
}

// Sentinel errors for the assembly pipeline. Fallible operations wrap these
// with call-site detail, so callers match with errors.Is and recover the
// numeric code with ErrorCode.
var (
	ErrGeneric               = errors.New("package assembly failed")
	ErrFileOpen              = errors.New("cannot open file")
	ErrInvalidTrackType      = errors.New("not a recognized essence file")
	ErrNoPictureTrack        = errors.New("reel has no picture track")
	ErrMultiplePictureTrack  = errors.New("reel has multiple picture tracks")
	ErrSpecificationMismatch = errors.New("standard mismatch in assets, all assets must be MXF Interop or SMPTE")
	ErrCapacityExceeded      = errors.New("aggregation capacity exceeded")
)

// ErrorCode maps an error returned by this package to its taxonomy code.
// A nil error maps to CodeNoError; unrecognized errors map to CodeGeneric.
func ErrorCode(err error) Code {
	switch {
	case err == nil:
		return CodeNoError
	case errors.Is(err, ErrFileOpen):
		return CodeFileOpen
	case errors.Is(err, ErrInvalidTrackType):
		return CodeInvalidTrackType
	case errors.Is(err, ErrNoPictureTrack):
		return CodeNoPictureTrack
	case errors.Is(err, ErrMultiplePictureTrack):
		return CodeMultiplePictureTrack
	case errors.Is(err, ErrSpecificationMismatch):
		return CodeSpecificationMismatch
	case errors.Is(err, ErrCapacityExceeded):
		return CodeCapacityExceeded
	default:
		return CodeGeneric
	}
}
