package dcp

import (
	"fmt"
	"strings"
)

// Standard identifies the specification dialect governing a package: the
// legacy MXF Interop labels or the standardized SMPTE ones. The dialect
// selects schema namespaces and the signature algorithm.
type Standard int

const (
	StandardNone Standard = iota
	StandardInterop
	StandardSMPTE
)

// String returns the standard's config/diagnostic name.
func (s Standard) String() string {
	switch s {
	case StandardInterop:
		return "interop"
	case StandardSMPTE:
		return "smpte"
	default:
		return "none"
	}
}

// ParseStandard converts a config value into a Standard.
func ParseStandard(value string) (Standard, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "interop", "mxf-interop":
		return StandardInterop, nil
	case "smpte":
		return StandardSMPTE, nil
	case "", "none":
		return StandardNone, nil
	default:
		return StandardNone, fmt.Errorf("unknown standard %q (use interop or smpte)", value)
	}
}

// XMLHeader is the prolog emitted ahead of every generated manifest document.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

// Digital-signature constants shared by both dialects.
const (
	SignatureNamespace     = "http://www.w3.org/2000/09/xmldsig#"
	CanonicalizationMethod = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	DigestMethod           = "http://www.w3.org/2000/09/xmldsig#sha1"
	EnvelopedTransform     = "http://www.w3.org/2000/09/xmldsig#enveloped-signature"
)

var cplNamespaces = [...]string{
	"none",
	"http://www.digicine.com/PROTO-ASDCP-CPL-20040511#",
	"http://www.smpte-ra.org/schemas/429-7/2006/CPL",
}

var stereoCPLNamespaces = [...]string{
	"none",
	"http://www.digicine.com/schemas/437-Y/2007/Main-Stereo-Picture-CPL",
	"http://www.smpte-ra.org/schemas/429-10/2008/Main-Stereo-Picture-CPL",
}

var pklNamespaces = [...]string{
	"none",
	"http://www.digicine.com/PROTO-ASDCP-PKL-20040311#",
	"http://www.smpte-ra.org/schemas/429-8/2007/PKL",
}

var assetMapNamespaces = [...]string{
	"none",
	"http://www.digicine.com/PROTO-ASDCP-AM-20040311#",
	"http://www.smpte-ra.org/schemas/429-9/2007/AM",
}

var signatureMethods = [...]string{
	"none",
	"http://www.w3.org/2000/09/xmldsig#rsa-sha1",
	"http://www.w3.org/2001/04/xmldsig-more#rsa-sha256",
}

func tableLookup(table []string, s Standard) string {
	if s < StandardNone || int(s) >= len(table) {
		return table[StandardNone]
	}
	return table[s]
}

// CPLNamespace returns the schema URI for a 2D content playlist.
func (s Standard) CPLNamespace() string { return tableLookup(cplNamespaces[:], s) }

// StereoCPLNamespace returns the schema URI for a stereoscopic playlist.
func (s Standard) StereoCPLNamespace() string { return tableLookup(stereoCPLNamespaces[:], s) }

// PKLNamespace returns the schema URI for a packing list.
func (s Standard) PKLNamespace() string { return tableLookup(pklNamespaces[:], s) }

// AssetMapNamespace returns the schema URI for an asset map.
func (s Standard) AssetMapNamespace() string { return tableLookup(assetMapNamespaces[:], s) }

// SignatureMethod returns the XML signature algorithm URI for the dialect:
// RSA-SHA1 for Interop, RSA-SHA256 for SMPTE.
func (s Standard) SignatureMethod() string { return tableLookup(signatureMethods[:], s) }

// RatingAgency enumerates the rating authorities a playlist may reference.
type RatingAgency int

const (
	RatingAgencyNone RatingAgency = iota
	RatingAgencyMPAA
	RatingAgencyRCQ
)

var ratingAgencyURIs = [...]string{
	"none",
	"http://www.mpaa.org/2003-ratings",
	"http://rcq.qc.ca/2003-ratings",
}

// URI returns the agency's rating-system URI.
func (a RatingAgency) URI() string {
	if a < RatingAgencyNone || int(a) >= len(ratingAgencyURIs) {
		return ratingAgencyURIs[RatingAgencyNone]
	}
	return ratingAgencyURIs[a]
}
