// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

package animated

import (
	"github.com/woozymasta/animated/gif"
	"github.com/woozymasta/animated/png"
	"github.com/woozymasta/animated/webp"
)

// Format identifies an image container format.
type Format int

const (
	// FormatUnknown is returned when no supported signature matches.
	FormatUnknown Format = iota
	// FormatGIF is GIF87a/GIF89a.
	FormatGIF
	// FormatPNG is PNG, including APNG.
	FormatPNG
	// FormatWebP is WebP in a RIFF container.
	FormatWebP
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// detector pairs a signature test with the animation check of one format.
type detector struct {
	format   Format
	match    func([]byte) bool
	animated func([]byte) bool
}

// detectors are tried in order, first match wins.
var detectors = [...]detector{
	{format: FormatGIF, match: gif.IsGIF, animated: gif.IsAnimated},
	{format: FormatPNG, match: png.IsPNG, animated: png.IsAnimated},
	{format: FormatWebP, match: webp.IsWebP, animated: webp.IsAnimated},
}

// detect returns the first detector whose signature matches b.
func detect(b []byte) (detector, bool) {
	for _, d := range detectors {
		if d.match(b) {
			return d, true
		}
	}

	return detector{}, false
}

// Detect returns the format of b by signature, or FormatUnknown.
func Detect(b []byte) Format {
	d, ok := detect(b)
	if !ok {
		return FormatUnknown
	}

	return d.format
}

// IsAnimated reports whether b is an animated GIF, PNG or WebP image.
// Unknown formats and malformed input report false.
func IsAnimated(b []byte) bool {
	d, ok := detect(b)
	if !ok {
		return false
	}

	return d.animated(b)
}
