// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

// Package webp detects WebP images and reports whether they are animated.
package webp

import "bytes"

// formOffset is the position of the RIFF form type, after "RIFF" and the
// 4-byte file size.
const formOffset = 8

var (
	formType = []byte("WEBP")
	animTag  = []byte("ANIM")
)

// IsWebP reports whether b carries the "WEBP" RIFF form type.
// The "RIFF" tag and file size are not checked.
func IsWebP(b []byte) bool {
	return len(b) >= formOffset+len(formType) &&
		bytes.Equal(b[formOffset:formOffset+len(formType)], formType)
}

// IsAnimated reports whether "ANIM" occurs anywhere in b.
//
// The search is not chunk-aware: the same four bytes inside unrelated chunk
// payload also count.
func IsAnimated(b []byte) bool {
	return bytes.Contains(b, animTag)
}
