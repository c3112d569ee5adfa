// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

// Package gif detects GIF images and reports whether they are animated by
// walking the block stream without decoding any frame.
package gif

const (
	// headerSize is the "GIF87a"/"GIF89a" signature and version.
	headerSize = 6
	// screenDescriptorSize is the logical screen descriptor length.
	screenDescriptorSize = 7
	// imageDescriptorSize is the image descriptor length including the separator.
	imageDescriptorSize = 10

	// packedFieldsOffset is the screen descriptor packed byte (header + 4).
	packedFieldsOffset = 10

	imageSeparator       = 0x2C
	extensionIntroducer  = 0x21
	trailer              = 0x3B
	colorTableFlag       = 0x80
	colorTableSizeMask   = 0x07
	animatedImageMinimum = 2
)

// IsGIF reports whether b starts with the "GIF" signature.
// The version bytes are not checked.
func IsGIF(b []byte) bool {
	return len(b) >= 3 && string(b[:3]) == "GIF"
}

// IsAnimated reports whether b holds a GIF with two or more image
// descriptors. Frame delays and disposal methods are ignored, the same way
// browsers animate any GIF with more than one image.
func IsAnimated(b []byte) bool {
	if !IsGIF(b) || len(b) < packedFieldsOffset+1 {
		return false
	}

	offset := headerSize + screenDescriptorSize + colorTableLength(b[packedFieldsOffset])

	images := 0
	for images < animatedImageMinimum && offset < len(b) {
		switch b[offset] {
		case imageSeparator:
			images++

			// packed fields of the image descriptor live in its last byte
			if offset+imageDescriptorSize-1 >= len(b) {
				return false
			}

			local := colorTableLength(b[offset+imageDescriptorSize-1])
			offset += imageDescriptorSize + local
			// LZW minimum code size, then the image data sub-blocks
			offset += dataBlocksLength(b, offset+1) + 1
		case extensionIntroducer:
			offset += 2
			offset += dataBlocksLength(b, offset)
		case trailer:
			// decoders ignore anything after the trailer
			return false
		default:
			// invalid block
			return false
		}
	}

	return images >= animatedImageMinimum
}

// colorTableLength returns the size in bytes of the color table described by
// a packed fields byte, or 0 when the table flag is not set.
func colorTableLength(packed byte) int {
	if packed&colorTableFlag == 0 {
		return 0
	}

	return 3 << ((packed & colorTableSizeMask) + 1)
}
