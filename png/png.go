// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

// Package png detects PNG images and reports whether they are animated
// (APNG) by validating the order of the animation chunks.
package png

import (
	"bytes"
	"encoding/binary"
)

const (
	// chunkHeaderSize is the length and type fields of a chunk.
	chunkHeaderSize = 8
	// chunkOverhead is header plus the trailing CRC.
	chunkOverhead = chunkHeaderSize + 4
)

// Signature is the 8-byte PNG file signature.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// Chunk types taking part in the APNG ordering rules.
const (
	chunkACTL = "acTL"
	chunkFCTL = "fcTL"
	chunkIDAT = "IDAT"
	chunkFDAT = "fdAT"
)

// IsPNG reports whether b starts with the PNG signature.
func IsPNG(b []byte) bool {
	return len(b) >= len(Signature) && bytes.Equal(b[:len(Signature)], Signature[:])
}

// IsAnimated reports whether b holds an APNG: an acTL chunk, an IDAT
// sequence preceded by fcTL and at least one fdAT sequence preceded by fcTL.
// Any chunk out of that order disqualifies the image, as does a chunk header
// cut short by the end of b. CRCs are not checked.
func IsAnimated(b []byte) bool {
	var (
		hasACTL bool
		hasIDAT bool
		hasFDAT bool
		prev    string
	)

	end := uint64(len(b))
	for offset := uint64(len(Signature)); offset < end; {
		if end-offset < chunkHeaderSize {
			return false
		}

		length := binary.BigEndian.Uint32(b[offset : offset+4])
		typ := string(b[offset+4 : offset+chunkHeaderSize])

		switch typ {
		case chunkACTL:
			hasACTL = true
		case chunkIDAT:
			if !hasACTL {
				return false
			}
			if prev != chunkFCTL && prev != chunkIDAT {
				return false
			}
			hasIDAT = true
		case chunkFDAT:
			if !hasIDAT {
				return false
			}
			if prev != chunkFCTL && prev != chunkFDAT {
				return false
			}
			hasFDAT = true
		}

		prev = typ
		offset += uint64(length) + chunkOverhead
	}

	return hasACTL && hasIDAT && hasFDAT
}
