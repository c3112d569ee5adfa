package animated

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// gifFile builds a GIF89a with the given number of minimal frames.
func gifFile(frames int) []byte {
	b := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
	for i := 0; i < frames; i++ {
		// descriptor, LZW minimum code size, empty data stream
		b = append(b, 0x2C, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0x02, 0x00)
	}

	return append(b, 0x3B)
}

// pngFile builds a PNG signature followed by the given chunk types.
func pngFile(types ...string) []byte {
	b := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	for _, typ := range types {
		start := len(b)
		b = binary.BigEndian.AppendUint32(b, 2)
		b = append(b, typ...)
		b = append(b, 0xAB, 0xCD)
		b = binary.BigEndian.AppendUint32(b, crc32.ChecksumIEEE(b[start+4:]))
	}

	return b
}

// apngFile builds a minimal two-frame APNG.
func apngFile() []byte {
	return pngFile("IHDR", "acTL", "fcTL", "IDAT", "fcTL", "fdAT", "IEND")
}

// webpFile builds a RIFF WEBP container from raw chunk bytes.
func webpFile(body ...[]byte) []byte {
	payload := bytes.Join(body, nil)
	b := append([]byte("RIFF"), binary.LittleEndian.AppendUint32(nil, uint32(len(payload)+4))...)
	b = append(b, "WEBP"...)
	return append(b, payload...)
}
