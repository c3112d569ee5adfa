// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

package gif

// dataBlocksLength returns the number of bytes taken by the sub-block stream
// starting at start, including the zero-length terminator. Every sub-block is
// one length byte followed by that many data bytes. A stream cut short by the
// end of b is treated as terminated there.
func dataBlocksLength(b []byte, start int) int {
	length := 0
	for start+length < len(b) && b[start+length] != 0 {
		length += int(b[start+length]) + 1
	}

	return length + 1
}
