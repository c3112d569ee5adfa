// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

package animated

import "errors"

var (
	// ErrOpenFile indicates the input file could not be opened.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadInput indicates reading the input failed.
	ErrReadInput = errors.New("read input failed")
	// ErrInputTooLarge indicates the input exceeds the configured size limit.
	ErrInputTooLarge = errors.New("input too large")
	// ErrLZ4Decode indicates decoding an LZ4 framed input failed.
	ErrLZ4Decode = errors.New("LZ4 decode failed")
)
