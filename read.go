// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

package animated

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pierrec/lz4/v4"
)

// DefaultMaxSize is the input size limit used when ReadOptions.MaxSize is unset.
const DefaultMaxSize = 64 << 20

// lz4FrameMagic is the little-endian LZ4 frame magic number 0x184D2204.
var lz4FrameMagic = []byte{0x04, 0x22, 0x4D, 0x18}

// ReadOptions configures loading input from a reader or file.
type ReadOptions struct {
	// MaxSize limits the number of bytes loaded, counted after LZ4 decoding.
	// Zero or negative uses DefaultMaxSize.
	MaxSize int64
	// LZ4 unwraps input that starts with an LZ4 frame header.
	// Input without the frame magic is read as is.
	LZ4 bool
}

// IsAnimatedReader reads r to the end and reports whether it holds an
// animated image.
func IsAnimatedReader(r io.Reader) (bool, error) {
	return IsAnimatedReaderWithOptions(r, nil)
}

// IsAnimatedReaderWithOptions is IsAnimatedReader with the given options.
// Nil opts uses defaults.
func IsAnimatedReaderWithOptions(r io.Reader, opts *ReadOptions) (bool, error) {
	data, err := readInput(r, opts)
	if err != nil {
		return false, err
	}

	return IsAnimated(data), nil
}

// DetectReader reads r to the end and returns its image format.
func DetectReader(r io.Reader) (Format, error) {
	return DetectReaderWithOptions(r, nil)
}

// DetectReaderWithOptions is DetectReader with the given options.
// Nil opts uses defaults.
func DetectReaderWithOptions(r io.Reader, opts *ReadOptions) (Format, error) {
	data, err := readInput(r, opts)
	if err != nil {
		return FormatUnknown, err
	}

	return Detect(data), nil
}

// IsAnimatedFile reports whether the file at path holds an animated image.
func IsAnimatedFile(path string) (bool, error) {
	return IsAnimatedFileWithOptions(path, nil)
}

// IsAnimatedFileWithOptions is IsAnimatedFile with the given options.
// Nil opts uses defaults.
func IsAnimatedFileWithOptions(path string, opts *ReadOptions) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return IsAnimatedReaderWithOptions(f, opts)
}

// readInput loads the whole input into memory, unwrapping an LZ4 frame
// when enabled and enforcing the size limit.
func readInput(r io.Reader, opts *ReadOptions) ([]byte, error) {
	maxSize := int64(DefaultMaxSize)
	decodeLZ4 := false
	if opts != nil {
		if opts.MaxSize > 0 {
			maxSize = opts.MaxSize
		}
		decodeLZ4 = opts.LZ4
	}

	errRead := ErrReadInput
	if decodeLZ4 {
		br := bufio.NewReader(r)
		magic, err := br.Peek(len(lz4FrameMagic))
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}

		r = br
		if bytes.Equal(magic, lz4FrameMagic) {
			r = lz4.NewReader(br)
			errRead = ErrLZ4Decode
		}
	}

	// one extra byte tells an input of exactly maxSize from a larger one
	limit := maxSize
	if limit < math.MaxInt64 {
		limit++
	}

	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errRead, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, maxSize)
	}

	return data, nil
}
