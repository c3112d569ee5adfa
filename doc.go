// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/animated

/*
Package animated reports whether GIF, PNG (APNG) and WebP images are
animated, from the raw file bytes and without decoding any pixel data.

Formats are tried in a fixed order (GIF, PNG, WebP) by signature. The
matching format's container metadata is then walked: GIF block stream image
descriptors, the APNG acTL/fcTL/IDAT/fdAT chunk order, or the WebP ANIM tag.
Malformed or truncated input is reported as not animated, never as an error
or a panic.

The per-format analyzers live in the gif, png and webp subpackages. Reader and
file helpers load the input into memory first, optionally unwrapping an LZ4
frame.
*/
package animated
