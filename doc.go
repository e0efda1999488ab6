// Package smolscale implements fast, high-quality 2D image resampling.
//
// It operates on raw pixel buffers in any of ten packed pixel formats
// (straight-alpha and premultiplied-alpha RGBA permutations, plus 24bpp
// RGB/BGR) and produces a scaled buffer in a possibly different format.
// Scaling happens in two independent passes -- horizontal then vertical --
// each choosing among a box filter, a bilinear filter followed by zero or
// more 2:1 halvings, or a degenerate copy/broadcast, depending on how much
// the axis shrinks or grows.
//
// The simplest entry point is Scale, which resizes an entire image in one
// call. New and NewFull build a reusable Context for producing output rows
// incrementally via Batch, which is the entry point multiple goroutines
// can call concurrently against row-disjoint ranges of the same Context.
// NewFullSubpixel additionally accepts a source rectangle specified in
// 1/256th-of-a-pixel units, for sampling a sub-region that doesn't land on
// whole-pixel boundaries, and per-edge opacity multipliers for feathering
// the first/last output row or column.
package smolscale
