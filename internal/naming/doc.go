// Package naming derives output paths for conversions and resolves the
// collisions that case-insensitive extension matching can produce within
// one batch (e.g. "a.mov" and "a.MOV" both wanting "a.mp4").
package naming
