// Package filter provides the post-processing shaders applied to a finished
// snapshot, and the shadow blur used while compositing.
//
// Shaders are looked up by Name in a Registry:
//   - halftone: luminance-sized dots on a fixed grid
//   - wave-gradient: sinusoidal row displacement under a hue gradient
//   - disruptor: glitch bands with channel splitting
//
// Every shader is deterministic, reads its input without modifying it and
// returns a new buffer of the same size. Applying an unknown name returns
// the input buffer itself.
package filter
