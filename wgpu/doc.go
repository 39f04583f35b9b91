// Package wgpu translates stencil state onto the gogpu WebGPU HAL.
//
// The package maps a [stencil.State] and its backend context (texture
// format, front-face winding, depth settings) into the
// [hal.DepthStencilState] a render pipeline descriptor carries. It owns the
// bounds validation the root package defers to the backend boundary:
// Translate refuses configurations whose references or masks do not fit the
// stencil component of the target format, and configurations WebGPU cannot
// express (per-face masks or references that differ between facings).
package wgpu
