// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader transforms positions by uMVP and passes the vertex
// color through.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader writes the interpolated vertex color.
//
//go:embed surface.frag
var SurfaceFragmentShader string
