// Package codegen turns animation configurations into GSAP script text and
// into the JSON export document.
//
// Render and RenderAll are pure: the same configuration value always yields
// the same bytes, and nothing is cached or read from the environment.
package codegen
