// Package turntable exposes module-level metadata.
package turntable

// Version is the semantic version of the turntable module.
const Version = "0.1.0"
