// Package course provides types and functions for tracking swim course offerings.
//
// The course package handles course representation, identification, and new-course
// detection through snapshot-based diffing. Each course is assigned a deterministic
// SHA1-based ID generated from its normalized name and schedule text, enabling
// reliable tracking across runs despite formatting noise on the source page.
package course
