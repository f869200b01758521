// Package cli implements the molzberg-monitor command: a run-once pipeline
// that fetches the course page, extracts listings with Gemini, diffs them
// against the persisted known-courses state, and emails anything new.
package cli
