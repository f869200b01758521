// Package extractor turns the raw course page text into structured course
// records using the Gemini API.
//
// The model response is the single point where untyped data enters the
// system: it is decoded and validated here, and anything that does not parse
// into the expected record shape is an extraction error. The pipeline treats
// extraction errors as fatal for the run and leaves the persisted state
// untouched.
package extractor
