// Package fetcher retrieves the Molzberg course page over HTTP and reduces
// the returned HTML to its visible text so the extraction prompt stays small.
package fetcher
