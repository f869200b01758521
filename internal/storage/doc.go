// Package storage persists the known-courses snapshot as a JSON file.
package storage
