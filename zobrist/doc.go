// Package zobrist provides incrementally-hashed boards for the search
// family in package solver; see zobrist.go.
package zobrist
