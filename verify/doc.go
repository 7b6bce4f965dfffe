// Package verify replays a candidate move sequence against a starting
// board and checks legality of every step plus the terminal 1-peg state
// (spec 4.E). See verify.go.
package verify
