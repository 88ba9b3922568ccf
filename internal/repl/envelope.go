// Package repl translates line-based JSON command envelopes into calls on
// a fork manager and renders its responses back into envelope JSON. The
// adapter is stateless; all state lives in the fork.Manager it wraps.
package repl

import "github.com/Klingon-tech/klingnet-fork/pkg/block"

// envelope is the raw shape of one command line. Exactly one field should
// be set; if more than one is, init wins, then query, then block, mirroring
// the reference dispatch order. An envelope with none set, or one that
// fails to parse at all, is silently ignored — per the external interface
// contract, malformed or unrecognized input is not an error.
type envelope struct {
	Init  *block.Block `json:"init"`
	Query *string      `json:"query"`
	Block *block.Block `json:"block"`
}
