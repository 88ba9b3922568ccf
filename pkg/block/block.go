// Package block defines the block type, its canonical byte encoding, and
// the validation rule tying a block's declared hash to its contents.
package block

import "github.com/Klingon-tech/klingnet-fork/pkg/tx"

// Block commits to a predecessor, an ordered transaction list, a target
// difficulty, and a nonce, and carries the hash that is supposed to result
// from hashing the canonical encoding of those fields.
//
// Predecessor and Hash are plain strings rather than a fixed-width byte
// type: a genesis block's predecessor is purely informational and need not
// resolve to any real hash (it is commonly the literal "0x0"), so the type
// cannot demand well-formedness the way a real block hash does. Hash
// well-formedness is enforced by Validate, not by the type system.
type Block struct {
	Predecessor  string            `json:"predecessor"`
	Transactions []*tx.Transaction `json:"transactions"`
	Difficulty   uint32            `json:"difficulty"`
	Nonce        uint64            `json:"nonce"`
	Hash         string            `json:"hash"`
}
