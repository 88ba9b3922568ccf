// Package ledger implements the fork body: an append-only block sequence
// paired with the UTXO set it produces by replay. This is the
// "Blockchain" of a single fork — the fork manager in internal/fork owns
// many of these, one per tip.
package ledger

import (
	"errors"

	"github.com/Klingon-tech/klingnet-fork/pkg/block"
	"github.com/Klingon-tech/klingnet-fork/pkg/types"
)

// ErrInvalidTransaction is returned by Submit when any transaction in the
// block references an output that isn't currently unspent, double-spends
// an output already consumed earlier in the same block, or fails to
// conserve value.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Record pairs a block with the millisecond timestamp at which it was
// accepted into this fork.
type Record struct {
	Block     *block.Block
	Timestamp int64
}

// Chain is a single fork: an ordered block sequence and the UTXO set that
// results from replaying it. It has no locking of its own — the fork
// manager clones a Chain before mutating it, so a Chain instance is
// always owned by exactly one goroutine at a time.
type Chain struct {
	Blocks     []Record
	BlocksSet  map[string]struct{}
	Outputs    []types.Output
	OutputsSet map[types.Output]struct{}
}

// New returns an empty fork body.
func New() *Chain {
	return &Chain{
		BlocksSet:  make(map[string]struct{}),
		OutputsSet: make(map[types.Output]struct{}),
	}
}

// Init seeds the chain with a genesis block unconditionally: every
// transaction's inputs are removed from the UTXO set and every output is
// added, with no presence or conservation checks (those only apply from
// Submit onward).
func (c *Chain) Init(b *block.Block, timestampMS int64) {
	spent := make(map[types.Output]struct{})
	created := make(map[types.Output]struct{})
	for _, t := range b.Transactions {
		for o := range t.InputSet() {
			spent[o] = struct{}{}
		}
		for o := range t.OutputSet() {
			created[o] = struct{}{}
		}
	}
	c.applyDelta(spent, created)
	c.append(b, timestampMS)
}

// Submit validates every transaction in b against the chain's current
// UTXO set and a running per-block spent set, then — only if every
// transaction passes — applies the block and appends it. On failure the
// chain is left completely unchanged.
func (c *Chain) Submit(b *block.Block, timestampMS int64) error {
	spent := make(map[types.Output]struct{})
	created := make(map[types.Output]struct{})

	for _, t := range b.Transactions {
		inputs := t.InputSet()
		for o := range inputs {
			if _, unspent := c.OutputsSet[o]; !unspent {
				return ErrInvalidTransaction
			}
			if _, alreadySpent := spent[o]; alreadySpent {
				return ErrInvalidTransaction
			}
		}
		if !t.Balanced() {
			return ErrInvalidTransaction
		}
		for o := range inputs {
			spent[o] = struct{}{}
		}
		for o := range t.OutputSet() {
			created[o] = struct{}{}
		}
	}

	c.applyDelta(spent, created)
	c.append(b, timestampMS)
	return nil
}

// Clone returns a deep copy of the chain: independent slices and maps, so
// mutating the clone never affects the original. Block values themselves
// are shared by pointer since a block is never mutated once accepted.
func (c *Chain) Clone() *Chain {
	blocks := make([]Record, len(c.Blocks))
	copy(blocks, c.Blocks)

	blocksSet := make(map[string]struct{}, len(c.BlocksSet))
	for k := range c.BlocksSet {
		blocksSet[k] = struct{}{}
	}

	outputsSet := make(map[types.Output]struct{}, len(c.OutputsSet))
	for o := range c.OutputsSet {
		outputsSet[o] = struct{}{}
	}

	outputs := make([]types.Output, len(c.Outputs))
	copy(outputs, c.Outputs)

	return &Chain{
		Blocks:     blocks,
		BlocksSet:  blocksSet,
		Outputs:    outputs,
		OutputsSet: outputsSet,
	}
}

func (c *Chain) applyDelta(spent, created map[types.Output]struct{}) {
	for o := range spent {
		delete(c.OutputsSet, o)
	}
	for o := range created {
		c.OutputsSet[o] = struct{}{}
	}
	c.Outputs = make([]types.Output, 0, len(c.OutputsSet))
	for o := range c.OutputsSet {
		c.Outputs = append(c.Outputs, o)
	}
}

func (c *Chain) append(b *block.Block, timestampMS int64) {
	c.Blocks = append(c.Blocks, Record{Block: b, Timestamp: timestampMS})
	c.BlocksSet[b.Hash] = struct{}{}
}
