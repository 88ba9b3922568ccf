// Package tx defines the transaction model: ordered inputs and outputs of
// (id, amount) pairs, plus the conservation and set-view helpers the fork
// body relies on.
package tx

import "github.com/Klingon-tech/klingnet-fork/pkg/types"

// Transaction is an ordered sequence of inputs and outputs. A transaction
// with zero inputs is a coinbase.
type Transaction struct {
	Inputs  []types.Output `json:"inputs"`
	Outputs []types.Output `json:"outputs"`
}

// IsCoinbase reports whether the transaction has no inputs.
func (t *Transaction) IsCoinbase() bool {
	return len(t.Inputs) == 0
}

// InputValue returns the sum of all input amounts.
func (t *Transaction) InputValue() uint64 {
	var total uint64
	for _, in := range t.Inputs {
		total += in.Amount
	}
	return total
}

// OutputValue returns the sum of all output amounts.
func (t *Transaction) OutputValue() uint64 {
	var total uint64
	for _, out := range t.Outputs {
		total += out.Amount
	}
	return total
}

// InputSet returns the transaction's inputs as a set, deduplicating any
// input listed more than once.
func (t *Transaction) InputSet() map[types.Output]struct{} {
	return types.OutputSet(t.Inputs)
}

// OutputSet returns the transaction's outputs as a set, deduplicating any
// output listed more than once.
func (t *Transaction) OutputSet() map[types.Output]struct{} {
	return types.OutputSet(t.Outputs)
}
