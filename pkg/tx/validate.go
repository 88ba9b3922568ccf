package tx

// Balanced reports whether the transaction's outputs sum to the same
// amount as its inputs. A coinbase (no inputs) is balanced only if its
// outputs also sum to zero — the conservation rule makes no special
// allowance for coinbases, per the reference design.
func (t *Transaction) Balanced() bool {
	return t.OutputValue() == t.InputValue()
}
