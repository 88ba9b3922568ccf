// Package types defines the value types shared by transactions and blocks.
package types

// Output is a single unspent-transaction-output record: an id paired with
// an amount. Identity is the pair, not just the id — two outputs sharing an
// id but differing in amount are distinct entries in a UTXO set.
//
// Output is a plain comparable struct so it can be used directly as a map
// key wherever a set of outputs is needed, the same way the original
// implementation derives Hash/Eq on the pair for use in a HashSet.
type Output struct {
	ID     uint64 `json:"id"`
	Amount uint64 `json:"amount"`
}

// OutputSet builds a set from a slice of outputs, deduplicating by value.
func OutputSet(outputs []Output) map[Output]struct{} {
	set := make(map[Output]struct{}, len(outputs))
	for _, o := range outputs {
		set[o] = struct{}{}
	}
	return set
}
