package tx

import (
	"testing"

	"github.com/Klingon-tech/klingnet-fork/pkg/types"
)

func TestTransaction_IsCoinbase(t *testing.T) {
	coinbase := &Transaction{Outputs: []types.Output{{ID: 1, Amount: 10}}}
	if !coinbase.IsCoinbase() {
		t.Error("transaction with no inputs should be a coinbase")
	}

	spending := &Transaction{
		Inputs:  []types.Output{{ID: 1, Amount: 10}},
		Outputs: []types.Output{{ID: 2, Amount: 10}},
	}
	if spending.IsCoinbase() {
		t.Error("transaction with inputs should not be a coinbase")
	}
}

func TestTransaction_Values(t *testing.T) {
	txn := &Transaction{
		Inputs:  []types.Output{{ID: 1, Amount: 5}, {ID: 2, Amount: 3}},
		Outputs: []types.Output{{ID: 3, Amount: 4}, {ID: 4, Amount: 4}},
	}

	if got, want := txn.InputValue(), uint64(8); got != want {
		t.Errorf("InputValue() = %d, want %d", got, want)
	}
	if got, want := txn.OutputValue(), uint64(8); got != want {
		t.Errorf("OutputValue() = %d, want %d", got, want)
	}
	if !txn.Balanced() {
		t.Error("transaction should be balanced")
	}
}

func TestTransaction_Unbalanced(t *testing.T) {
	txn := &Transaction{
		Inputs:  []types.Output{{ID: 1, Amount: 5}},
		Outputs: []types.Output{{ID: 2, Amount: 4}},
	}
	if txn.Balanced() {
		t.Error("transaction should not be balanced")
	}
}

func TestTransaction_Sets(t *testing.T) {
	txn := &Transaction{
		Inputs:  []types.Output{{ID: 1, Amount: 5}, {ID: 1, Amount: 5}},
		Outputs: []types.Output{{ID: 2, Amount: 5}},
	}

	in := txn.InputSet()
	if len(in) != 1 {
		t.Errorf("InputSet() dedup failed, got %d entries, want 1", len(in))
	}
	if _, ok := in[types.Output{ID: 1, Amount: 5}]; !ok {
		t.Error("InputSet() missing expected output")
	}

	out := txn.OutputSet()
	if _, ok := out[types.Output{ID: 2, Amount: 5}]; !ok {
		t.Error("OutputSet() missing expected output")
	}
}
