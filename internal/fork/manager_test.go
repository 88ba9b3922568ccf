package fork

import (
	"errors"
	"testing"

	"github.com/benbjohnson/clock"

	"github.com/Klingon-tech/klingnet-fork/internal/ledger"
	"github.com/Klingon-tech/klingnet-fork/pkg/block"
	"github.com/Klingon-tech/klingnet-fork/pkg/tx"
	"github.com/Klingon-tech/klingnet-fork/pkg/types"
)

func newTestManager(t *testing.T, recentLimit int) (*Manager, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	return NewManager(recentLimit, mock), mock
}

func hashed(b *block.Block) *block.Block {
	b.Hash = b.ComputeHash()
	return b
}

func genesisBlock(outputs ...types.Output) *block.Block {
	var txs []*tx.Transaction
	if len(outputs) > 0 {
		txs = []*tx.Transaction{{Outputs: outputs}}
	}
	return hashed(&block.Block{Predecessor: "0x0", Transactions: txs})
}

func TestManager_Init_Duplicate(t *testing.T) {
	m, _ := newTestManager(t, 2)
	g := genesisBlock()

	if err := m.Init(g); err != nil {
		t.Fatalf("Init() = %v, want nil", err)
	}
	if err := m.Init(g); !errors.Is(err, ErrDuplicateHash) {
		t.Errorf("Init() duplicate = %v, want %v", err, ErrDuplicateHash)
	}
}

func TestManager_Submit_BeforeInit(t *testing.T) {
	m, _ := newTestManager(t, 2)
	b := hashed(&block.Block{Predecessor: "0xnope"})
	if err := m.Submit(b); !errors.Is(err, ErrMustInitFirst) {
		t.Errorf("Submit() = %v, want %v", err, ErrMustInitFirst)
	}
}

func TestManager_Submit_UnknownPredecessor(t *testing.T) {
	m, _ := newTestManager(t, 2)
	g := genesisBlock()
	if err := m.Init(g); err != nil {
		t.Fatalf("Init() = %v", err)
	}

	bad := hashed(&block.Block{Predecessor: "0xdoesnotexist"})
	if err := m.Submit(bad); !errors.Is(err, ErrNoPredecessor) {
		t.Errorf("Submit() = %v, want %v", err, ErrNoPredecessor)
	}
}

func TestManager_Submit_ExtendsTip(t *testing.T) {
	m, _ := newTestManager(t, 2)
	g := genesisBlock(types.Output{ID: 1, Amount: 5})
	if err := m.Init(g); err != nil {
		t.Fatalf("Init() = %v", err)
	}

	next := hashed(&block.Block{
		Predecessor: g.Hash,
		Transactions: []*tx.Transaction{
			{Inputs: []types.Output{{ID: 1, Amount: 5}}, Outputs: []types.Output{{ID: 2, Amount: 5}}},
		},
	})
	if err := m.Submit(next); err != nil {
		t.Fatalf("Submit() = %v, want nil", err)
	}

	state, err := m.State()
	if err != nil {
		t.Fatalf("State() = %v", err)
	}
	if state.Height != 2 {
		t.Errorf("Height = %d, want 2", state.Height)
	}
	if state.Hash != next.Hash {
		t.Errorf("Hash = %s, want %s", state.Hash, next.Hash)
	}
}

func TestManager_Submit_DifficultyMustNotDecrease(t *testing.T) {
	m, _ := newTestManager(t, 2)
	g := hashed(&block.Block{Predecessor: "0x0", Difficulty: 1})
	if err := m.Init(g); err != nil {
		t.Fatalf("Init() = %v", err)
	}

	lower := mineDifficulty(t, g.Hash, 0)
	if err := m.Submit(lower); !errors.Is(err, ErrDifficultyDecreased) {
		t.Errorf("Submit() = %v, want %v", err, ErrDifficultyDecreased)
	}
}

func TestManager_Submit_InvalidTransaction(t *testing.T) {
	m, _ := newTestManager(t, 2)
	g := genesisBlock(types.Output{ID: 1, Amount: 5})
	if err := m.Init(g); err != nil {
		t.Fatalf("Init() = %v", err)
	}

	bad := hashed(&block.Block{
		Predecessor: g.Hash,
		Transactions: []*tx.Transaction{
			{Inputs: []types.Output{{ID: 99, Amount: 5}}, Outputs: []types.Output{{ID: 2, Amount: 5}}},
		},
	})
	if err := m.Submit(bad); !errors.Is(err, ledger.ErrInvalidTransaction) {
		t.Errorf("Submit() = %v, want %v", err, ledger.ErrInvalidTransaction)
	}

	state, _ := m.State()
	if state.Height != 1 {
		t.Errorf("failed Submit must not change state, height = %d", state.Height)
	}
}

// mineDifficulty builds a block at the given difficulty with nonce 0 and
// fails the test if its hash lacks the required leading zero digits. It
// does not search for a nonce, so only difficulty 0 is sure to succeed,
// which is all these tests require.
func mineDifficulty(t *testing.T, predecessor string, difficulty uint32) *block.Block {
	t.Helper()
	b := &block.Block{Predecessor: predecessor, Difficulty: difficulty}
	b.Hash = b.ComputeHash()
	if !block.HasLeadingZeroes(b.Hash, difficulty) {
		t.Fatalf("mineDifficulty: hash %s does not satisfy difficulty %d", b.Hash, difficulty)
	}
	return b
}
