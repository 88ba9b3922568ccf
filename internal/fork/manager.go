// Package fork implements the fork manager: the component that owns
// every viable fork of the chain, the head set, the main-chain selection,
// and the recent-tip UTXO cache that lets the chain be extended without a
// full replay. This is the hard core the rest of the node is built
// around — the command adapter in internal/repl is a thin translation
// layer over Manager's three operations (Init, Submit, and the read-only
// queries).
package fork

import (
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/Klingon-tech/klingnet-fork/internal/ledger"
	"github.com/Klingon-tech/klingnet-fork/pkg/block"
	"github.com/Klingon-tech/klingnet-fork/pkg/types"
)

// Head identifies one fork by its current tip, carrying the totals needed
// for fork choice. Head is a plain comparable struct, stored directly as
// a set element the way the reference implementation derives Hash/Eq on
// it for a HashSet.
type Head struct {
	Height    uint64 `json:"height"`
	TotalWork uint64 `json:"totalWork"`
	Hash      string `json:"hash"`
}

// State is a snapshot of the currently winning fork.
type State struct {
	Height    uint64         `json:"height"`
	TotalWork uint64         `json:"totalWork"`
	Hash      string         `json:"hash"`
	Outputs   []types.Output `json:"outputs"`
}

// forkEntry is what Manager stores per live fork, keyed by its tip hash.
type forkEntry struct {
	Height    uint64
	CreatedAt int64
	TotalWork uint64
	Chain     *ledger.Chain
}

// recentEntry caches the UTXO snapshot produced by one of the last K
// main-chain tips, independent of whether the fork body that produced it
// is still live in forks.
type recentEntry struct {
	Height     uint64
	CreatedAt  int64
	TotalWork  uint64
	Block      *block.Block
	OutputsSet map[types.Output]struct{}
	Outputs    []types.Output
}

// Manager owns every fork, the head set, and the derived main-chain view.
// All state mutations are guarded by a single mutex — not because the
// REPL ever issues overlapping commands (it doesn't; commands are
// processed strictly serially), but so the core stays safe to embed
// behind a future concurrent adapter without redesign.
type Manager struct {
	mu sync.Mutex

	recentLimit int
	clock       clock.Clock

	forks map[string]*forkEntry
	heads map[Head]struct{}

	blocks    []ledger.Record
	blocksSet map[string]struct{}
	state     State

	recentBlocks map[string]*recentEntry
	recentQueue  []string
}

// NewManager returns an empty fork manager with the given recent-tip
// cache size K and clock source. Production callers pass clock.New();
// tests pass a clock.Mock to make millisecond tie-breaks deterministic.
func NewManager(recentLimit int, clk clock.Clock) *Manager {
	return &Manager{
		recentLimit:  recentLimit,
		clock:        clk,
		forks:        make(map[string]*forkEntry),
		heads:        make(map[Head]struct{}),
		blocksSet:    make(map[string]struct{}),
		recentBlocks: make(map[string]*recentEntry),
	}
}

func (m *Manager) isKnownHash(hash string) bool {
	if _, ok := m.forks[hash]; ok {
		return true
	}
	_, ok := m.blocksSet[hash]
	return ok
}

func (m *Manager) isMainTip(hash string) bool {
	if len(m.blocks) == 0 {
		return false
	}
	return m.blocks[len(m.blocks)-1].Block.Hash == hash
}

func (m *Manager) now() int64 {
	return m.clock.Now().UnixMilli()
}
