package fork

import (
	"github.com/Klingon-tech/klingnet-fork/internal/ledger"
	"github.com/Klingon-tech/klingnet-fork/pkg/block"
)

// Init seeds a new root fork from a validated genesis block. Multiple
// roots may coexist: Init never requires the manager to be empty, so
// distinct genesis blocks simply start their own independent fork
// families.
func (m *Manager) Init(b *block.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isKnownHash(b.Hash) {
		return ErrDuplicateHash
	}

	ts := m.now()
	chain := ledger.New()
	chain.Init(b, ts)

	totalWork := workFor(b.Difficulty)
	m.forks[b.Hash] = &forkEntry{Height: 1, CreatedAt: ts, TotalWork: totalWork, Chain: chain}
	m.heads[Head{Height: 1, TotalWork: totalWork, Hash: b.Hash}] = struct{}{}

	m.recomputeMainChain()
	if m.isMainTip(b.Hash) {
		m.cacheRecentTip(b.Hash, 1, ts, totalWork, b, chain)
	}

	return nil
}
