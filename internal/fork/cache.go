package fork

import (
	"github.com/Klingon-tech/klingnet-fork/internal/ledger"
	"github.com/Klingon-tech/klingnet-fork/pkg/block"
	"github.com/Klingon-tech/klingnet-fork/pkg/types"
)

// cacheRecentTip records b's UTXO snapshot under its hash and pushes the
// hash onto the eviction FIFO, evicting the oldest entry first if the
// cache is already at capacity. Called only when b just became the
// main-chain tip.
func (m *Manager) cacheRecentTip(hash string, height uint64, createdAt int64, totalWork uint64, b *block.Block, chain *ledger.Chain) {
	if len(m.recentQueue) == m.recentLimit {
		oldest := m.recentQueue[0]
		m.recentQueue = m.recentQueue[1:]
		delete(m.recentBlocks, oldest)
	}

	outputsSet := make(map[types.Output]struct{}, len(chain.OutputsSet))
	for o := range chain.OutputsSet {
		outputsSet[o] = struct{}{}
	}
	outputs := make([]types.Output, len(chain.Outputs))
	copy(outputs, chain.Outputs)

	m.recentBlocks[hash] = &recentEntry{
		Height:     height,
		CreatedAt:  createdAt,
		TotalWork:  totalWork,
		Block:      b,
		OutputsSet: outputsSet,
		Outputs:    outputs,
	}
	m.recentQueue = append(m.recentQueue, hash)
}

// reconstructFromRecent rebuilds a fork body rooted at a predecessor that
// is still within the recent-tip cache: its blocks are the main chain's
// prefix up to and including the predecessor's height, its UTXO state is
// the cached snapshot at that block, and its blocks_set is the main
// chain's hash set with every recent-tip hash above the predecessor's
// height removed (those blocks exist only on the branch of the main
// chain this new fork is about to diverge from).
func (m *Manager) reconstructFromRecent(predecessor *recentEntry) *ledger.Chain {
	var blocks []ledger.Record
	if uint64(len(m.blocks)) >= predecessor.Height {
		blocks = append(blocks, m.blocks[:predecessor.Height]...)
	} else {
		blocks = append(blocks, m.blocks...)
	}

	blocksSet := make(map[string]struct{}, len(m.blocksSet))
	for h := range m.blocksSet {
		blocksSet[h] = struct{}{}
	}
	for hash, entry := range m.recentBlocks {
		if entry.Height > predecessor.Height {
			delete(blocksSet, hash)
		}
	}

	outputsSet := make(map[types.Output]struct{}, len(predecessor.OutputsSet))
	for o := range predecessor.OutputsSet {
		outputsSet[o] = struct{}{}
	}
	outputs := make([]types.Output, len(predecessor.Outputs))
	copy(outputs, predecessor.Outputs)

	return &ledger.Chain{
		Blocks:     blocks,
		BlocksSet:  blocksSet,
		Outputs:    outputs,
		OutputsSet: outputsSet,
	}
}

// replayToBlock rebuilds a fork body by walking the main chain from
// genesis, replaying every block's transactions, and stopping immediately
// after the block matching hash. Used when a submit's predecessor is
// older than the recent-tip cache's window.
func (m *Manager) replayToBlock(hash string) (*ledger.Chain, uint64, uint64) {
	chain := ledger.New()
	var totalWork uint64
	var height uint64

	for _, rec := range m.blocks {
		chain.Init(rec.Block, rec.Timestamp)
		totalWork = saturatingAdd(totalWork, workFor(rec.Block.Difficulty))
		height++
		if rec.Block.Hash == hash {
			break
		}
	}

	return chain, totalWork, height
}
