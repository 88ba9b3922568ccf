package fork

import (
	"github.com/Klingon-tech/klingnet-fork/internal/ledger"
	"github.com/Klingon-tech/klingnet-fork/pkg/block"
)

// Submit validates and applies a successor block against its declared
// predecessor, which need not be the current main-chain tip. Checks run
// in the order spec'd so the first failure is the one reported:
//
//  1. the network must already have at least one fork.
//  2. the block's own hash must carry the leading-zero run its declared
//     difficulty promises (redundant with block.Validate, kept here so a
//     caller that bypassed Validate can't corrupt state).
//  3. the predecessor must be a known fork tip or a main-chain block.
//  4. the block's own hash must not already be known.
//
// All candidate mutation happens on a local clone of the resolved fork
// body; nothing is written back to the manager until ledger.Chain.Submit
// itself succeeds, so a late failure (e.g. an unbalanced transaction)
// never corrupts forks.
func (m *Manager) Submit(b *block.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.heads) == 0 {
		return ErrMustInitFirst
	}
	if !block.HasLeadingZeroes(b.Hash, b.Difficulty) {
		return block.ErrDifficultyMismatch
	}

	predEntry, predIsTip := m.forks[b.Predecessor]
	if !predIsTip {
		if _, onMainChain := m.blocksSet[b.Predecessor]; !onMainChain {
			return ErrNoPredecessor
		}
	}
	if m.isKnownHash(b.Hash) {
		return ErrDuplicateHash
	}

	var (
		predHeight    uint64
		predTotalWork uint64
		chain         *ledger.Chain
	)

	switch {
	case predIsTip:
		predHeight, predTotalWork = predEntry.Height, predEntry.TotalWork
		chain = predEntry.Chain.Clone()
	default:
		if recent, ok := m.recentBlocks[b.Predecessor]; ok {
			predHeight, predTotalWork = recent.Height, recent.TotalWork
			chain = m.reconstructFromRecent(recent)
		} else {
			chain, predTotalWork, predHeight = m.replayToBlock(b.Predecessor)
		}
	}

	predBlock := chain.Blocks[predHeight-1].Block
	if predBlock.Difficulty > b.Difficulty {
		return ErrDifficultyDecreased
	}

	ts := m.now()
	if err := chain.Submit(b, ts); err != nil {
		return err
	}

	if predIsTip {
		delete(m.forks, b.Predecessor)
		delete(m.heads, Head{Height: predHeight, TotalWork: predTotalWork, Hash: b.Predecessor})
	}

	newHeight := predHeight + 1
	newTotalWork := saturatingAdd(predTotalWork, workFor(b.Difficulty))
	m.forks[b.Hash] = &forkEntry{Height: newHeight, CreatedAt: ts, TotalWork: newTotalWork, Chain: chain}
	m.heads[Head{Height: newHeight, TotalWork: newTotalWork, Hash: b.Hash}] = struct{}{}

	m.recomputeMainChain()
	if m.isMainTip(b.Hash) {
		m.cacheRecentTip(b.Hash, newHeight, ts, newTotalWork, b, chain)
	}

	return nil
}
