package fork

// recomputeMainChain recomputes which head wins fork choice and replaces
// the materialized main-chain view (blocks, blocksSet, state) with that
// fork's data. Called after every Init and every successful Submit.
func (m *Manager) recomputeMainChain() {
	winner, ok := m.selectWinner()
	if !ok {
		m.blocks = nil
		m.blocksSet = make(map[string]struct{})
		m.state = State{}
		return
	}

	entry := m.forks[winner.Hash]
	m.blocks = entry.Chain.Blocks
	m.blocksSet = entry.Chain.BlocksSet
	m.state = State{
		Height:    entry.Height,
		TotalWork: entry.TotalWork,
		Hash:      winner.Hash,
		Outputs:   entry.Chain.Outputs,
	}
}

// selectWinner picks the head that wins fork choice:
//
//  1. Maximum totalWork (not height — despite "longest chain" language
//     sometimes attached to similar designs, totalWork is the primary
//     key here).
//  2. Among ties, earliest created_at of the tip entry.
//  3. Among remaining ties, the lexicographically smallest tip hash,
//     giving a strict total order instead of depending on map
//     iteration order.
func (m *Manager) selectWinner() (Head, bool) {
	var winner Head
	var winnerCreatedAt int64
	found := false

	for h := range m.heads {
		entry := m.forks[h.Hash]
		if !found {
			winner, winnerCreatedAt, found = h, entry.CreatedAt, true
			continue
		}
		if better(h, entry.CreatedAt, winner, winnerCreatedAt) {
			winner, winnerCreatedAt = h, entry.CreatedAt
		}
	}

	return winner, found
}

func better(candidate Head, candidateCreatedAt int64, current Head, currentCreatedAt int64) bool {
	if candidate.TotalWork != current.TotalWork {
		return candidate.TotalWork > current.TotalWork
	}
	if candidateCreatedAt != currentCreatedAt {
		return candidateCreatedAt < currentCreatedAt
	}
	return candidate.Hash < current.Hash
}
