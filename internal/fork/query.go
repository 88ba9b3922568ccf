package fork

// State returns a snapshot of the current fork-choice winner, or
// ErrMustInitFirst if no fork has ever been created.
func (m *Manager) State() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.heads) == 0 {
		return State{}, ErrMustInitFirst
	}
	return m.state, nil
}

// Heads returns every current fork tip. Order is unspecified.
func (m *Manager) Heads() ([]Head, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.heads) == 0 {
		return nil, ErrMustInitFirst
	}
	heads := make([]Head, 0, len(m.heads))
	for h := range m.heads {
		heads = append(heads, h)
	}
	return heads, nil
}

// RecentTipQueue returns the eviction FIFO's current contents, oldest
// first.
func (m *Manager) RecentTipQueue() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.recentQueue))
	copy(out, m.recentQueue)
	return out
}

// RecentTipHashes returns the hashes currently cached in the recent-tip
// table. Order is unspecified.
func (m *Manager) RecentTipHashes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.recentBlocks))
	for h := range m.recentBlocks {
		out = append(out, h)
	}
	return out
}

// ForkTipHashes returns the tip hash of every live fork. Order is
// unspecified.
func (m *Manager) ForkTipHashes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.forks))
	for h := range m.forks {
		out = append(out, h)
	}
	return out
}

// MainChainHashes returns the block hashes of the current main chain, in
// chain order.
func (m *Manager) MainChainHashes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.blocks))
	for i, rec := range m.blocks {
		out[i] = rec.Block.Hash
	}
	return out
}

// MainChainHashSet returns the main chain's block-hash set. Order is
// unspecified.
func (m *Manager) MainChainHashSet() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.blocksSet))
	for h := range m.blocksSet {
		out = append(out, h)
	}
	return out
}
