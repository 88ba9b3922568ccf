package repl

import (
	"encoding/json"

	"github.com/Klingon-tech/klingnet-fork/internal/fork"
	"github.com/Klingon-tech/klingnet-fork/internal/log"
	"github.com/Klingon-tech/klingnet-fork/pkg/block"
)

// Adapter dispatches parsed command envelopes onto a fork.Manager and
// renders its results as response lines. Every public method returns the
// lines that should be printed for that command — zero lines for
// unrecognized input, one line for init/block/query-state/query-heads,
// and seven for query-print.
type Adapter struct {
	manager *fork.Manager
}

// NewAdapter wraps a fork manager for line-based command handling.
func NewAdapter(m *fork.Manager) *Adapter {
	return &Adapter{manager: m}
}

// Handle parses one input line and returns the response lines it
// produces. A line that isn't valid JSON, or that matches none of
// init/query/block, produces no lines.
func (a *Adapter) Handle(line string) []string {
	var env envelope
	if err := json.Unmarshal([]byte(line), &env); err != nil {
		log.Repl.Debug().Err(err).Msg("ignoring unparseable command line")
		return nil
	}

	switch {
	case env.Init != nil:
		return []string{a.handleInit(env.Init)}
	case env.Query != nil:
		return a.handleQuery(*env.Query)
	case env.Block != nil:
		return []string{a.handleBlock(env.Block)}
	default:
		return nil
	}
}

func (a *Adapter) handleInit(b *block.Block) string {
	if err := b.Validate(); err != nil {
		return errorLine(err)
	}
	if err := a.manager.Init(b); err != nil {
		return errorLine(err)
	}
	return okLine
}

func (a *Adapter) handleBlock(b *block.Block) string {
	if err := b.Validate(); err != nil {
		return errorLine(err)
	}
	if err := a.manager.Submit(b); err != nil {
		return errorLine(err)
	}
	return okLine
}

func (a *Adapter) handleQuery(query string) []string {
	switch query {
	case "state":
		return []string{a.stateLine()}
	case "heads":
		return []string{a.headsLine()}
	case "print":
		return a.printLines()
	default:
		return nil
	}
}

func (a *Adapter) stateLine() string {
	state, err := a.manager.State()
	if err != nil {
		return errorLine(err)
	}
	return toJSON(struct {
		State fork.State `json:"state"`
	}{state})
}

func (a *Adapter) headsLine() string {
	heads, err := a.manager.Heads()
	if err != nil {
		return errorLine(err)
	}
	return toJSON(struct {
		Heads []fork.Head `json:"heads"`
	}{heads})
}

func (a *Adapter) printLines() []string {
	return []string{
		a.stateLine(),
		a.headsLine(),
		namedListLine("recent_blocks_queue", a.manager.RecentTipQueue()),
		namedListLine("recent_blocks", a.manager.RecentTipHashes()),
		namedListLine("forks", a.manager.ForkTipHashes()),
		namedListLine("blocks", a.manager.MainChainHashes()),
		namedListLine("blocks_set", a.manager.MainChainHashSet()),
	}
}

const okLine = `{"ok":[]}`

func errorLine(err error) string {
	return toJSON(struct {
		Error string `json:"error"`
	}{err.Error()})
}

func namedListLine(name string, values []string) string {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(map[string][]string{name: values})
	if err != nil {
		log.Repl.Error().Err(err).Str("field", name).Msg("failed to marshal print_details field")
		return `{}`
	}
	return string(b)
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Repl.Error().Err(err).Msg("failed to marshal response")
		return `{"error":"internal encoding error"}`
	}
	return string(b)
}
