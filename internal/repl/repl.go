package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/Klingon-tech/klingnet-fork/internal/log"
)

// REPL reads command envelopes with line editing and history recall, runs
// each through an Adapter, and prints the resulting response lines
// followed by a blank separator — matching the reference process-I/O
// contract of one response block per command.
type REPL struct {
	adapter     *Adapter
	historyPath string
	out         io.Writer
}

// New returns a REPL bound to the given adapter, persisting line history
// to historyPath (created on first use if its directory doesn't exist).
func New(adapter *Adapter, historyPath string) *REPL {
	return &REPL{adapter: adapter, historyPath: historyPath, out: os.Stdout}
}

// Run drives the interactive prompt until EOF (Ctrl-D) or interrupt
// (Ctrl-C), then persists history and returns.
func (r *REPL) Run() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	r.loadHistory(line)

	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			log.Repl.Error().Err(err).Msg("reading command line")
			break
		}

		line.AppendHistory(input)
		r.dispatch(input)
	}

	return r.saveHistory(line)
}

// RunCommands feeds a batch of newline-delimited command envelopes
// through the adapter non-interactively, the way a scripted scenario
// seeds a chain before the REPL drops into interactive mode.
func (r *REPL) RunCommands(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		r.dispatch(scanner.Text())
	}
	return scanner.Err()
}

func (r *REPL) dispatch(input string) {
	for _, resp := range r.adapter.Handle(input) {
		fmt.Fprintln(r.out, resp)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) loadHistory(line *liner.State) {
	f, err := os.Open(r.historyPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Repl.Warn().Err(err).Str("path", r.historyPath).Msg("could not open history file")
		}
		return
	}
	defer f.Close()
	if _, err := line.ReadHistory(f); err != nil {
		log.Repl.Warn().Err(err).Str("path", r.historyPath).Msg("could not read history file")
	}
}

func (r *REPL) saveHistory(line *liner.State) error {
	if err := os.MkdirAll(filepath.Dir(r.historyPath), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	f, err := os.Create(r.historyPath)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
