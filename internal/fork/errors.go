package fork

import "errors"

// Sentinel errors rendered verbatim into the command adapter's
// {"error":"..."} envelope. internal/ledger.ErrInvalidTransaction and
// pkg/block's hash/difficulty errors complete the contractual error
// table from the command reference.
var (
	ErrDuplicateHash       = errors.New("duplicate hash")
	ErrMustInitFirst       = errors.New("must initialize first")
	ErrNoPredecessor       = errors.New("no predecessor found")
	ErrDifficultyDecreased = errors.New("difficulty must not decrease")
)
