package block

import (
	"strconv"
	"strings"

	"github.com/Klingon-tech/klingnet-fork/pkg/hashutil"
	"github.com/Klingon-tech/klingnet-fork/pkg/tx"
	"github.com/Klingon-tech/klingnet-fork/pkg/types"
)

// Encode produces the exact byte sequence the block hash is taken over:
//
//	["<predecessor>",[<T0>,<T1>,...],<difficulty>,<nonce>]
//
// where each <Ti> is {"inputs":[<I0>,...],"outputs":[<O0>,...]} and each
// input/output is {"amount":<n>,"id":<n>}, integers in base 10 without
// padding, no whitespace anywhere. This is the sole source of truth for
// hash equality — not a generic JSON serializer, which would not
// reproduce the amount-before-id key order or the bare numeric tuple
// tail.
func (b *Block) Encode() []byte {
	var sb strings.Builder

	sb.WriteString(`["`)
	sb.WriteString(b.Predecessor)
	sb.WriteString(`",[`)
	for i, t := range b.Transactions {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeTransaction(&sb, t)
	}
	sb.WriteString("],")
	sb.WriteString(strconv.FormatUint(uint64(b.Difficulty), 10))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatUint(b.Nonce, 10))
	sb.WriteByte(']')

	return []byte(sb.String())
}

func writeTransaction(sb *strings.Builder, t *tx.Transaction) {
	sb.WriteString(`{"inputs":[`)
	for i, in := range t.Inputs {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeOutput(sb, in)
	}
	sb.WriteString(`],"outputs":[`)
	for i, out := range t.Outputs {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeOutput(sb, out)
	}
	sb.WriteString(`]}`)
}

// ComputeHash returns the block's canonical hash: "0x" followed by the
// lowercase hex SHA-256 digest of Encode().
func (b *Block) ComputeHash() string {
	return hashutil.Hash(b.Encode())
}

func writeOutput(sb *strings.Builder, o types.Output) {
	sb.WriteString(`{"amount":`)
	sb.WriteString(strconv.FormatUint(o.Amount, 10))
	sb.WriteString(`,"id":`)
	sb.WriteString(strconv.FormatUint(o.ID, 10))
	sb.WriteByte('}')
}
