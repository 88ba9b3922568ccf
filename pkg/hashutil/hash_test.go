package hashutil

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "abc",
			input: []byte("abc"),
			want:  "0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hash(tt.input)
			if got != tt.want {
				t.Errorf("Hash(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestHash_Prefix(t *testing.T) {
	got := Hash([]byte("anything"))
	if !strings.HasPrefix(got, "0x") {
		t.Errorf("Hash() = %s, want 0x prefix", got)
	}
	if len(got) != 2+64 {
		t.Errorf("Hash() length = %d, want %d", len(got), 2+64)
	}
	if strings.ToLower(got) != got {
		t.Errorf("Hash() = %s, want lowercase", got)
	}
}

func TestHash_Deterministic(t *testing.T) {
	a := Hash([]byte("same input"))
	b := Hash([]byte("same input"))
	if a != b {
		t.Errorf("Hash() not deterministic: %s != %s", a, b)
	}
}
