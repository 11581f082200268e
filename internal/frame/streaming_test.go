package frame

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"
)

func TestBOMSkipper(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("3,?,alfa-romero")...),
			expected: "3,?,alfa-romero",
		},
		{
			name:     "file without BOM",
			input:    []byte("3,?,alfa-romero"),
			expected: "3,?,alfa-romero",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM kept",
			input:    []byte{0xEF, 0xBB, 'a'},
			expected: string([]byte{0xEF, 0xBB, 'a'}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(newBOMSkipper(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUTF8Sanitizer(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "ascii",
			input:    []byte("gas,std"),
			expected: "gas,std",
		},
		{
			name:     "valid multibyte",
			input:    []byte("caf\xc3\xa9"),
			expected: "caf\xc3\xa9",
		},
		{
			name:     "invalid byte replaced",
			input:    []byte{'g', 0x80, 's'},
			expected: "g?s",
		},
		{
			name:     "truncated sequence at EOF",
			input:    []byte{'a', 0xE2, 0x82},
			expected: "a??",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(newUTF8Sanitizer(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUTF8Sanitizer_SplitAcrossReads(t *testing.T) {
	// Euro sign delivered one byte per Read must survive intact.
	input := []byte("x\xe2\x82\xacy")
	got, err := io.ReadAll(newUTF8Sanitizer(iotest.OneByteReader(bytes.NewReader(input))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(input) {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestWrapSource_Counts(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b\n")...)
	r := WrapSource(bytes.NewReader(input))

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "a,b\n" {
		t.Errorf("got %q", got)
	}
	if r.BytesRead != 4 {
		t.Errorf("BytesRead = %d, want 4", r.BytesRead)
	}
}
