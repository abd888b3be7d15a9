// Package interpreter loads compiled rye units. Only the raw byte-file
// intake exists so far; execution arrives with the bytecode format.
package interpreter

import (
	"fmt"
	"io"
	"os"
)

// LoadFile reads a compiled unit from path.
func LoadFile(path string) ([]byte, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load compiled unit: %w", err)
	}
	return code, nil
}

// Dump writes one line per byte of code, the trace format used while the
// bytecode format settles.
func Dump(w io.Writer, code []byte) error {
	for _, b := range code {
		if _, err := fmt.Fprintf(w, "Got: %X\n", b); err != nil {
			return err
		}
	}
	return nil
}
