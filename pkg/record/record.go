package record

import (
	"fmt"
	"sort"
	"strings"
)

const MaxBinNameLen = 15

// Record maps bin names to values. It is the payload stored under a key.
type Record map[string]Value

func (r Record) String() string {
	var b strings.Builder
	formatMap(&b, r)
	return b.String()
}

// BinNames returns the bin names in sorted order.
func (r Record) BinNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ValidateBinName(name string) error {
	if name == "" {
		return fmt.Errorf("empty bin name")
	}
	if len(name) > MaxBinNameLen {
		return fmt.Errorf("bin name %q longer than %d bytes", name, MaxBinNameLen)
	}
	return nil
}

// Validate checks what the store requires of a record before accepting it.
func (r Record) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("record has no bins")
	}
	for _, name := range r.BinNames() {
		if err := ValidateBinName(name); err != nil {
			return err
		}
	}
	return nil
}
