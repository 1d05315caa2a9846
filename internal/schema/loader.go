package schema

import (
	"errors"
	"fmt"
	"os"
)

// ErrLoad marks a definition file that is missing or unparseable. Callers
// treat it as non-fatal: validation degrades to pass-through without a
// schema rather than aborting the build.
var ErrLoad = errors.New("definition load failed")

// LoadDefinition reads and indexes a definition file.
func LoadDefinition(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	idx, err := BuildIndex(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return idx, nil
}
