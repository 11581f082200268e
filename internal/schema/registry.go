package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Dataset describes a source file layout known to the tools.
type Dataset struct {
	Key          string      // Unique identifier: "auto"
	Label        string      // Display name
	Header       bool        // First row holds the column names
	FieldSpecs   []FieldSpec // Column layout when Header is false
	MissingToken string      // Cell text meaning "no value"
}

// Columns returns the names of the dataset's field specs in order.
func (d Dataset) Columns() []string {
	return Names(d.FieldSpecs)
}

var (
	registry   = make(map[string]Dataset)
	registryMu sync.RWMutex
)

func init() {
	Register(Dataset{
		Key:          "auto",
		Label:        "Automobile specifications",
		FieldSpecs:   AutoFieldSpecs,
		MissingToken: "?",
	})
}

// Register adds a dataset to the registry.
// Panics if a dataset with the same key is already registered.
func Register(d Dataset) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[d.Key]; exists {
		panic(fmt.Sprintf("dataset already registered: %s", d.Key))
	}
	registry[d.Key] = d
}

// Get returns a dataset by key.
func Get(key string) (Dataset, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	d, ok := registry[key]
	if !ok {
		return Dataset{}, fmt.Errorf("unknown dataset %q (known: %v)", key, keysLocked())
	}
	return d, nil
}

// Keys returns the registered dataset keys, sorted.
func Keys() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return keysLocked()
}

func keysLocked() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
