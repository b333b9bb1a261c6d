package source

import "fmt"

// Constructor is a function that creates a new Normalizer instance.
type Constructor func() Normalizer

var registry = map[string]Constructor{}

// Register adds a normalizer constructor under the given format name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the normalizer constructor for the given format name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown source format: %s", name)
	}
	return ctor, nil
}

// Formats returns the names of all registered source formats.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
