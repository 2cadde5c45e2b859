package ops

import "fmt"

// Loader reads an operations file into a list of transactions.
type Loader interface {
	Load(path string) ([]Transaction, error)
}

// LoaderFunc is a function that implements Loader.
type LoaderFunc func(path string) ([]Transaction, error)

func (f LoaderFunc) Load(path string) ([]Transaction, error) {
	return f(path)
}

// loaders is the registry of available input formats
var loaders = map[string]Loader{}

// RegisterLoader registers a loader under the given format name.
func RegisterLoader(format string, l Loader) {
	loaders[format] = l
}

// GetLoader returns the loader for the given format.
func GetLoader(format string) (Loader, error) {
	l, ok := loaders[format]
	if !ok {
		return nil, fmt.Errorf("unknown input format: %s (available: %v)", format, AvailableFormats())
	}
	return l, nil
}

// AvailableFormats returns a list of registered format names.
func AvailableFormats() []string {
	var formats []string
	for name := range loaders {
		formats = append(formats, name)
	}
	return formats
}
