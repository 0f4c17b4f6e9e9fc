package mapping

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"taxtape/internal/common"
)

//go:embed fields.yaml
var defaultYAML []byte

// Load loads and parses a YAML mapping table from the given path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Table and builds the reverse index.
func Parse(data []byte) (*Table, error) {
	var raw map[string]FormDef

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	forms := make(map[string]FormDef, len(raw))

	for key, def := range raw {
		code, ok := strings.CutPrefix(key, "form_")
		if !ok || code == "" {
			return nil, fmt.Errorf("unexpected top-level key %q, want form_<code>", key)
		}

		forms[code] = def
	}

	return &Table{forms: forms, index: buildIndex(forms)}, nil
}

// buildIndex precomputes name -> slot per form. When a semantic name
// is duplicated within a form, the slot that sorts first wins;
// Validate reports the duplicate.
func buildIndex(forms map[string]FormDef) map[string]map[string]string {
	index := make(map[string]map[string]string, len(forms))

	for code, def := range forms {
		byName := make(map[string]string, len(def.Fields))

		for _, slot := range common.SortedKeys(def.Fields) {
			name := def.Fields[slot].Name
			if name == "" {
				continue
			}

			if _, ok := byName[name]; !ok {
				byName[name] = slot
			}
		}

		index[code] = byName
	}

	return index
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded mapping table. The embed is part of
// the build, so a parse failure here is a programming error and
// panics on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("mapping: embedded table is invalid: %v", err))
		}

		defaultTable = t
	})

	return defaultTable
}

var (
	cacheMu sync.RWMutex
	cache   = map[string]*Table{}
)

// Cached returns the table loaded from path, loading it on first use
// and sharing one instance per distinct path afterwards. Tables are
// immutable, so a shared instance is safe across goroutines.
func Cached(path string) (*Table, error) {
	cacheMu.RLock()
	t, ok := cache[path]
	cacheMu.RUnlock()

	if ok {
		return t, nil
	}

	t, err := Load(path)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if existing, ok := cache[path]; ok {
		return existing, nil
	}

	cache[path] = t

	return t, nil
}
