package selene

import (
	"fmt"
	"slices"
	"sync"
)

var (
	templatesMu sync.RWMutex
	templates   = make(map[string]string)
)

// Register makes a compiled render function available by name. Go files
// produced by `selene generate --target=go --register` call it from init.
// It panics if name is empty or already registered.
func Register(name, code string) {
	templatesMu.Lock()
	defer templatesMu.Unlock()
	if name == "" {
		panic("selene: Register with empty template name")
	}
	if _, dup := templates[name]; dup {
		panic(fmt.Sprintf("selene: Register called twice for template %q", name))
	}
	templates[name] = code
}

// Lookup returns the render function registered under name.
func Lookup(name string) (string, bool) {
	templatesMu.RLock()
	defer templatesMu.RUnlock()
	code, ok := templates[name]
	return code, ok
}

// Templates returns the registered template names, sorted.
func Templates() []string {
	templatesMu.RLock()
	defer templatesMu.RUnlock()
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func unregisterAllTemplates() {
	templatesMu.Lock()
	defer templatesMu.Unlock()
	templates = make(map[string]string)
}
