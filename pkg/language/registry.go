package language

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Language registry
var (
	languagesMu     sync.RWMutex
	languages       = make(map[string]*Language)
	defaultLanguage string
)

// UnknownLanguageError is returned when a name or tag matches no registered language.
type UnknownLanguageError struct {
	Name      string
	Available []string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q\nAvailable languages: %v", e.Name, e.Available)
}

// Register registers a language in the global registry.
// Called by language implementations in their init() functions.
// The first registered language becomes the default.
func Register(l *Language) {
	languagesMu.Lock()
	defer languagesMu.Unlock()
	name := strings.ToLower(l.Name())
	languages[name] = l
	if defaultLanguage == "" {
		defaultLanguage = name
	}
}

// Get returns a language by name or exact tag, ignoring case.
func Get(name string) (*Language, bool) {
	languagesMu.RLock()
	defer languagesMu.RUnlock()
	return lookup(name)
}

func lookup(name string) (*Language, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if l, ok := languages[key]; ok {
		return l, true
	}
	for _, l := range languages {
		if l.tag != language.Und && strings.EqualFold(l.tag.String(), key) {
			return l, true
		}
	}
	return nil, false
}

// List returns all registered language names (sorted).
func List() []string {
	languagesMu.RLock()
	defer languagesMu.RUnlock()
	return listLocked()
}

func listLocked() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefault makes a registered language the default.
func SetDefault(name string) error {
	languagesMu.Lock()
	defer languagesMu.Unlock()
	l, ok := lookup(name)
	if !ok {
		return &UnknownLanguageError{Name: name, Available: listLocked()}
	}
	defaultLanguage = strings.ToLower(l.Name())
	return nil
}

// Default returns the default language, or nil when none is registered.
func Default() *Language {
	languagesMu.RLock()
	defer languagesMu.RUnlock()
	return languages[defaultLanguage]
}

// Resolve finds a language by name, tag or BCP 47 tag match.
// Regional and script variants resolve to their base language
// ("pt-BR" to portuguese). An empty name resolves to the default.
func Resolve(name string) (*Language, error) {
	languagesMu.RLock()
	defer languagesMu.RUnlock()

	if strings.TrimSpace(name) == "" {
		if l, ok := languages[defaultLanguage]; ok {
			return l, nil
		}
		return nil, &UnknownLanguageError{Name: name, Available: listLocked()}
	}
	if l, ok := lookup(name); ok {
		return l, nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return nil, &UnknownLanguageError{Name: name, Available: listLocked()}
	}
	base, _ := tag.Base()
	for _, key := range listLocked() {
		l := languages[key]
		if l.tag == language.Und {
			continue
		}
		if b, _ := l.tag.Base(); b == base {
			return l, nil
		}
	}
	return nil, &UnknownLanguageError{Name: name, Available: listLocked()}
}
