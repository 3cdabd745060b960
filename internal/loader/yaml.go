package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	"gopkg.in/yaml.v3"
)

// lexiconYAML is the on-disk YAML layout. Unknown fields are rejected.
type lexiconYAML struct {
	Language   string          `yaml:"language"`
	Entries    []entryYAML     `yaml:"entries"`
	Irregulars []irregularYAML `yaml:"irregulars"`
}

type entryYAML struct {
	Base     string            `yaml:"base"`
	Category string            `yaml:"category"`
	Features map[string]string `yaml:"features"`
}

type irregularYAML struct {
	Base      string   `yaml:"base"`
	Category  string   `yaml:"category"`
	Forms     []string `yaml:"forms"`
	Exclusive bool     `yaml:"exclusive"`
}

// LoadYAML reads a YAML lexicon file.
func LoadYAML(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}
	}
	return ParseYAML(path, data)
}

// ParseYAML decodes YAML lexicon content. name is used in errors.
func ParseYAML(name string, data []byte) (*Source, error) {
	var doc lexiconYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{File: name, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	src := &Source{Language: strings.TrimSpace(doc.Language)}
	for i, e := range doc.Entries {
		if strings.TrimSpace(e.Base) == "" {
			return nil, &LoadError{File: name, Message: fmt.Sprintf("entry %d: base is required", i+1)}
		}
		cat, err := parseCategory(name, e.Category)
		if err != nil {
			return nil, err
		}
		entry := core.NewWordEntry(e.Base, cat)
		for k, v := range e.Features {
			if entry.Features == nil {
				entry.Features = make(core.Features, len(e.Features))
			}
			entry.Features[core.Feature(k)] = v
		}
		src.Entries = append(src.Entries, entry)
	}

	for i, irr := range doc.Irregulars {
		if strings.TrimSpace(irr.Base) == "" {
			return nil, &LoadError{File: name, Message: fmt.Sprintf("irregular %d: base is required", i+1)}
		}
		if len(irr.Forms) == 0 {
			return nil, &LoadError{File: name, Message: fmt.Sprintf("irregular %q: at least one form is required", irr.Base)}
		}
		cat, err := parseCategory(name, irr.Category)
		if err != nil {
			return nil, err
		}
		src.Irregulars = append(src.Irregulars, language.Irregular{
			Base:      irr.Base,
			Category:  cat,
			Forms:     irr.Forms,
			Exclusive: irr.Exclusive,
		})
	}
	return src, nil
}
