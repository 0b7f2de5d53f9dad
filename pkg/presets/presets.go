// Package presets loads named card definitions from YAML/JSON documents.
// Presets back the demo applications and the CLI, giving every variant,
// size, and status combination a ready-made example. Documents are checked
// against an OpenAPI schema before the typed decode so malformed files fail
// with a structural diagnostic instead of a zero-valued card.
package presets

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// Preset pairs a stable name with the card input it describes.
type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Card        card.Input
}

// Store holds loaded presets keyed by name.
type Store struct {
	presets map[string]Preset
}

// Get returns the preset registered under name.
func (s *Store) Get(name string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	preset, ok := s.presets[strings.TrimSpace(name)]
	return preset, ok
}

// Names returns the sorted preset names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any presets.
func (s *Store) Empty() bool {
	return s == nil || len(s.presets) == 0
}

// LoadFS walks the provided filesystem and parses YAML/JSON preset files.
// When fsys is nil or no preset files are present, the returned store is
// empty. Duplicate preset names across files are an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("presets: read %s: %w", path, err)
		}

		loaded, err := Parse(data, path)
		if err != nil {
			return err
		}

		for _, preset := range loaded {
			if _, exists := store.presets[preset.Name]; exists {
				return fmt.Errorf("presets: duplicate preset %q (file %s)", preset.Name, path)
			}
			store.presets[preset.Name] = preset
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Presets []presetFile `json:"presets" yaml:"presets"`
}

type presetFile struct {
	Name           string `json:"name" yaml:"name"`
	Summary        string `json:"summary" yaml:"summary"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description" yaml:"description"`
	Variant        string `json:"variant" yaml:"variant"`
	Size           string `json:"size" yaml:"size"`
	Status         string `json:"status" yaml:"status"`
	ShowValidation bool   `json:"showValidation" yaml:"showValidation"`
}

// Parse decodes and validates a preset document. YAML is a superset of the
// JSON documents we accept, so a single decode path covers both.
func Parse(data []byte, source string) ([]Preset, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("presets: file %s is empty", source)
	}

	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("presets: parse %s: %w", source, err)
	}
	if err := validateDocument(generic); err != nil {
		return nil, fmt.Errorf("presets: file %s: %w", source, err)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("presets: parse %s: %w", source, err)
	}

	out := make([]Preset, 0, len(doc.Presets))
	for idx, raw := range doc.Presets {
		preset, err := normalisePreset(raw, idx, source)
		if err != nil {
			return nil, err
		}
		out = append(out, preset)
	}
	return out, nil
}

func normalisePreset(raw presetFile, idx int, source string) (Preset, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Preset{}, fmt.Errorf("presets: file %s entry %d has an empty name", source, idx)
	}

	variant, err := card.ParseVariant(raw.Variant)
	if err != nil {
		return Preset{}, fmt.Errorf("presets: preset %q (file %s): %w", name, source, err)
	}
	size, err := card.ParseSize(raw.Size)
	if err != nil {
		return Preset{}, fmt.Errorf("presets: preset %q (file %s): %w", name, source, err)
	}
	status, err := card.ParseStatus(raw.Status)
	if err != nil {
		return Preset{}, fmt.Errorf("presets: preset %q (file %s): %w", name, source, err)
	}

	return Preset{
		Name:        name,
		Description: strings.TrimSpace(raw.Summary),
		Card: card.Input{
			Title:          raw.Title,
			Description:    raw.Description,
			Variant:        variant,
			Size:           size,
			Status:         status,
			ShowValidation: raw.ShowValidation,
		},
	}, nil
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
