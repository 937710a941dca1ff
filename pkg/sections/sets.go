// Package sections holds the built-in candidate sets: folders that are merged
// into collection files when they are missing.
package sections

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/blackcoderx/postman-merge/pkg/collection"
	"github.com/blackcoderx/postman-merge/pkg/storage"
)

//go:embed sets/*.yaml
var setFS embed.FS

const setDir = "sets"

// Set is a named list of candidate sections.
type Set struct {
	Name        string
	Description string
	Sections    []collection.Value
}

// Names returns the names of the built-in sets, sorted.
func Names() []string {
	entries, err := setFS.ReadDir(setDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Load parses the built-in set called name and validates its sections.
func Load(name string) (*Set, error) {
	data, err := setFS.ReadFile(path.Join(setDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown section set '%s' (available: %s)", name, strings.Join(Names(), ", "))
	}

	set, err := parseSet(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load section set '%s': %w", name, err)
	}

	if err := Validate(set.Sections); err != nil {
		return nil, fmt.Errorf("section set '%s' is invalid: %w", name, err)
	}

	return set, nil
}

// LoadAll loads the named sets and concatenates their sections in order.
func LoadAll(names ...string) ([]collection.Value, error) {
	var candidates []collection.Value
	for _, name := range names {
		set, err := Load(name)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, set.Sections...)
	}
	return candidates, nil
}

func parseSet(data []byte) (*Set, error) {
	root, err := collection.FromYAML(data)
	if err != nil {
		return nil, err
	}
	if root.Kind() != collection.KindObject {
		return nil, fmt.Errorf("set must be a mapping, got %s", root.Kind())
	}

	set := &Set{}
	set.Name, _ = root.Name()
	if desc, ok := root.Get("description"); ok {
		set.Description, _ = desc.AsString()
	}

	list, ok := root.Get("sections")
	if !ok || list.Kind() != collection.KindArray {
		return nil, fmt.Errorf("set has no sections list")
	}
	set.Sections = list.Elems()

	return set, nil
}

// SectionNames returns the names of the set's sections in order.
func (s *Set) SectionNames() []string {
	names := make([]string, 0, len(s.Sections))
	for _, section := range s.Sections {
		name, _ := section.Name()
		names = append(names, name)
	}
	return names
}

// Folders returns the set's sections in the typed folder model.
func (s *Set) Folders() ([]storage.Folder, error) {
	folders := make([]storage.Folder, 0, len(s.Sections))
	for _, section := range s.Sections {
		folder, err := storage.DecodeFolder(section)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, nil
}
