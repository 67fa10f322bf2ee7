package profile

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

// builtinProfiles maps profile names to their presets
var builtinProfiles = map[string]*Profile{}

func init() {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := profileFS.ReadFile(path.Join("profiles", entry.Name()))
		if err != nil {
			continue
		}

		var p Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}

		builtinProfiles[p.Name] = &p
	}
}

// Load returns a built-in profile by name. An empty name selects DefaultName.
func Load(name string) (*Profile, error) {
	if name == "" {
		name = DefaultName
	}
	if p, ok := builtinProfiles[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown profile: %s (available: %v)", name, Available())
}

// Available returns the names of all built-in profiles, sorted
func Available() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
