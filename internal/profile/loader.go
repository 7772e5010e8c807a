package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pixel-avatar/internal/avatar"
)

// Profile is a saved user: display name, earned points and avatar.
type Profile struct {
	Name   string
	Points int
	Avatar avatar.CharacterConfig
}

// jsonProfile is the on-disk JSON format.
type jsonProfile struct {
	Name   string                  `json:"name"`
	Points int                     `json:"points"`
	Avatar *avatar.CharacterConfig `json:"avatar,omitempty"`
}

// Load reads a JSON profile from disk. Missing avatar fields take the
// default character's values.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON profile.
func Parse(data []byte) (*Profile, error) {
	var jp jsonProfile
	if err := json.Unmarshal(data, &jp); err != nil {
		return nil, fmt.Errorf("parse profile JSON: %w", err)
	}

	name := strings.TrimSpace(jp.Name)
	if name == "" {
		return nil, fmt.Errorf("profile has no name")
	}
	if jp.Points < 0 {
		return nil, fmt.Errorf("profile %q has negative points %d", name, jp.Points)
	}

	cfg := avatar.DefaultCharacter
	if jp.Avatar != nil {
		cfg = jp.Avatar.WithDefaults()
	}

	return &Profile{Name: name, Points: jp.Points, Avatar: cfg}, nil
}

// LoadDir scans a directory for *.json files, loads each as a Profile,
// and returns them sorted by name.
func LoadDir(dir string) ([]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read profiles directory: %w", err)
	}

	seen := make(map[string]string)
	var all []*Profile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		p, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if prev, exists := seen[p.Name]; exists {
			return nil, fmt.Errorf("duplicate profile name %q in %s and %s", p.Name, prev, entry.Name())
		}
		seen[p.Name] = entry.Name()
		all = append(all, p)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Default returns a profile with no points and the default character.
func Default(name string) *Profile {
	return &Profile{Name: name, Avatar: avatar.DefaultCharacter}
}
