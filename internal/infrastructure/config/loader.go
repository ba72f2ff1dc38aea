package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *Tuning
	Level  *LevelConfig
}

// Loader loads game configuration from an fs.FS.
// Tuning is JSON, levels are YAML.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTuning loads tuning.json on top of Default().
// Entries of the enemies and pickups maps are merged field by field
// over the default entry of the same name.
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	var entries struct {
		Enemies map[string]json.RawMessage `json:"enemies"`
		Pickups map[string]json.RawMessage `json:"pickups"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	base := Default()
	if cfg.Enemies, err = mergeEntries(base.Enemies, entries.Enemies); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: enemies: %w", err)
	}
	if cfg.Pickups, err = mergeEntries(base.Pickups, entries.Pickups); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: pickups: %w", err)
	}

	return cfg, nil
}

// mergeEntries decodes every raw entry over a copy of its default
func mergeEntries[T any](defaults map[string]T, raw map[string]json.RawMessage) (map[string]T, error) {
	out := make(map[string]T, len(defaults)+len(raw))
	maps.Copy(out, defaults)
	for name, msg := range raw {
		v := defaults[name]
		if err := json.Unmarshal(msg, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// LoadLevel loads levels/<name>.yaml
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := path.Join("levels", name+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}

// Levels lists the level names found under levels/
func (l *Loader) Levels() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "levels")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads the tuning and one level, and checks they fit together
func (l *Loader) LoadAll(level string) (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	if err := lvl.Validate(tuning); err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Level:  lvl,
	}, nil
}
