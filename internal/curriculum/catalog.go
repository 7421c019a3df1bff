package curriculum

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog major version this build understands.
const SupportedMajor = "v1"

//go:embed data/*.json data/units/*.json
var catalogData embed.FS

// Catalog is the immutable course content: ordered units plus the class roster.
type Catalog struct {
	Version    string
	units      []Unit
	byID       map[int]int
	classmates []Classmate
}

type manifest struct {
	Version    string      `json:"version"`
	Classmates []Classmate `json:"classmates"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadFS(catalogData, "data")
	})
	return defaultCatalog, defaultErr
}

// LoadFS reads catalog.json and every units/*.json under dir.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, path.Join(dir, "catalog.json"))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	entries, err := fs.ReadDir(fsys, path.Join(dir, "units"))
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	var units []Unit
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, "units", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read unit %s: %w", entry.Name(), err)
		}
		var u Unit
		if err := json.Unmarshal(data, &u); err != nil {
			return nil, fmt.Errorf("parse unit %s: %w", entry.Name(), err)
		}
		units = append(units, u)
	}

	return New(m.Version, units, m.Classmates)
}

// New validates units and builds a catalog. Units are ordered by ID; a
// unit's Order is its display number and must rise with the ID.
func New(version string, units []Unit, classmates []Classmate) (*Catalog, error) {
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("catalog version %q is not a semantic version", version)
	}
	if major := semver.Major(version); major != SupportedMajor {
		return nil, fmt.Errorf("catalog version %s not supported (want %s.x)", version, SupportedMajor)
	}

	sorted := make([]Unit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	if err := validateUnits(sorted); err != nil {
		return nil, err
	}

	c := &Catalog{
		Version:    version,
		units:      sorted,
		byID:       make(map[int]int, len(sorted)),
		classmates: classmates,
	}
	for i := range sorted {
		c.byID[sorted[i].ID] = i
	}
	return c, nil
}

// Units returns the units in course order.
func (c *Catalog) Units() []Unit {
	return c.units
}

// Unit returns the unit with the given ID.
func (c *Catalog) Unit(id int) (*Unit, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("unit %d not found", id)
	}
	return &c.units[i], nil
}

// Position returns the course position of a unit, or -1.
func (c *Catalog) Position(id int) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// Classmates returns the class roster.
func (c *Catalog) Classmates() []Classmate {
	return c.classmates
}
