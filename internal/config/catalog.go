package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spachava753/stakesim/internal/models"
)

// RejectionCount is the required size of the credential rejection catalog.
const RejectionCount = 5

//go:embed catalog.toml
var defaults embed.FS

// Catalog is the parsed catalog.toml: the stage sequence and the message
// pools sampled during a run.
type Catalog struct {
	Stages     []models.Stage `toml:"stages"`
	Faults     []string       `toml:"faults"`
	Rejections []string       `toml:"rejections"`
}

// Sequence returns the catalog's stages as an immutable sequence.
func (c Catalog) Sequence() (models.OperationSequence, error) {
	return models.NewOperationSequence(c.Stages)
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(defaults)
}

// LoadCatalog loads and parses a catalog.toml file from the given filesystem.
func LoadCatalog(fsys fs.FS) (Catalog, error) {
	data, err := fs.ReadFile(fsys, "catalog.toml")
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog.toml: %w", err)
	}
	return decodeCatalog(data)
}

// LoadCatalogFile loads a catalog from an arbitrary path.
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	return decodeCatalog(data)
}

func decodeCatalog(data []byte) (Catalog, error) {
	var cat Catalog
	md, err := toml.Decode(string(data), &cat)
	if err != nil {
		return cat, fmt.Errorf("parsing catalog: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cat, fmt.Errorf("parsing catalog: unknown keys: %s", strings.Join(keys, ", "))
	}

	if _, err := cat.Sequence(); err != nil {
		return cat, fmt.Errorf("catalog stages: %w", err)
	}
	if len(cat.Faults) == 0 {
		return cat, fmt.Errorf("catalog faults: at least one message is required")
	}
	if len(cat.Rejections) != RejectionCount {
		return cat, fmt.Errorf("catalog rejections: expected %d messages, got %d", RejectionCount, len(cat.Rejections))
	}
	for i, m := range append(append([]string{}, cat.Faults...), cat.Rejections...) {
		if strings.TrimSpace(m) == "" {
			return cat, fmt.Errorf("catalog message %d is empty", i)
		}
	}

	return cat, nil
}
