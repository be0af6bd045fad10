package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/validation"
)

// SchemaName is the registered name of the items schema
const SchemaName = "items.schema.json"

//go:embed items.schema.json
var itemsSchema []byte

//go:embed items.json
var defaultItems []byte

// File is the JSON layout of a catalog file
type File struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// Loader reads and validates catalog files
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader with the items schema registered
func NewLoader() (*Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, itemsSchema); err != nil {
		return nil, fmt.Errorf("failed to register items schema: %w", err)
	}
	return &Loader{schemaValidator: v}, nil
}

// Load reads a catalog file. An empty path loads the built-in catalog.
func (l *Loader) Load(path string) (*Catalog, error) {
	if path == "" {
		return l.Parse(defaultItems)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates raw catalog JSON and builds the catalog
func (l *Loader) Parse(data []byte) (*Catalog, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[int]bool, len(f.Items))
	for _, it := range f.Items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: duplicate item id %d", domain.ErrInvalidConfig, it.ID)
		}
		seen[it.ID] = true
	}

	return New(f.Items), nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	var f File
	if err := json.Unmarshal(defaultItems, &f); err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return New(f.Items)
}
