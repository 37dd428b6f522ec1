// Package catalog loads product catalogs and publishes immutable snapshots.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aromax/storefront/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var seedCatalog []byte

// catalogDocument is the on-disk layout shared by YAML and JSON files
type catalogDocument struct {
	Products []domain.Product `json:"products" yaml:"products"`
}

// EmbeddedSource serves the catalog compiled into the binary
type EmbeddedSource struct{}

// NewEmbeddedSource creates a source for the built-in catalog
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Load parses the embedded catalog
func (s *EmbeddedSource) Load(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decodeCatalog(seedCatalog, "yaml")
}

// Describe names the source for logs
func (s *EmbeddedSource) Describe() string {
	return "embedded"
}

// FileSource reads the catalog from a YAML or JSON file
type FileSource struct {
	path string
}

// NewFileSource creates a source for path. The format follows the extension.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file being read
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and validates the file
func (s *FileSource) Load(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	format, err := formatFor(s.path)
	if err != nil {
		return nil, err
	}

	products, err := decodeCatalog(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return products, nil
}

// Describe names the source for logs
func (s *FileSource) Describe() string {
	return "file:" + s.path
}

func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	}
	return "", fmt.Errorf("%w: unsupported catalog file type %q", domain.ErrCatalogUnavailable, filepath.Ext(path))
}

// decodeCatalog parses a catalog document and validates every product
func decodeCatalog(data []byte, format string) ([]domain.Product, error) {
	var doc catalogDocument

	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", domain.ErrCatalogUnavailable, err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", domain.ErrCatalogUnavailable, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrCatalogUnavailable, format)
	}

	if err := domain.ValidateProducts(doc.Products); err != nil {
		return nil, err
	}
	return doc.Products, nil
}
