// Package faq loads the static FAQ set and matches user text against it.
package faq

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/xiaot623/supportbot/internal/domain"
)

// Catalog is the read-only FAQ set for the lifetime of the process.
type Catalog struct {
	items []domain.FAQItem
}

// NewCatalog wraps items, normalising missing tag lists to empty ones.
func NewCatalog(items []domain.FAQItem) *Catalog {
	normalized := make([]domain.FAQItem, len(items))
	for i, item := range items {
		if item.Tags == nil {
			item.Tags = []string{}
		}
		normalized[i] = item
	}
	return &Catalog{items: normalized}
}

// LoadFile reads a JSON array of FAQ items, or a YAML sequence when the
// file extension is .yaml or .yml.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read faq file: %w", err)
	}

	var items []domain.FAQItem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &items)
	default:
		err = json.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse faq file %s: %w", path, err)
	}

	return NewCatalog(items), nil
}

// All returns a copy of the items in load order.
func (c *Catalog) All() []domain.FAQItem {
	out := make([]domain.FAQItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of loaded items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Match runs Match over the catalog.
func (c *Catalog) Match(userText string) (*domain.FAQItem, bool) {
	return Match(userText, c.items)
}
