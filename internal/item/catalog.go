package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/naming"
)

// Sentinel errors for catalog construction
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// CategoryDisplayNames maps categories to player-facing labels.
var CategoryDisplayNames = map[domain.ItemCategory]string{
	domain.CategoryWeapon:    "Arma",
	domain.CategoryArmor:     "Armadura",
	domain.CategoryAccessory: "Acessório",
	domain.CategoryPotion:    "Poção",
	domain.CategoryScroll:    "Pergaminho",
	domain.CategoryKey:       "Chave",
	domain.CategoryQuest:     "Item de Missão",
	domain.CategoryMaterial:  "Material",
	domain.CategoryFood:      "Comida",
	domain.CategoryTreasure:  "Tesouro",
}

// Config represents the JSON configuration for items
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description,omitempty"`
	Items       []domain.Item `json:"items"`
}

// Catalog is an immutable, validated item registry. Lookups by display
// name fold case and accents through the naming resolver.
type Catalog struct {
	items    map[string]domain.Item
	resolver naming.Resolver
}

// NewCatalog validates the definitions and builds a catalog. Every
// internal name must be unique and every category known.
func NewCatalog(items []domain.Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	c := &Catalog{
		items:    make(map[string]domain.Item, len(items)),
		resolver: naming.NewResolver(),
	}

	for i, it := range items {
		if err := validateItem(i, it); err != nil {
			return nil, err
		}
		if _, exists := c.items[it.InternalName]; exists {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateInternalName, it.InternalName)
		}
		c.items[it.InternalName] = it
		c.resolver.Register(it.InternalName, it.Name)
	}

	return c, nil
}

func validateItem(index int, it domain.Item) error {
	if it.InternalName == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}
	if it.Name == "" {
		return fmt.Errorf(ErrFmtItemHasEmptyName, ErrInvalidConfig, it.InternalName)
	}
	if it.Value < 0 {
		return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidConfig, it.InternalName)
	}
	if it.Weight < 0 {
		return fmt.Errorf(ErrFmtItemNegativeWeight, ErrInvalidConfig, it.InternalName)
	}
	if _, known := CategoryDisplayNames[it.Category]; !known {
		return fmt.Errorf(ErrFmtItemUnknownCategory, ErrInvalidConfig, it.InternalName, it.Category)
	}
	return nil
}

// Load reads an items JSON file and builds a catalog from it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return NewCatalog(config.Items)
}

// Get returns the item for an internal name.
func (c *Catalog) Get(internalName string) (domain.Item, bool) {
	it, ok := c.items[internalName]
	return it, ok
}

// Resolve looks an item up by display name or internal name, folding
// case and accents.
func (c *Catalog) Resolve(name string) (domain.Item, bool) {
	internal, ok := c.resolver.ResolveDisplayName(name)
	if !ok {
		return domain.Item{}, false
	}
	return c.Get(internal)
}

// DisplayName returns the display name for an internal name, falling
// back to the internal name itself.
func (c *Catalog) DisplayName(internalName string) string {
	return c.resolver.DisplayName(internalName)
}

// Has reports whether the internal name is registered.
func (c *Catalog) Has(internalName string) bool {
	_, ok := c.items[internalName]
	return ok
}

// Len returns the number of registered items.
func (c *Catalog) Len() int {
	return len(c.items)
}
