package item

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

func TestNewCatalog_Success(t *testing.T) {
	catalog, err := NewCatalog(Default())
	require.NoError(t, err)

	sword, ok := catalog.Get("espada_simples")
	require.True(t, ok)
	assert.Equal(t, "Espada Simples", sword.Name)
	assert.Equal(t, domain.CategoryWeapon, sword.Category)
	assert.Equal(t, 5, sword.Stats.Damage)
}

func TestNewCatalog_DuplicateInternalName(t *testing.T) {
	items := []domain.Item{
		{InternalName: "adaga", Name: "Adaga", Category: domain.CategoryWeapon},
		{InternalName: "adaga", Name: "Adaga", Category: domain.CategoryWeapon},
	}

	_, err := NewCatalog(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateInternalName)
}

func TestNewCatalog_UnknownCategory(t *testing.T) {
	items := []domain.Item{
		{InternalName: "gema", Name: "Gema", Category: "jewel"},
	}

	_, err := NewCatalog(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "jewel")
}

func TestNewCatalog_Empty(t *testing.T) {
	_, err := NewCatalog(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNoItemsDefined)
}

func TestCatalog_ResolveFoldsAccents(t *testing.T) {
	catalog := DefaultCatalog()

	potion, ok := catalog.Resolve("poção de cura menor")
	require.True(t, ok)
	assert.Equal(t, "pocao_cura_menor", potion.InternalName)

	potion, ok = catalog.Resolve("Pocao de Cura Menor")
	require.True(t, ok)
	assert.Equal(t, "pocao_cura_menor", potion.InternalName)

	_, ok = catalog.Resolve("espada flamejante")
	assert.False(t, ok)
}

func TestCatalog_DefaultDataIsConsistent(t *testing.T) {
	catalog := DefaultCatalog()

	// Quest items carry their quest id and are worthless to vendors
	scroll, ok := catalog.Get("pergaminho_destino")
	require.True(t, ok)
	assert.Equal(t, "mq001", scroll.QuestID)
	assert.Equal(t, 0, scroll.Value)

	// Consumables restore something
	for _, name := range []string{"pocao_cura_menor", "pocao_cura", "pocao_mana_menor", "comida", "bandagem"} {
		it, ok := catalog.Get(name)
		require.True(t, ok, name)
		assert.True(t, it.Consumable, name)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	data := `{
		"version": "1",
		"items": [
			{
				"internal_name": "lanterna",
				"name": "Lanterna",
				"description": "Uma lanterna de óleo.",
				"category": "material",
				"value": 4,
				"weight": 1
			}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	catalog, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
	assert.True(t, catalog.Has("lanterna"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read items config file")
}
