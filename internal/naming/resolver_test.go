package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold_StripsAccentsAndCase(t *testing.T) {
	assert.Equal(t, "pocao de cura", Fold("Poção de Cura"))
	assert.Equal(t, "pantano nebuloso", Fold("  Pântano Nebuloso "))
	assert.Equal(t, "espada", Fold("espada"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("ir para a Floresta Sombria", "floresta sombria"))
	assert.True(t, ContainsFold("INVENTÁRIO", "inventario"))
	assert.False(t, ContainsFold("descansar", "inventario"))
}

func TestResolver_ResolveDisplayName(t *testing.T) {
	r := NewResolver()
	r.Register("pocao_cura", "Poção de Cura")

	internal, ok := r.ResolveDisplayName("poção de cura")
	assert.True(t, ok)
	assert.Equal(t, "pocao_cura", internal)

	// Folded typing without accents still resolves
	internal, ok = r.ResolveDisplayName("Pocao De Cura")
	assert.True(t, ok)
	assert.Equal(t, "pocao_cura", internal)

	// Internal names resolve to themselves
	internal, ok = r.ResolveDisplayName("pocao_cura")
	assert.True(t, ok)
	assert.Equal(t, "pocao_cura", internal)

	_, ok = r.ResolveDisplayName("espada longa")
	assert.False(t, ok)
}

func TestResolver_DisplayName(t *testing.T) {
	r := NewResolver()
	r.Register("erva_cura", "Erva de Cura")

	assert.Equal(t, "Erva de Cura", r.DisplayName("erva_cura"))
	assert.Equal(t, "unknown_item", r.DisplayName("unknown_item"))
}
