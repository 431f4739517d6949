package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/item"
)

func testLedger() *Ledger {
	return NewLedger(item.DefaultCatalog())
}

func TestInitialize(t *testing.T) {
	inv := testLedger().Initialize()

	assert.Equal(t, StartingGold, inv.Gold)
	assert.Equal(t, StartingMaxWeight, inv.Capacity.MaxWeight)
	assert.Zero(t, inv.Capacity.CurrentWeight)
	assert.Empty(t, inv.Items)
	assert.True(t, inv.Valid())
}

func TestInitializeForClass_EquipsAndPacks(t *testing.T) {
	ledger := testLedger()
	class := domain.CharacterClass{
		ID:                "warrior",
		StartingEquipment: []string{"espada_simples", "armadura_couro"},
		StartingInventory: []string{"pocao_cura_menor", "pocao_cura_menor"},
	}

	inv := ledger.InitializeForClass(context.Background(), class)

	assert.Equal(t, "espada_simples", inv.Equipped.Weapon)
	assert.Equal(t, "armadura_couro", inv.Equipped.Armor)
	assert.Equal(t, 2, inv.Quantity("pocao_cura_menor"))
	// sword 3 + armor 4 + two potions 0.5 each
	assert.InDelta(t, 8.0, inv.Capacity.CurrentWeight, 0.001)
}

func TestAdd_TracksWeight(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, &inv, "espada_simples", 1))
	require.NoError(t, ledger.Add(ctx, &inv, "pocao_cura_menor", 4))

	assert.Equal(t, 1, inv.Quantity("espada_simples"))
	assert.Equal(t, 4, inv.Quantity("pocao_cura_menor"))
	assert.InDelta(t, 5.0, inv.Capacity.CurrentWeight, 0.001)
}

func TestAdd_UnknownItem(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()

	err := ledger.Add(context.Background(), &inv, "excalibur", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAdd_RejectsOverweight(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	inv.Capacity.MaxWeight = 5
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, &inv, "espada_simples", 1))

	err := ledger.Add(ctx, &inv, "armadura_couro", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInventoryFull)

	// Nothing changed on the failed add
	assert.Equal(t, 0, inv.Quantity("armadura_couro"))
	assert.InDelta(t, 3.0, inv.Capacity.CurrentWeight, 0.001)
}

func TestRemove_DeletesEmptyEntries(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, &inv, "tocha", 3))
	require.NoError(t, ledger.Remove(ctx, &inv, "tocha", 3))

	_, present := inv.Items["tocha"]
	assert.False(t, present)
	assert.InDelta(t, 0.0, inv.Capacity.CurrentWeight, 0.001)
}

func TestRemove_InsufficientQuantity(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, &inv, "tocha", 1))

	err := ledger.Remove(ctx, &inv, "tocha", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, 1, inv.Quantity("tocha"))

	err = ledger.Remove(ctx, &inv, "corda", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUse_ConsumesAndRestores(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()
	char := &domain.Character{Health: 50, MaxHealth: 100, Mana: 30, MaxMana: 100}

	require.NoError(t, ledger.Add(ctx, &inv, "pocao_cura_menor", 1))

	msg, err := ledger.Use(ctx, &inv, char, "pocao_cura_menor")
	require.NoError(t, err)
	assert.Contains(t, msg, "Você usou Poção de Cura Menor")
	assert.Contains(t, msg, "Recuperou 20 pontos de saúde")
	assert.Equal(t, 70, char.Health)
	assert.Equal(t, 0, inv.Quantity("pocao_cura_menor"))
}

func TestUse_ClampsAtMax(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()
	char := &domain.Character{Health: 95, MaxHealth: 100}

	require.NoError(t, ledger.Add(ctx, &inv, "pocao_cura_menor", 1))

	_, err := ledger.Use(ctx, &inv, char, "pocao_cura_menor")
	require.NoError(t, err)
	assert.Equal(t, 100, char.Health)
}

func TestUse_NotConsumable(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, &inv, "espada_simples", 1))

	msg, err := ledger.Use(ctx, &inv, nil, "espada_simples")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Espada Simples não é um item consumível.", msg)
	assert.Equal(t, 1, inv.Quantity("espada_simples"))
}

func TestEquip_SwapsSlotOccupant(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()
	char := &domain.Character{Level: 1, Strength: 8, Dexterity: 5, Intelligence: 3}

	require.NoError(t, ledger.Add(ctx, &inv, "espada_simples", 1))
	require.NoError(t, ledger.Add(ctx, &inv, "adaga", 1))

	msg, err := ledger.Equip(ctx, &inv, char, "espada_simples")
	require.NoError(t, err)
	assert.Equal(t, "Equipou Espada Simples.", msg)
	assert.Equal(t, "espada_simples", inv.Equipped.Weapon)
	assert.Equal(t, 0, inv.Quantity("espada_simples"))

	// Equipping the dagger returns the sword to the pack
	_, err = ledger.Equip(ctx, &inv, char, "adaga")
	require.NoError(t, err)
	assert.Equal(t, "adaga", inv.Equipped.Weapon)
	assert.Equal(t, 1, inv.Quantity("espada_simples"))

	// Weight stays constant through swaps
	assert.InDelta(t, 4.0, inv.Capacity.CurrentWeight, 0.001)
}

func TestEquip_RequirementsNotMet(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()
	char := &domain.Character{Level: 1, Strength: 2}

	require.NoError(t, ledger.Add(ctx, &inv, "espada_simples", 1))

	msg, err := ledger.Equip(ctx, &inv, char, "espada_simples")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequirementsNotMet)
	assert.Equal(t, "Força 3 necessária para equipar Espada Simples.", msg)
	assert.Empty(t, inv.Equipped.Weapon)
	assert.Equal(t, 1, inv.Quantity("espada_simples"))
}

func TestEquip_NotEquippable(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, &inv, "tocha", 1))

	_, err := ledger.Equip(ctx, &inv, nil, "tocha")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEquippable)
}

func TestSpendGold(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()

	require.NoError(t, ledger.SpendGold(&inv, 6))
	assert.Equal(t, 4, inv.Gold)

	err := ledger.SpendGold(&inv, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 4, inv.Gold)

	ledger.AddGold(&inv, 10)
	assert.Equal(t, 14, inv.Gold)
}

func TestSummary(t *testing.T) {
	ledger := testLedger()
	inv := ledger.Initialize()
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, &inv, "pocao_cura_menor", 2))
	require.NoError(t, ledger.Add(ctx, &inv, "espada_simples", 1))
	_, err := ledger.Equip(ctx, &inv, nil, "espada_simples")
	require.NoError(t, err)

	summary := ledger.Summary(&inv)
	assert.Contains(t, summary, "Ouro: 10")
	assert.Contains(t, summary, "Arma: Espada Simples")
	assert.Contains(t, summary, "Armadura: Nada equipado")
	assert.Contains(t, summary, "Poção:")
	assert.Contains(t, summary, "Poção de Cura Menor (x2)")
}

func TestSummary_MalformedInventory(t *testing.T) {
	ledger := testLedger()

	assert.Equal(t, MsgInventoryBroken, ledger.Summary(nil))
	assert.Equal(t, MsgInventoryBroken, ledger.Summary(&domain.Inventory{}))
}

func TestSelfHeal(t *testing.T) {
	ledger := testLedger()
	ctx := context.Background()

	broken := domain.Inventory{}
	assert.True(t, ledger.SelfHeal(ctx, &broken))
	assert.True(t, broken.Valid())
	assert.Equal(t, StartingGold, broken.Gold)

	healthy := ledger.Initialize()
	healthy.Gold = 99
	assert.False(t, ledger.SelfHeal(ctx, &healthy))
	assert.Equal(t, 99, healthy.Gold)
}
