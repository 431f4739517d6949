package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/item"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
)

// Ledger applies inventory mutations against the item catalog. It owns
// the weight invariant: an inventory's CurrentWeight always equals the
// summed weight of carried plus equipped items.
type Ledger struct {
	items *item.Catalog
}

// NewLedger creates a ledger backed by the given catalog.
func NewLedger(items *item.Catalog) *Ledger {
	return &Ledger{items: items}
}

// Initialize returns a fresh empty inventory with the starting gold and
// weight budget.
func (l *Ledger) Initialize() domain.Inventory {
	return domain.Inventory{
		Gold:     StartingGold,
		Capacity: domain.Capacity{MaxWeight: StartingMaxWeight},
		Items:    make(map[string]int),
	}
}

// InitializeForClass returns a fresh inventory with the class starting
// equipment worn and starting items packed. Items unknown to the
// catalog are skipped; the registry validates them at startup, so a
// miss here means the catalog was swapped underneath.
func (l *Ledger) InitializeForClass(ctx context.Context, class domain.CharacterClass) domain.Inventory {
	inv := l.Initialize()

	for _, name := range class.StartingEquipment {
		it, ok := l.items.Get(name)
		if !ok || !it.Category.Equippable() {
			continue
		}
		if slot := inv.Equipped.Slot(string(it.Category)); slot != nil && *slot == "" {
			*slot = name
			inv.Capacity.CurrentWeight += it.Weight
		}
	}
	for _, name := range class.StartingInventory {
		_ = l.Add(ctx, &inv, name, 1)
	}

	return inv
}

// SelfHeal replaces a missing or malformed inventory blob with a fresh
// one and reports whether it had to.
func (l *Ledger) SelfHeal(ctx context.Context, inv *domain.Inventory) bool {
	if inv.Valid() {
		return false
	}
	logger.FromContext(ctx).Warn(LogMsgSelfHealed)
	*inv = l.Initialize()
	return true
}

// Add puts quantity of an item into the inventory. Fails with
// ErrItemNotFound for unknown items and ErrInventoryFull when the
// weight budget would be exceeded.
func (l *Ledger) Add(ctx context.Context, inv *domain.Inventory, internalName string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity %d", domain.ErrInvalidInput, quantity)
	}
	it, ok := l.items.Get(internalName)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, internalName)
	}

	addedWeight := it.Weight * float64(quantity)
	if inv.Capacity.CurrentWeight+addedWeight > inv.Capacity.MaxWeight {
		logger.FromContext(ctx).Info(LogMsgInventoryFull,
			"item", internalName, "quantity", quantity)
		return fmt.Errorf("%w: %s", domain.ErrInventoryFull, internalName)
	}

	inv.Items[internalName] += quantity
	inv.Capacity.CurrentWeight += addedWeight

	logger.FromContext(ctx).Debug(LogMsgItemAdded,
		"item", internalName, "quantity", quantity)
	return nil
}

// Remove takes quantity of an item out of the inventory. The entry is
// deleted when it reaches zero.
func (l *Ledger) Remove(ctx context.Context, inv *domain.Inventory, internalName string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity %d", domain.ErrInvalidInput, quantity)
	}
	held := inv.Quantity(internalName)
	if held == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, internalName)
	}
	if held < quantity {
		return fmt.Errorf("%w: %s has %d, want %d", domain.ErrInsufficientQuantity, internalName, held, quantity)
	}

	inv.Items[internalName] -= quantity
	if inv.Items[internalName] <= 0 {
		delete(inv.Items, internalName)
	}
	if it, ok := l.items.Get(internalName); ok {
		inv.Capacity.CurrentWeight -= it.Weight * float64(quantity)
		if inv.Capacity.CurrentWeight < 0 {
			inv.Capacity.CurrentWeight = 0
		}
	}

	logger.FromContext(ctx).Debug(LogMsgItemRemoved,
		"item", internalName, "quantity", quantity)
	return nil
}

// AddGold credits gold to the inventory.
func (l *Ledger) AddGold(inv *domain.Inventory, amount int) {
	if amount > 0 {
		inv.Gold += amount
	}
}

// SpendGold debits gold, failing with ErrInsufficientFunds when the
// balance does not cover it.
func (l *Ledger) SpendGold(inv *domain.Inventory, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
	}
	if inv.Gold < amount {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, inv.Gold, amount)
	}
	inv.Gold -= amount
	return nil
}

// Use consumes one of an item and applies its restore effects to the
// character. The returned message is player-facing Portuguese either
// way; the error carries the machine-readable cause.
func (l *Ledger) Use(ctx context.Context, inv *domain.Inventory, char *domain.Character, internalName string) (string, error) {
	if inv.Quantity(internalName) == 0 {
		return MsgItemNotInInventory, fmt.Errorf("%w: %s", domain.ErrItemNotFound, internalName)
	}
	it, ok := l.items.Get(internalName)
	if !ok {
		return MsgItemNotInInventory, fmt.Errorf("%w: %s", domain.ErrItemNotFound, internalName)
	}
	if !it.Consumable {
		return fmt.Sprintf(MsgFmtNotConsumable, it.Name), fmt.Errorf("%w: %s", domain.ErrInvalidInput, internalName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, MsgFmtUsedItem, it.Name)

	if char != nil {
		if it.Stats.HealthRestore > 0 {
			char.RestoreHealth(it.Stats.HealthRestore)
			fmt.Fprintf(&b, MsgFmtHealthRestored, it.Stats.HealthRestore)
		}
		if it.Stats.ManaRestore > 0 {
			char.RestoreMana(it.Stats.ManaRestore)
			fmt.Fprintf(&b, MsgFmtManaRestored, it.Stats.ManaRestore)
		}
	}

	if err := l.Remove(ctx, inv, internalName, 1); err != nil {
		return MsgItemNotInInventory, err
	}

	logger.FromContext(ctx).Info(LogMsgItemUsed, "item", internalName)
	return b.String(), nil
}

// Equip moves an item from the pack to its equipment slot, swapping any
// previously worn item back into the pack. Requirements are checked
// against the character when one is given.
func (l *Ledger) Equip(ctx context.Context, inv *domain.Inventory, char *domain.Character, internalName string) (string, error) {
	if inv.Quantity(internalName) == 0 {
		return MsgItemNotInInventory, fmt.Errorf("%w: %s", domain.ErrItemNotFound, internalName)
	}
	it, ok := l.items.Get(internalName)
	if !ok {
		return MsgItemNotInInventory, fmt.Errorf("%w: %s", domain.ErrItemNotFound, internalName)
	}
	if !it.Category.Equippable() {
		return fmt.Sprintf(MsgFmtNotEquippable, it.Name), fmt.Errorf("%w: %s", domain.ErrNotEquippable, internalName)
	}

	if char != nil {
		if msg, ok := l.meetsRequirements(it, char); !ok {
			return msg, fmt.Errorf("%w: %s", domain.ErrRequirementsNotMet, internalName)
		}
	}

	slot := inv.Equipped.Slot(string(it.Category))
	if slot == nil {
		return fmt.Sprintf(MsgFmtNotEquippable, it.Name), fmt.Errorf("%w: %s", domain.ErrNotEquippable, internalName)
	}

	// Swap out the current occupant; weight stays counted either way.
	if *slot != "" {
		inv.Items[*slot]++
	}
	*slot = internalName
	inv.Items[internalName]--
	if inv.Items[internalName] <= 0 {
		delete(inv.Items, internalName)
	}

	logger.FromContext(ctx).Info(LogMsgItemEquipped, "item", internalName, "slot", string(it.Category))
	return fmt.Sprintf(MsgFmtEquipped, it.Name), nil
}

func (l *Ledger) meetsRequirements(it domain.Item, char *domain.Character) (string, bool) {
	req := it.Requirements
	switch {
	case req.Level > 0 && char.Level < req.Level:
		return fmt.Sprintf(MsgFmtLevelRequired, req.Level, it.Name), false
	case req.Strength > 0 && char.Strength < req.Strength:
		return fmt.Sprintf(MsgFmtStrengthNeeded, req.Strength, it.Name), false
	case req.Dexterity > 0 && char.Dexterity < req.Dexterity:
		return fmt.Sprintf(MsgFmtDexterityNeeded, req.Dexterity, it.Name), false
	case req.Intelligence > 0 && char.Intelligence < req.Intelligence:
		return fmt.Sprintf(MsgFmtIntellectNeeded, req.Intelligence, it.Name), false
	}
	return "", true
}

// Summary renders the player-facing inventory listing: gold, weight,
// equipped slots, then items grouped by category.
func (l *Ledger) Summary(inv *domain.Inventory) string {
	if inv == nil || !inv.Valid() {
		return MsgInventoryBroken
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ouro: %d\n", inv.Gold)
	fmt.Fprintf(&b, "Peso: %.1f/%.1f\n\n", inv.Capacity.CurrentWeight, inv.Capacity.MaxWeight)

	b.WriteString("Equipado:\n")
	for _, slot := range []string{domain.SlotWeapon, domain.SlotArmor, domain.SlotAccessory} {
		worn := *inv.Equipped.Slot(slot)
		label := slotDisplayNames[slot]
		if worn != "" {
			fmt.Fprintf(&b, "  %s: %s\n", label, l.items.DisplayName(worn))
		} else {
			fmt.Fprintf(&b, "  %s: %s\n", label, MsgNothingEquipped)
		}
	}

	b.WriteString("\nItens:\n")
	if len(inv.Items) == 0 {
		b.WriteString(MsgEmptyInventory)
		return b.String()
	}

	byCategory := make(map[domain.ItemCategory][]string)
	for name := range inv.Items {
		it, ok := l.items.Get(name)
		if !ok {
			continue
		}
		byCategory[it.Category] = append(byCategory[it.Category], name)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, string(cat))
	}
	sort.Strings(categories)

	for _, cat := range categories {
		label := item.CategoryDisplayNames[domain.ItemCategory(cat)]
		fmt.Fprintf(&b, "  %s:\n", label)

		names := byCategory[domain.ItemCategory(cat)]
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "    %s (x%d)\n", l.items.DisplayName(name), inv.Items[name])
		}
	}

	return b.String()
}
