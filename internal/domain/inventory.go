package domain

// Equipment slot names.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotAccessory = "accessory"
)

// Capacity tracks the weight budget of an inventory. CurrentWeight must
// always equal the summed weight of carried plus equipped items.
type Capacity struct {
	MaxWeight     float64 `json:"max_weight"`
	CurrentWeight float64 `json:"current_weight"`
}

// Equipped holds the item occupying each equipment slot, empty when the
// slot is free. Equipped items are not counted in the Items map.
type Equipped struct {
	Weapon    string `json:"weapon,omitempty"`
	Armor     string `json:"armor,omitempty"`
	Accessory string `json:"accessory,omitempty"`
}

// Slot returns a pointer to the named slot, or nil for an unknown name.
func (e *Equipped) Slot(name string) *string {
	switch name {
	case SlotWeapon:
		return &e.Weapon
	case SlotArmor:
		return &e.Armor
	case SlotAccessory:
		return &e.Accessory
	}
	return nil
}

// Inventory is the per-character mutable container, persisted as a JSONB
// blob on the game state. Items maps item internal name to quantity;
// entries are deleted when quantity reaches zero, never kept at zero.
type Inventory struct {
	Gold     int            `json:"gold"`
	Capacity Capacity       `json:"capacity"`
	Equipped Equipped       `json:"equipped"`
	Items    map[string]int `json:"items"`
}

// Quantity returns the carried quantity of an item, zero when absent.
func (inv *Inventory) Quantity(internalName string) int {
	return inv.Items[internalName]
}

// Valid reports whether the inventory has the shape required by the
// ledger; a false result means the blob was missing or malformed and the
// inventory must be re-initialized.
func (inv *Inventory) Valid() bool {
	return inv != nil && inv.Items != nil && inv.Capacity.MaxWeight > 0
}
