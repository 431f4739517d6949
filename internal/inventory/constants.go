package inventory

// Starting inventory values for fresh characters.
const (
	StartingGold      = 10
	StartingMaxWeight = 50.0
)

// ==================== Player-Facing Messages ====================

const (
	MsgItemNotInInventory = "Item não encontrado no inventário."
	MsgInventoryTooFull   = "Sua mochila está cheia demais para carregar isso."
	MsgEmptyInventory     = "  Nenhum item na mochila.\n"
	MsgInventoryBroken    = "Inventário vazio ou com problema."
	MsgNothingEquipped    = "Nada equipado"
)

// Format strings for player-facing messages
const (
	MsgFmtNotConsumable   = "%s não é um item consumível."
	MsgFmtUsedItem        = "Você usou %s. "
	MsgFmtHealthRestored  = "Recuperou %d pontos de saúde."
	MsgFmtManaRestored    = "Recuperou %d pontos de mana."
	MsgFmtNotEquippable   = "%s não pode ser equipado."
	MsgFmtEquipped        = "Equipou %s."
	MsgFmtLevelRequired   = "Nível %d necessário para equipar %s."
	MsgFmtStrengthNeeded  = "Força %d necessária para equipar %s."
	MsgFmtDexterityNeeded = "Destreza %d necessária para equipar %s."
	MsgFmtIntellectNeeded = "Inteligência %d necessária para equipar %s."
)

// Equipment slot display names
var slotDisplayNames = map[string]string{
	"weapon":    "Arma",
	"armor":     "Armadura",
	"accessory": "Acessório",
}

// ==================== Log Messages ====================

const (
	LogMsgItemAdded     = "Item added to inventory"
	LogMsgItemRemoved   = "Item removed from inventory"
	LogMsgItemUsed      = "Item consumed"
	LogMsgItemEquipped  = "Item equipped"
	LogMsgInventoryFull = "Inventory weight limit reached"
	LogMsgSelfHealed    = "Inventory blob was malformed, re-initialized"
)
