package world

// ==================== Player-Facing Messages ====================

// Fallback strings for unknown references
const (
	MsgUnknownLocation  = "Este lugar não existe no mundo conhecido."
	MsgUnknownImage     = "Um lugar misterioso e desconhecido."
	MsgSilentDialogue   = "..."
	MsgImagePromptStyle = " Cena de jogo RPG, ambientação de fantasia."
)

// Description fragments appended per time of day
const (
	DescMorning   = " A luz dourada da manhã ilumina o local."
	DescAfternoon = " O sol do meio-dia brilha intensamente."
	DescEvening   = " A luz alaranjada do pôr do sol cria sombras longas."
	DescNight     = " A escuridão da noite envolve tudo, iluminada apenas por estrelas e ocasionais lanternas."
)

// Image prompt fragments appended per time of day
const (
	ImgMorning   = " Iluminado pela luz dourada da manhã."
	ImgAfternoon = " Sob o sol forte do meio-dia."
	ImgEvening   = " Banhado pela luz alaranjada do pôr do sol."
	ImgNight     = " Envolto pela escuridão da noite, iluminado por estrelas e ocasionais lanternas."
)

// Dialogue placeholder tokens
const (
	TokenCharacterName  = "{character_name}"
	TokenCharacterClass = "{character_class}"
)

// ServiceDisplayNames maps service identifiers to player-facing labels.
var ServiceDisplayNames = map[string]string{
	"inn":        "uma estalagem",
	"shop":       "uma loja",
	"blacksmith": "uma ferraria",
	"healer":     "um curandeiro",
	"guild":      "um salão de guilda",
	"dock":       "um porto",
	"oracle":     "um oráculo",
}

// ==================== Error Messages ====================

const (
	ErrMsgNoLocations            = "no locations defined"
	ErrMsgStartingLocationAbsent = "starting location not defined"
)

// Format strings used with fmt.Errorf for validation errors
const (
	ErrFmtUnknownConnection    = "%w: location '%s' connects to unknown location '%s'"
	ErrFmtUnknownLocationNPC   = "%w: location '%s' lists unknown npc '%s'"
	ErrFmtUnknownLocationEnemy = "%w: location '%s' lists unknown enemy '%s'"
	ErrFmtUnknownNPCLocation   = "%w: npc '%s' placed in unknown location '%s'"
	ErrFmtUnknownEnemyLocation = "%w: enemy '%s' roams unknown location '%s'"
	ErrFmtUnknownNPCItem       = "%w: npc '%s' stocks unknown item '%s'"
	ErrFmtUnknownLootItem      = "%w: enemy '%s' drops unknown item '%s'"
	ErrFmtUnknownClassItem     = "%w: class '%s' references unknown item '%s'"
	ErrFmtBadLootChance        = "%w: enemy '%s' loot chance for '%s' outside [0, 1]"
	ErrFmtDuplicateLocation    = "%w: duplicate location '%s'"
	ErrFmtDuplicateNPC         = "%w: duplicate npc '%s'"
	ErrFmtDuplicateEnemy       = "%w: duplicate enemy '%s'"
	ErrFmtDuplicateClass       = "%w: duplicate class '%s'"
)
