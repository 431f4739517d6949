package discord

// ====================
// Player-facing messages
// ====================

const (
	MsgNoCharacter = "Você ainda não tem um personagem. Crie um com `%s criar <classe> <nome>`. Classes: guerreiro, mago, ladino, caçador."

	MsgFmtCharacterCreated = "%s, %s de nível 1, entra no mundo em %s. Boa sorte!"

	MsgFmtCreateUsage = "Uso: `%s criar <classe> <nome>`"

	MsgCommandFailed = "O oráculo não respondeu. Tente novamente em instantes."

	MsgCreateFailed = "Não foi possível criar o personagem. Verifique a classe e o nome."
)

// ====================
// Defaults
// ====================

const (
	// DefaultPrefix marks messages addressed to the bot
	DefaultPrefix = "!rpg"

	// MaxMessageLength is Discord's hard limit per message
	MaxMessageLength = 2000
)

// ====================
// Log messages
// ====================

const (
	LogMsgBotReady        = "Discord bot ready"
	LogMsgBotRunning      = "Discord bot is now running"
	LogMsgCommandReceived = "Discord command received"
	LogMsgCommandFailed   = "Discord command failed"
	LogMsgReplyFailed     = "Failed to send Discord reply"
)
