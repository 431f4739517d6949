package engine

// ====================
// Player-facing messages
// ====================

const (
	MsgFmtMoved          = "Você viaja para %s.\n\n%s"
	MsgFmtNoConnection   = "Não há caminho de %s até %s."
	MsgUnknownPlace      = "Você não conhece nenhum lugar com esse nome."
	MsgFmtNPCNotHere     = "Não há ninguém chamado %s por aqui."
	MsgWhoToTalk         = "Com quem você deseja falar?"
	MsgFmtDialogue       = "%s diz: \"%s\""
	MsgFmtQuestOffer     = "\n\n%s tem uma missão para você: %s — %s"
	MsgRestTooDangerous  = "Este lugar é perigoso demais para descansar. Procure um local mais seguro."
	MsgFmtRested         = "Você descansa por %d horas e acorda revigorado. Recuperou %d de vida e %d de mana. Já é %s."
	MsgWhatToEquip       = "O que você deseja equipar?"
	MsgWhatToUse         = "O que você deseja usar?"
	MsgFmtQuestCompleted = "\n\nMissão concluída: %s! Você recebeu %d de experiência e %d moedas de ouro."
	MsgFmtQuestUnlocked  = "\nNova missão disponível: %s."
	MsgFmtLevelUp        = "\n\nVocê subiu para o nível %d! Sua força aumenta e novas habilidades se revelam."
	MsgFmtRewardItem     = "\nVocê recebeu: %s."
	MsgNoQuests          = "Você não tem missões disponíveis no momento. Explore o mundo e converse com seus habitantes."
	MsgQuestsHeader      = "Missões disponíveis:\n"
	MsgFmtQuestLine      = "- %s (%s): %s\n"
	MsgCompletedHeader   = "\nMissões concluídas:\n"
	MsgFmtCompletedLine  = "- %s\n"

	MsgHelp = "Comandos disponíveis:\n" +
		"- ir para [lugar]: viajar para um local conectado\n" +
		"- falar com [personagem]: conversar com alguém no local\n" +
		"- olhar: examinar o local atual\n" +
		"- inventário: ver seus itens e ouro\n" +
		"- status: ver a ficha do seu personagem\n" +
		"- missões: ver suas missões\n" +
		"- descansar: recuperar vida e mana em um local seguro\n" +
		"- equipar [item]: equipar uma arma, armadura ou acessório\n" +
		"- usar [item]: usar um item consumível\n" +
		"Qualquer outra ação será interpretada livremente pelo narrador."

	MsgFmtEncounter = "\n\nNo caminho, %s surge e o ataca! Após uma luta intensa você o derrota, sofrendo %d de dano. Ganhou %d de experiência e %d moedas de ouro."

	PromptFmtFreeform = "O personagem %s, %s de nível %d, está em %s, %s. " +
		"O jogador diz: \"%s\". Narre o resultado dessa ação em português, mantendo o tom de fantasia medieval."

	MsgFmtStatus = "%s, %s de nível %d\n" +
		"Experiência: %d/%d\n" +
		"Vida: %d/%d\n" +
		"Mana: %d/%d\n" +
		"Força: %d | Inteligência: %d | Destreza: %d\n" +
		"Dia %d, %d horas."
)

// ====================
// Log messages
// ====================

const (
	LogMsgCommandReceived     = "command received"
	LogMsgLocationHealed      = "stale location reset to starting location"
	LogMsgQuestProgressHealed = "quest progress re-initialized"
	LogMsgCommandRejected     = "command rejected by content filter"
	LogMsgCommandPanic        = "command processing panic"
	LogMsgNarrativeFailed     = "narrative generation failed"
	LogMsgQuestCompleted      = "quest completed"
	LogMsgCharacterLeveled    = "character leveled up"

	LogMsgEventPublishFailed = "event publish failed"
)
