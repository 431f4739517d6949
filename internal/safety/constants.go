package safety

// Content rating targeted by every generated narration.
const (
	AgeRating     = "12+"
	ViolenceLevel = "moderado"
	LanguageLevel = "leve"
)

// Standard responses for rejected player input
const (
	RejectionGeneral      = "Sua solicitação não pode ser processada pois contém conteúdo inadequado para este jogo. Por favor, tente novamente com uma abordagem diferente."
	RejectionViolent      = "Sua solicitação contém violência excessiva que vai além da temática do jogo. Por favor, tente uma abordagem mais adequada para um jogo de fantasia medieval."
	RejectionOffensive    = "Seu comando contém linguagem ofensiva ou inapropriada. Este jogo é destinado a ser uma experiência positiva e inclusiva para todos."
	RejectionOutOfContext = "Sua solicitação se afasta demais do tema de fantasia medieval deste jogo. Por favor, mantenha suas ações dentro do contexto do mundo do jogo."
)

// Replacement tokens used when redacting generated text
const (
	RedactedContent   = "[conteúdo removido]"
	SoftenedTerm      = "[termo suavizado]"
	CombatPlaceholder = "[descrição de combate]"
	ReplacedResponse  = "A resposta gerada continha conteúdo inadequado e foi substituída. O narrador descreve uma cena apropriada para o tema do jogo."
)

// Image prompt handling
const (
	ImagePromptMaxLen    = 200
	SafeImageFallback    = "Cena de fantasia apropriada para o jogo"
	SafeImagePromptStyle = "Cena de RPG medieval fantástico, estilo artístico de jogo: "
)

// Prompt wrapping fragments
const (
	PromptSafetyPrefix = "Gere uma resposta que seja adequada para um jogo de RPG de fantasia medieval com classificação 12+. " +
		"Evite conteúdo sexual, violência gráfica excessiva, linguagem obscena, e temas adultos explícitos. " +
		"Mantenha o conteúdo apropriado para adolescentes com violência de fantasia moderada semelhante a um " +
		"livro ou filme de aventura de classificação 12+. " +
		"Responda como um narrador de RPG ao seguinte cenário: "

	PromptSafetySuffix = "\n\nLembre-se de manter sua resposta adequada para um jogo de RPG com classificação 12+, " +
		"evitando violência gráfica, conteúdo sexual, linguagem obscena ou temas adultos explícitos."
)

// SystemMessage is the narrator instruction sent with every generation
// request.
const SystemMessage = "Você é um narrador de jogos de RPG de fantasia medieval que cria conteúdo adequado para jogadores " +
	"de 12 anos ou mais. Você deve seguir estas diretrizes estritamente:\n" +
	"1. Evite completamente qualquer conteúdo sexual ou sugestivo\n" +
	"2. Descreva apenas violência de fantasia moderada, nunca gráfica ou excessiva\n" +
	"3. Evite linguagem obscena ou palavrões\n" +
	"4. Não inclua temas adultos explícitos como uso de drogas, suicídio, ou abuso\n" +
	"5. Mantenha um tom de aventura e fantasia adequado para adolescentes\n" +
	"6. Foque em temas como heroísmo, amizade, superação de desafios e exploração\n" +
	"7. Se receber pedidos inadequados, redirecione para ações apropriadas ao jogo\n\n" +
	"Você deve ser criativo e envolvente, mas sempre dentro dessas diretrizes de segurança."

// ==================== Log Messages ====================

const (
	LogMsgInputRejected      = "Player input rejected"
	LogMsgResponseRedacted   = "Generated response redacted"
	LogMsgImagePromptBlocked = "Image prompt blocked"
	LogMsgMetapromptRemoved  = "Removed metaprompt term from image prompt"
	LogMsgPromptTruncated    = "Truncated long image prompt"
	LogMsgTermAdded          = "Filter term added"
	LogMsgTermRemoved        = "Filter term removed"
)
