package world

import (
	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/item"
)

// DefaultConfig returns the built-in world of Eldoria.
func DefaultConfig() Config {
	return Config{
		Name:             "Terras de Eldoria",
		Description:      "Um reino de fantasia medieval com diversas regiões, desde vilas pacíficas até florestas sombrias e montanhas misteriosas.",
		StartingLocation: "Meadowbrook",
		Rules:            DefaultRules(),
		Classes:          defaultClasses(),
		Locations:        defaultLocations(),
		NPCs:             defaultNPCs(),
		Enemies:          defaultEnemies(),
		Items:            item.DefaultCatalog(),
	}
}

// DefaultRegistry builds the built-in world. The data is static, a
// failure here is a programming error.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return r
}

func defaultClasses() []domain.CharacterClass {
	return []domain.CharacterClass{
		{
			ID:          "warrior",
			Name:        "Guerreiro",
			Description: "Especialistas em combate corpo a corpo e resistência física.",
			BaseStats: domain.ClassBaseStats{
				Health: 120, Mana: 50, Strength: 8, Intelligence: 3, Dexterity: 5,
			},
			Abilities:         []string{"Golpe Poderoso", "Defesa Firme"},
			StartingEquipment: []string{"espada_simples", "armadura_couro"},
			StartingInventory: []string{"pocao_cura_menor", "pocao_cura_menor"},
		},
		{
			ID:          "mage",
			Name:        "Mago",
			Description: "Mestres da magia arcana e conhecimento.",
			BaseStats: domain.ClassBaseStats{
				Health: 70, Mana: 120, Strength: 3, Intelligence: 10, Dexterity: 4,
			},
			Abilities:         []string{"Bola de Fogo", "Escudo Arcano"},
			StartingEquipment: []string{"cajado_aprendiz", "robe_mago"},
			StartingInventory: []string{"pocao_mana_menor", "pocao_mana_menor"},
		},
		{
			ID:          "ranger",
			Name:        "Caçador",
			Description: "Especialistas em combate à distância e sobrevivência na natureza.",
			BaseStats: domain.ClassBaseStats{
				Health: 90, Mana: 70, Strength: 5, Intelligence: 5, Dexterity: 8,
			},
			Abilities:         []string{"Tiro Certeiro", "Rastreamento"},
			StartingEquipment: []string{"arco_curto", "armadura_couro"},
			StartingInventory: []string{"pocao_cura_menor", "pocao_mana_menor"},
		},
	}
}

func defaultLocations() []domain.Location {
	return []domain.Location{
		{
			ID:               "Meadowbrook",
			Name:             "Meadowbrook",
			Description:      "Uma vila pacífica com casas de telhado de palha e moradores amigáveis. Cercada por campos verdejantes e próxima a um riacho cristalino.",
			Type:             domain.LocationVillage,
			Connections:      []string{"Floresta Sombria", "Estrada do Comércio", "Colinas do Norte"},
			NPCs:             []string{"mestre_vila", "prefeito_galen", "comerciante", "ferreiro", "curandeira"},
			Services:         []string{"inn", "shop", "blacksmith", "healer"},
			Quests:           []string{"sq001", "sq002", "mq001"},
			DangerLevel:      1,
			ImageDescription: "Uma vila pacífica com casas de telhado de palha e moradores amigáveis.",
		},
		{
			ID:               "Floresta Sombria",
			Name:             "Floresta Sombria",
			Description:      "Uma densa floresta onde a luz do sol mal penetra através da cobertura das árvores. Ruídos estranhos podem ser ouvidos entre as sombras.",
			Type:             domain.LocationWilderness,
			Connections:      []string{"Meadowbrook", "Ruínas de Eldrath", "Pântano Nebuloso"},
			NPCs:             []string{"druida_eremita"},
			Enemies:          []string{"lobo", "bandido", "aranha_gigante"},
			DangerLevel:      3,
			ImageDescription: "Uma densa floresta onde a luz do sol mal penetra através da cobertura das árvores. Sombrio e misterioso.",
		},
		{
			ID:               "Estrada do Comércio",
			Name:             "Estrada do Comércio",
			Description:      "Uma estrada bem percorrida que conecta várias aldeias e cidades. Mercadores e viajantes são vistos frequentemente.",
			Type:             domain.LocationRoad,
			Connections:      []string{"Meadowbrook", "Portus", "Encruzilhada"},
			NPCs:             []string{"mercador_ambulante", "guarda_estrada"},
			Enemies:          []string{"bandido", "lobo"},
			DangerLevel:      2,
			ImageDescription: "Uma estrada bem percorrida com mercadores e viajantes. Campos abertos.",
		},
		{
			ID:               "Portus",
			Name:             "Portus",
			Description:      "Uma cidade portuária movimentada com navios de todos os cantos do mundo. O ar tem cheiro de sal e aventura.",
			Type:             domain.LocationCity,
			Connections:      []string{"Estrada do Comércio", "Costa Tempestuosa"},
			NPCs:             []string{"mestre_guilda", "capitao_navio", "mercador_exotico"},
			Services:         []string{"inn", "shop", "guild", "dock"},
			DangerLevel:      1,
			ImageDescription: "Uma cidade portuária movimentada com navios, docas e mercados. Pessoas de várias culturas.",
		},
		{
			ID:               "Colinas do Norte",
			Name:             "Colinas do Norte",
			Description:      "Colinas verdejantes que ficam cada vez mais íngremes conforme se aproximam das montanhas. Pastores e fazendeiros vivem em pequenas propriedades.",
			Type:             domain.LocationWilderness,
			Connections:      []string{"Meadowbrook", "Montanhas do Norte", "Prados do Leste"},
			NPCs:             []string{"pastor", "minerador"},
			Enemies:          []string{"lobo", "urso"},
			DangerLevel:      2,
			ImageDescription: "Colinas verdejantes com algumas fazendas espalhadas. Montanhas são visíveis ao fundo.",
		},
		{
			ID:               "Montanhas do Norte",
			Name:             "Montanhas do Norte",
			Description:      "Altas montanhas cobertas de neve, com passagens estreitas e perigosas. Dizem que criaturas antigas vivem nas cavernas profundas.",
			Type:             domain.LocationMountains,
			Connections:      []string{"Colinas do Norte", "Vale do Oráculo"},
			NPCs:             []string{"guia_montanha"},
			Enemies:          []string{"troll_montanha", "urso", "lobo_da_neve"},
			DangerLevel:      4,
			ImageDescription: "Altas montanhas cobertas de neve, com passagens estreitas. Terreno perigoso e clima severo.",
		},
		{
			ID:               "Vale do Oráculo",
			Name:             "Vale do Oráculo",
			Description:      "Um vale misterioso entre as montanhas, onde névoa paira constantemente. No centro está o Templo do Oráculo.",
			Type:             domain.LocationSpecial,
			Connections:      []string{"Montanhas do Norte"},
			NPCs:             []string{"oraculo", "guardiao_templo"},
			Services:         []string{"oracle"},
			Quests:           []string{"mq002"},
			DangerLevel:      2,
			ImageDescription: "Um vale misterioso com névoa constante. Um templo antigo no centro.",
		},
		{
			ID:               "Ruínas de Eldrath",
			Name:             "Ruínas de Eldrath",
			Description:      "Ruínas de uma antiga civilização, agora cobertas de vegetação e habitadas por criaturas perigosas. Artefatos valiosos podem estar escondidos aqui.",
			Type:             domain.LocationRuins,
			Connections:      []string{"Floresta Sombria"},
			Enemies:          []string{"esqueleto", "cultista", "construto_antigo"},
			DangerLevel:      5,
			ImageDescription: "Ruínas de uma antiga civilização, com colunas caídas e estruturas de pedra cobertas de vegetação.",
		},
		{
			ID:               "Pântano Nebuloso",
			Name:             "Pântano Nebuloso",
			Description:      "Um pântano coberto por névoa densa, onde árvores retorcidas emergem de águas escuras. O chão cede sob passos descuidados.",
			Type:             domain.LocationSwamp,
			Connections:      []string{"Floresta Sombria"},
			Enemies:          []string{"aranha_gigante", "cultista"},
			DangerLevel:      4,
			ImageDescription: "Um pântano coberto por névoa densa, com árvores retorcidas e águas escuras.",
		},
		{
			ID:               "Encruzilhada",
			Name:             "Encruzilhada",
			Description:      "Um cruzamento de estradas marcado por um velho poste de sinalização. Viajantes de todas as direções param aqui para descansar.",
			Type:             domain.LocationRoad,
			Connections:      []string{"Estrada do Comércio", "Prados do Leste"},
			NPCs:             []string{"mercador_ambulante"},
			Enemies:          []string{"bandido"},
			DangerLevel:      2,
			ImageDescription: "Um cruzamento de estradas com um velho poste de sinalização e campos ao redor.",
		},
		{
			ID:               "Costa Tempestuosa",
			Name:             "Costa Tempestuosa",
			Description:      "Falésias escarpadas batidas por ondas violentas. Ventos fortes carregam o grito das gaivotas e histórias de naufrágios.",
			Type:             domain.LocationCoast,
			Connections:      []string{"Portus"},
			Enemies:          []string{"bandido"},
			DangerLevel:      3,
			ImageDescription: "Falésias escarpadas batidas por ondas violentas sob um céu de tempestade.",
		},
		{
			ID:               "Prados do Leste",
			Name:             "Prados do Leste",
			Description:      "Campos abertos de grama alta ondulando ao vento. Rebanhos pastam sob o olhar atento de pastores solitários.",
			Type:             domain.LocationWilderness,
			Connections:      []string{"Colinas do Norte", "Encruzilhada"},
			NPCs:             []string{"pastor"},
			Enemies:          []string{"lobo"},
			DangerLevel:      1,
			ImageDescription: "Campos abertos de grama alta ondulando ao vento, com rebanhos ao longe.",
		},
	}
}

func defaultNPCs() []domain.NPC {
	return []domain.NPC{
		{
			ID:          "mestre_vila",
			Name:        "Ancião Thorne",
			Description: "Um homem idoso com barba branca e olhos sábios. É o líder respeitado de Meadowbrook e conhece muitas histórias antigas.",
			Role:        "leader",
			Location:    "Meadowbrook",
			Quests:      []string{"mq001"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:   "Bem-vindo, viajante. Meadowbrook é um lugar pacífico, mas temo que tempos difíceis se aproximam.",
				domain.DialogueFarewell:   "Que os deuses guiem seus passos, aventureiro.",
				domain.DialogueQuestOffer: "Tenho algo importante a pedir a alguém de coragem...",
			},
		},
		{
			ID:          "prefeito_galen",
			Name:        "Prefeito Galen",
			Description: "Um homem de meia-idade com roupas bem cuidadas e ar preocupado. Administra Meadowbrook e cuida dos fazendeiros da região.",
			Role:        "leader",
			Location:    "Meadowbrook",
			Quests:      []string{"sq001"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:   "Saudações, {character_name}. Espero que sua visita a Meadowbrook seja tranquila.",
				domain.DialogueFarewell:   "Boa viagem, e cuidado nas estradas.",
				domain.DialogueQuestOffer: "Um lobo feroz tem atacado os rebanhos. Pago bem a quem resolver o problema.",
			},
		},
		{
			ID:          "comerciante",
			Name:        "Elias",
			Description: "Um homem rechonchudo com um sorriso amigável. Vende de tudo um pouco em sua loja bem abastecida.",
			Role:        "merchant",
			Location:    "Meadowbrook",
			Services:    []string{"buy", "sell"},
			Inventory:   []string{"pocao_cura_menor", "pocao_mana_menor", "corda", "tocha", "comida"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:    "Bem-vindo à minha humilde loja! Tenho tudo que um aventureiro precisa.",
				domain.DialogueFarewell:    "Volte sempre! Meus preços são os melhores da região.",
				domain.DialogueTransaction: "É um prazer fazer negócios com você.",
			},
		},
		{
			ID:          "ferreiro",
			Name:        "Gorric",
			Description: "Um homem musculoso com braços fortes de anos trabalhando na forja. Sua barba tem marcas de queimaduras.",
			Role:        "blacksmith",
			Location:    "Meadowbrook",
			Services:    []string{"repair", "craft", "buy", "sell"},
			Inventory:   []string{"espada_simples", "armadura_couro", "adaga", "escudo"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:    "Precisa de uma lâmina afiada ou uma armadura resistente?",
				domain.DialogueFarewell:    "Que suas armas sempre estejam afiadas, amigo.",
				domain.DialogueTransaction: "Uma peça de qualidade. Use-a bem.",
			},
		},
		{
			ID:          "curandeira",
			Name:        "Lydia",
			Description: "Uma mulher de meia-idade com cabelos grisalhos e um semblante sereno. Conhece muitos remédios herbais.",
			Role:        "healer",
			Location:    "Meadowbrook",
			Services:    []string{"heal", "buy", "sell"},
			Inventory:   []string{"pocao_cura_menor", "erva_cura", "antidoto", "bandagem"},
			Quests:      []string{"sq002"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:   "Que os espíritos da natureza o abençoem. Precisa de cura?",
				domain.DialogueFarewell:   "Que a saúde e a paz o acompanhem.",
				domain.DialogueQuestOffer: "As pessoas da aldeia precisam de ervas medicinais, mas a Floresta Sombria é perigosa...",
			},
		},
		{
			ID:          "oraculo",
			Name:        "Oráculo Elara",
			Description: "Uma figura enigmática coberta por um manto azul cintilante. Seus olhos parecem enxergar além do presente.",
			Role:        "special",
			Location:    "Vale do Oráculo",
			Quests:      []string{"mq001", "mq002"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:   "Eu o esperava, viajante dos caminhos do destino.",
				domain.DialogueFarewell:   "Nossa reunião foi predita. E nos encontraremos novamente, quando as estrelas se alinharem.",
				domain.DialogueQuestOffer: "A escuridão se aproxima. Três fragmentos devem ser encontrados para deter a maré crescente...",
			},
		},
		{
			ID:          "druida_eremita",
			Name:        "Druida Cedrico",
			Description: "Um eremita envolto em mantos de musgo e folhas. Vive em harmonia com a floresta e desconfia de estranhos.",
			Role:        "special",
			Location:    "Floresta Sombria",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "Poucos entram na floresta por bons motivos. Qual é o seu, {character_name}?",
				domain.DialogueFarewell: "Pise com cuidado. A floresta observa.",
			},
		},
		{
			ID:          "mercador_ambulante",
			Name:        "Fenwick",
			Description: "Um mercador magro com uma carroça coberta de bugigangas. Sempre tem uma história sobre cada mercadoria.",
			Role:        "merchant",
			Location:    "Estrada do Comércio",
			Services:    []string{"buy", "sell"},
			Inventory:   []string{"corda", "tocha", "comida", "pocao_cura_menor"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:    "Olá, viajante! Interessado em mercadorias de terras distantes?",
				domain.DialogueFarewell:    "Se mudar de ideia, estarei na estrada!",
				domain.DialogueTransaction: "Negócio fechado, e feito com honra.",
			},
		},
		{
			ID:          "guarda_estrada",
			Name:        "Sargento Bram",
			Description: "Um soldado de armadura gasta que patrulha a estrada. Olhos atentos a bandidos e problemas.",
			Role:        "guard",
			Location:    "Estrada do Comércio",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "Mantenha-se na estrada e não terá problemas. Bandidos rondam a região.",
				domain.DialogueFarewell: "Siga viagem em segurança.",
			},
		},
		{
			ID:          "mestre_guilda",
			Name:        "Mestre Aldric",
			Description: "Um homem elegante de olhar calculista que dirige a guilda dos aventureiros de Portus.",
			Role:        "leader",
			Location:    "Portus",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "A guilda sempre tem trabalho para quem prova seu valor.",
				domain.DialogueFarewell: "Volte quando tiver feitos dignos de registro.",
			},
		},
		{
			ID:          "capitao_navio",
			Name:        "Capitã Maren",
			Description: "Uma marinheira curtida pelo sal com um tricórnio surrado. Comanda o navio mais rápido de Portus.",
			Role:        "special",
			Location:    "Portus",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "Procurando passagem? O mar não espera por ninguém.",
				domain.DialogueFarewell: "Ventos favoráveis, viajante.",
			},
		},
		{
			ID:          "mercador_exotico",
			Name:        "Zahir",
			Description: "Um mercador de terras distantes com especiarias e tecidos raros. Fala com sotaque melodioso.",
			Role:        "merchant",
			Location:    "Portus",
			Services:    []string{"buy", "sell"},
			Inventory:   []string{"pocao_cura", "pocao_mana_menor", "amuleto_antigo"},
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting:    "Ah, um cliente de bom gosto! Venha ver tesouros de além-mar.",
				domain.DialogueFarewell:    "Que a fortuna sorria para você.",
				domain.DialogueTransaction: "Uma escolha excelente, digna de um sultão.",
			},
		},
		{
			ID:          "pastor",
			Name:        "Pastor Willem",
			Description: "Um homem simples de cajado na mão e cão fiel ao lado. Conhece cada trilha das colinas.",
			Role:        "commoner",
			Location:    "Colinas do Norte",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "Cuidado com os lobos, viajante. Andam ousados ultimamente.",
				domain.DialogueFarewell: "Boa estrada, e olhe onde pisa.",
			},
		},
		{
			ID:          "minerador",
			Name:        "Durgan",
			Description: "Um minerador atarracado com as mãos calejadas e poeira de pedra nas roupas.",
			Role:        "commoner",
			Location:    "Colinas do Norte",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "As minas andam estranhas. Ruídos vindos do fundo que ninguém explica.",
				domain.DialogueFarewell: "Se descer às minas, leve uma tocha a mais.",
			},
		},
		{
			ID:          "guia_montanha",
			Name:        "Eira",
			Description: "Uma montanhista de rosto marcado pelo vento gelado. Guia viajantes pelas passagens seguras.",
			Role:        "special",
			Location:    "Montanhas do Norte",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "As montanhas não perdoam os despreparados. Siga meus passos.",
				domain.DialogueFarewell: "Que o gelo poupe seus dedos.",
			},
		},
		{
			ID:          "guardiao_templo",
			Name:        "Guardião Soren",
			Description: "Um homem silencioso de armadura cerimonial que vigia a entrada do Templo do Oráculo.",
			Role:        "guard",
			Location:    "Vale do Oráculo",
			Dialogue: map[domain.DialogueType]string{
				domain.DialogueGreeting: "Apenas os que o destino convoca podem passar. O Oráculo o aguarda?",
				domain.DialogueFarewell: "O templo guarda suas palavras.",
			},
		},
	}
}

func defaultEnemies() []domain.Enemy {
	return []domain.Enemy{
		{
			ID:          "lobo",
			Name:        "Lobo Selvagem",
			Description: "Um lobo cinzento com olhos amarelos ferozes. Caça em alcateias e é territorial.",
			Type:        "beast",
			Level:       1,
			Stats: domain.EnemyStats{
				Health: 30, Attack: 5, Defense: 2, XPReward: 20, GoldReward: [2]int{1, 5},
			},
			LootTable: []domain.LootDrop{
				{Item: "pele_lobo", Chance: 0.7},
				{Item: "carne_crua", Chance: 0.5},
			},
			Locations: []string{"Floresta Sombria", "Estrada do Comércio", "Colinas do Norte", "Prados do Leste"},
		},
		{
			ID:          "bandido",
			Name:        "Bandido da Estrada",
			Description: "Um homem maltrapilho armado com uma adaga. Ataca viajantes para roubar seus pertences.",
			Type:        "humanoid",
			Level:       2,
			Stats: domain.EnemyStats{
				Health: 40, Attack: 6, Defense: 3, XPReward: 30, GoldReward: [2]int{5, 15},
			},
			LootTable: []domain.LootDrop{
				{Item: "adaga", Chance: 0.3},
				{Item: "pocao_cura_menor", Chance: 0.2},
				{Item: "corda", Chance: 0.4},
			},
			Locations: []string{"Floresta Sombria", "Estrada do Comércio", "Encruzilhada", "Costa Tempestuosa"},
		},
		{
			ID:          "esqueleto",
			Name:        "Esqueleto Antigo",
			Description: "Restos reanimados de um guerreiro há muito falecido. Seus ossos são mantidos unidos por magia negra.",
			Type:        "undead",
			Level:       3,
			Stats: domain.EnemyStats{
				Health: 35, Attack: 7, Defense: 4, XPReward: 40, GoldReward: [2]int{0, 5},
			},
			LootTable: []domain.LootDrop{
				{Item: "espada_enferrujada", Chance: 0.4},
				{Item: "osso", Chance: 0.8},
				{Item: "amuleto_antigo", Chance: 0.1},
			},
			Locations: []string{"Ruínas de Eldrath"},
		},
		{
			ID:          "aranha_gigante",
			Name:        "Aranha Gigante",
			Description: "Uma aranha do tamanho de um cão, com presas gotejantes de veneno.",
			Type:        "beast",
			Level:       2,
			Stats: domain.EnemyStats{
				Health: 25, Attack: 7, Defense: 2, XPReward: 25, GoldReward: [2]int{0, 3},
			},
			LootTable: []domain.LootDrop{
				{Item: "flor_beladona", Chance: 0.3},
			},
			Locations: []string{"Floresta Sombria", "Pântano Nebuloso"},
		},
		{
			ID:          "urso",
			Name:        "Urso Pardo",
			Description: "Um urso enorme de pelagem escura. Normalmente evita pessoas, mas é mortal quando provocado.",
			Type:        "beast",
			Level:       3,
			Stats: domain.EnemyStats{
				Health: 60, Attack: 9, Defense: 4, XPReward: 45, GoldReward: [2]int{0, 2},
			},
			LootTable: []domain.LootDrop{
				{Item: "carne_crua", Chance: 0.8},
				{Item: "pele_lobo", Chance: 0.2},
			},
			Locations: []string{"Colinas do Norte", "Montanhas do Norte"},
		},
		{
			ID:          "troll_montanha",
			Name:        "Troll da Montanha",
			Description: "Uma criatura brutamontes de pele rochosa que emboscava viajantes nas passagens estreitas.",
			Type:        "giant",
			Level:       5,
			Stats: domain.EnemyStats{
				Health: 100, Attack: 12, Defense: 6, XPReward: 80, GoldReward: [2]int{10, 30},
			},
			LootTable: []domain.LootDrop{
				{Item: "osso", Chance: 0.6},
				{Item: "amuleto_antigo", Chance: 0.15},
			},
			Locations: []string{"Montanhas do Norte"},
		},
		{
			ID:          "lobo_da_neve",
			Name:        "Lobo da Neve",
			Description: "Um lobo de pelagem branca adaptado ao frio extremo. Quase invisível na neve.",
			Type:        "beast",
			Level:       4,
			Stats: domain.EnemyStats{
				Health: 45, Attack: 8, Defense: 3, XPReward: 50, GoldReward: [2]int{2, 8},
			},
			LootTable: []domain.LootDrop{
				{Item: "pele_lobo", Chance: 0.8},
				{Item: "carne_crua", Chance: 0.5},
			},
			Locations: []string{"Montanhas do Norte"},
		},
		{
			ID:          "cultista",
			Name:        "Cultista Sombrio",
			Description: "Um seguidor encapuzado de poderes proibidos. Murmura encantamentos em línguas mortas.",
			Type:        "humanoid",
			Level:       4,
			Stats: domain.EnemyStats{
				Health: 40, Attack: 10, Defense: 3, XPReward: 55, GoldReward: [2]int{5, 20},
			},
			LootTable: []domain.LootDrop{
				{Item: "pocao_mana_menor", Chance: 0.3},
				{Item: "amuleto_antigo", Chance: 0.2},
			},
			Locations: []string{"Ruínas de Eldrath", "Pântano Nebuloso"},
		},
		{
			ID:          "construto_antigo",
			Name:        "Construto Antigo",
			Description: "Uma estátua de pedra animada por magia esquecida. Guarda as ruínas sem descanso há séculos.",
			Type:        "construct",
			Level:       6,
			Stats: domain.EnemyStats{
				Health: 120, Attack: 14, Defense: 8, XPReward: 100, GoldReward: [2]int{0, 10},
			},
			LootTable: []domain.LootDrop{
				{Item: "amuleto_antigo", Chance: 0.4},
			},
			Locations: []string{"Ruínas de Eldrath"},
		},
	}
}
