package quest

import (
	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/world"
)

// Default returns the built-in quest set. Main quests chain through
// NextQuestID; side quests stand alone.
func Default() []domain.Quest {
	return []domain.Quest{
		{
			ID:          "mq001",
			Title:       "O Chamado do Destino",
			Description: "Você foi escolhido pelos anciãos para investigar uma antiga profecia sobre a chegada de uma grande escuridão.",
			Objective:   "Visite o Oráculo no Vale do Oráculo e descubra mais sobre a profecia.",
			Type:        domain.QuestExploration,
			Difficulty:  domain.DifficultyEasy,
			Requirements: domain.QuestRequirements{
				MinLevel: 1,
			},
			Rewards: domain.QuestRewards{
				Experience: 100,
				Gold:       50,
				Items:      []string{"pergaminho_destino"},
			},
			NextQuestID:    "mq002",
			Location:       "Meadowbrook",
			NPCGiver:       "mestre_vila",
			TargetLocation: "Vale do Oráculo",
		},
		{
			ID:          "mq002",
			Title:       "Fragmentos da Visão",
			Description: "O Oráculo revela que você deve encontrar três fragmentos mágicos para evitar que a escuridão se espalhe pelo reino.",
			Objective:   "Encontre o primeiro fragmento escondido nas Ruínas de Eldrath.",
			Type:        domain.QuestExploration,
			Difficulty:  domain.DifficultyMedium,
			Requirements: domain.QuestRequirements{
				MinLevel:        3,
				ItemsRequired:   []string{"pergaminho_destino"},
				QuestsCompleted: []string{"mq001"},
			},
			Rewards: domain.QuestRewards{
				Experience: 200,
				Gold:       100,
				Items:      []string{"fragmento_luz"},
			},
			NextQuestID:    "mq003",
			Location:       "Vale do Oráculo",
			NPCGiver:       "oraculo",
			TargetLocation: "Ruínas de Eldrath",
		},
		{
			ID:          "mq003",
			Title:       "O Fragmento Afundado",
			Description: "O segundo fragmento repousa em algum lugar sob as águas escuras do Pântano Nebuloso.",
			Objective:   "Busque o segundo fragmento nas profundezas do Pântano Nebuloso.",
			Type:        domain.QuestExploration,
			Difficulty:  domain.DifficultyHard,
			Requirements: domain.QuestRequirements{
				MinLevel:        5,
				ItemsRequired:   []string{"fragmento_luz"},
				QuestsCompleted: []string{"mq002"},
			},
			Rewards: domain.QuestRewards{
				Experience: 300,
				Gold:       150,
			},
			Location:       "Vale do Oráculo",
			NPCGiver:       "oraculo",
			TargetLocation: "Pântano Nebuloso",
		},
		{
			ID:          "sq001",
			Title:       "O Lobo Solitário",
			Description: "Um lobo feroz tem aterrorizado os fazendeiros locais. O prefeito oferece uma recompensa para quem resolver este problema.",
			Objective:   "Encontre e derrote o lobo feroz que ataca os rebanhos.",
			Type:        domain.QuestCombat,
			Difficulty:  domain.DifficultyNovice,
			Requirements: domain.QuestRequirements{
				MinLevel: 1,
			},
			Rewards: domain.QuestRewards{
				Experience: 50,
				Gold:       25,
				Items:      []string{"colar_dentes_lobo"},
			},
			Location:    "Meadowbrook",
			NPCGiver:    "prefeito_galen",
			TargetEnemy: "lobo",
			TargetCount: 1,
		},
		{
			ID:          "sq002",
			Title:       "Ervas Medicinais",
			Description: "A curandeira da vila precisa de ervas raras que crescem na Floresta Sombria para preparar remédios para os doentes.",
			Objective:   "Colete 5 flores de beladona na Floresta Sombria.",
			Type:        domain.QuestCollection,
			Difficulty:  domain.DifficultyEasy,
			Requirements: domain.QuestRequirements{
				MinLevel: 2,
			},
			Rewards: domain.QuestRewards{
				Experience: 75,
				Gold:       30,
				Items:      []string{"pocao_cura"},
			},
			Location: "Meadowbrook",
			NPCGiver: "curandeira",
			TargetItems: []domain.ItemRequirement{
				{Item: "flor_beladona", Count: 5},
			},
		},
	}
}

// DefaultCatalog builds the built-in quest catalog against a world
// registry. The data is static, a failure here is a programming error.
func DefaultCatalog(w *world.Registry) *Catalog {
	c, err := NewCatalog(Default(), w)
	if err != nil {
		panic(err)
	}
	return c
}
