package item

import "github.com/SMCNetwolf/LLMGame/internal/domain"

// Default returns the built-in item set. A deployment can override it
// with Load and a JSON file of the same shape.
func Default() []domain.Item {
	return []domain.Item{
		// Weapons
		{
			InternalName: "espada_simples",
			Name:         "Espada Simples",
			Description:  "Uma espada básica de ferro. Confiável, porém comum.",
			Category:     domain.CategoryWeapon,
			Value:        10,
			Weight:       3,
			Stats:        domain.ItemStats{Damage: 5, Durability: 100},
			Requirements: domain.ItemRequirements{Level: 1, Strength: 3},
		},
		{
			InternalName: "espada_enferrujada",
			Name:         "Espada Enferrujada",
			Description:  "Uma lâmina corroída pelo tempo. Melhor que nada.",
			Category:     domain.CategoryWeapon,
			Value:        3,
			Weight:       3,
			Stats:        domain.ItemStats{Damage: 2, Durability: 30},
			Requirements: domain.ItemRequirements{Level: 1},
		},
		{
			InternalName: "arco_curto",
			Name:         "Arco Curto",
			Description:  "Um arco pequeno feito de madeira flexível.",
			Category:     domain.CategoryWeapon,
			Value:        15,
			Weight:       2,
			Stats:        domain.ItemStats{Damage: 4, Range: 20, Durability: 80},
			Requirements: domain.ItemRequirements{Level: 1, Dexterity: 4},
		},
		{
			InternalName: "cajado_aprendiz",
			Name:         "Cajado de Aprendiz",
			Description:  "Um cajado básico que ajuda a canalizar magia.",
			Category:     domain.CategoryWeapon,
			Value:        20,
			Weight:       2,
			Stats:        domain.ItemStats{Damage: 3, MagicBoost: 2, Durability: 90},
			Requirements: domain.ItemRequirements{Level: 1, Intelligence: 5},
		},
		{
			InternalName: "adaga",
			Name:         "Adaga",
			Description:  "Uma lâmina curta e leve, fácil de esconder.",
			Category:     domain.CategoryWeapon,
			Value:        8,
			Weight:       1,
			Stats:        domain.ItemStats{Damage: 3, Durability: 70},
			Requirements: domain.ItemRequirements{Level: 1, Dexterity: 3},
		},

		// Armor
		{
			InternalName: "armadura_couro",
			Name:         "Armadura de Couro",
			Description:  "Uma armadura básica feita de couro curtido.",
			Category:     domain.CategoryArmor,
			Value:        12,
			Weight:       4,
			Stats:        domain.ItemStats{Defense: 3, Durability: 90},
			Requirements: domain.ItemRequirements{Level: 1},
		},
		{
			InternalName: "robe_mago",
			Name:         "Robe de Mago",
			Description:  "Robe simples com símbolos arcanos bordados.",
			Category:     domain.CategoryArmor,
			Value:        14,
			Weight:       1,
			Stats:        domain.ItemStats{Defense: 1, MagicResistance: 3, Durability: 60},
			Requirements: domain.ItemRequirements{Level: 1, Intelligence: 4},
		},
		{
			InternalName: "escudo",
			Name:         "Escudo de Madeira",
			Description:  "Um escudo redondo reforçado com ferro.",
			Category:     domain.CategoryArmor,
			Value:        10,
			Weight:       3,
			Stats:        domain.ItemStats{Defense: 2, Durability: 80},
			Requirements: domain.ItemRequirements{Level: 1, Strength: 2},
		},

		// Accessories
		{
			InternalName: "amuleto_antigo",
			Name:         "Amuleto Antigo",
			Description:  "Um amuleto de pedra gravado com runas esquecidas.",
			Category:     domain.CategoryAccessory,
			Value:        25,
			Weight:       0.2,
			Stats:        domain.ItemStats{MagicResistance: 2},
			Requirements: domain.ItemRequirements{Level: 1},
		},
		{
			InternalName: "colar_dentes_lobo",
			Name:         "Colar de Dentes de Lobo",
			Description:  "Um colar feito com dentes de lobo, símbolo de coragem.",
			Category:     domain.CategoryAccessory,
			Value:        7,
			Weight:       0.2,
			Stats:        domain.ItemStats{Damage: 1},
			Requirements: domain.ItemRequirements{Level: 1},
		},

		// Potions
		{
			InternalName: "pocao_cura_menor",
			Name:         "Poção de Cura Menor",
			Description:  "Um frasco contendo um líquido vermelho que restaura um pouco de saúde.",
			Category:     domain.CategoryPotion,
			Value:        5,
			Weight:       0.5,
			Stats:        domain.ItemStats{HealthRestore: 20},
			Consumable:   true,
		},
		{
			InternalName: "pocao_cura",
			Name:         "Poção de Cura",
			Description:  "Um frasco maior de líquido vermelho que restaura saúde.",
			Category:     domain.CategoryPotion,
			Value:        12,
			Weight:       0.5,
			Stats:        domain.ItemStats{HealthRestore: 40},
			Consumable:   true,
		},
		{
			InternalName: "pocao_mana_menor",
			Name:         "Poção de Mana Menor",
			Description:  "Um frasco contendo um líquido azul que restaura um pouco de mana.",
			Category:     domain.CategoryPotion,
			Value:        5,
			Weight:       0.5,
			Stats:        domain.ItemStats{ManaRestore: 20},
			Consumable:   true,
		},
		{
			InternalName: "antidoto",
			Name:         "Antídoto",
			Description:  "Um frasco de líquido verde que neutraliza venenos comuns.",
			Category:     domain.CategoryPotion,
			Value:        6,
			Weight:       0.5,
			Consumable:   true,
		},

		// Quest items
		{
			InternalName: "pergaminho_destino",
			Name:         "Pergaminho do Destino",
			Description:  "Um antigo pergaminho com uma profecia sobre a escuridão vindoura.",
			Category:     domain.CategoryQuest,
			Value:        0,
			Weight:       0.1,
			QuestID:      "mq001",
		},
		{
			InternalName: "fragmento_luz",
			Name:         "Fragmento da Luz",
			Description:  "Um cristal brilhante que parece conter energia pura.",
			Category:     domain.CategoryQuest,
			Value:        0,
			Weight:       0.2,
			QuestID:      "mq002",
		},

		// Materials
		{
			InternalName: "pele_lobo",
			Name:         "Pele de Lobo",
			Description:  "Uma pele de lobo em bom estado, útil para artesanato.",
			Category:     domain.CategoryMaterial,
			Value:        3,
			Weight:       1,
		},
		{
			InternalName: "erva_cura",
			Name:         "Erva de Cura",
			Description:  "Uma planta com propriedades medicinais.",
			Category:     domain.CategoryMaterial,
			Value:        2,
			Weight:       0.1,
		},
		{
			InternalName: "flor_beladona",
			Name:         "Flor de Beladona",
			Description:  "Uma flor rara de pétalas escuras, procurada por alquimistas.",
			Category:     domain.CategoryMaterial,
			Value:        4,
			Weight:       0.1,
		},
		{
			InternalName: "osso",
			Name:         "Osso",
			Description:  "Um osso resistente, útil para ferramentas simples.",
			Category:     domain.CategoryMaterial,
			Value:        1,
			Weight:       0.5,
		},
		{
			InternalName: "corda",
			Name:         "Corda",
			Description:  "Dez metros de corda de cânhamo trançada.",
			Category:     domain.CategoryMaterial,
			Value:        2,
			Weight:       1,
		},
		{
			InternalName: "tocha",
			Name:         "Tocha",
			Description:  "Uma tocha embebida em piche, arde por algumas horas.",
			Category:     domain.CategoryMaterial,
			Value:        1,
			Weight:       0.5,
		},
		{
			InternalName: "bandagem",
			Name:         "Bandagem",
			Description:  "Faixas de linho limpas para estancar ferimentos.",
			Category:     domain.CategoryMaterial,
			Value:        2,
			Weight:       0.1,
			Stats:        domain.ItemStats{HealthRestore: 10},
			Consumable:   true,
		},

		// Food
		{
			InternalName: "comida",
			Name:         "Ração de Viagem",
			Description:  "Pão, queijo e carne seca para um dia de estrada.",
			Category:     domain.CategoryFood,
			Value:        2,
			Weight:       0.5,
			Stats:        domain.ItemStats{HealthRestore: 5},
			Consumable:   true,
		},
		{
			InternalName: "carne_crua",
			Name:         "Carne Crua",
			Description:  "Um naco de carne fresca de caça.",
			Category:     domain.CategoryFood,
			Value:        1,
			Weight:       1,
		},
	}
}

// DefaultCatalog builds a catalog from the built-in item set. The data
// is static, a failure here is a programming error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(Default())
	if err != nil {
		panic(err)
	}
	return c
}
