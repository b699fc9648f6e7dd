package config

// Default returns the complete default document. Values reproduce the classic
// village settings: a 10x10 grid, three parts per day, four three-day
// seasons and a three-year run.
func Default() *Config {
	return &Config{
		Seed: 42,
		Grid: GridConfig{
			Width:  10,
			Height: 10,
			Terrain: map[string]TerrainConfig{
				"forest": {Weight: 1, BaseLevel: 5, Cap: 10},
				"field":  {Weight: 2, BaseLevel: 1, Cap: 20},
				"water":  {Weight: 1, BaseLevel: 0, Cap: 0},
			},
			FertilityVariance: 0.2,
			FertilityScale:    0.3,
			ForestRegrow:      1,
			WinterFieldDecay:  0.8,
			OwnedFieldLevel:   5,
		},
		Time: TimeConfig{
			TotalDays:      36,
			DaysPerSeason:  3,
			Seasons:        []string{"Spring", "Summer", "Autumn", "Winter"},
			PartsOfDay:     []string{"Morning", "Afternoon", "Night"},
			WorkingParts:   []string{"Morning", "Afternoon"},
			HarvestSeasons: []string{"Autumn"},
			GrowingSeasons: []string{"Spring", "Summer"},
			WinterSeasons:  []string{"Winter"},
		},
		Items: []ItemConfig{
			{Name: "food", Category: "resource", BasePrice: 1, SpoilageTicks: 18},
			{Name: "wood", Category: "resource", BasePrice: 2},
			{Name: "axe", Category: "tool", BasePrice: 5, Durability: 10},
			{Name: "bow", Category: "tool", BasePrice: 5, Durability: 10},
			{Name: "hoe", Category: "tool", BasePrice: 5, Durability: 10},
			{Name: "hammer", Category: "tool", BasePrice: 5, Durability: 10},
		},
		Market: MarketConfig{
			InitialStock: map[string]int{
				"food": 50, "wood": 50, "axe": 5, "bow": 5, "hoe": 5, "hammer": 2,
			},
			MaxStock: map[string]int{
				"food": 100, "wood": 100, "axe": 10, "bow": 10, "hoe": 10, "hammer": 5,
			},
			CeilingPriceFactor: 0.5,
			PartialFill:        []string{"wood", "food"},
			SurplusThresholds:  map[string]int{"food": 5, "wood": 5},
			WinterWoodReserve:  1,
		},
		Roles: []RoleConfig{
			{Name: "Farmer", Behavior: "farm", Tool: "hoe", Count: 1, SkillCap: 2},
			{Name: "Hunter", Behavior: "hunt", Tool: "bow", Count: 1, SkillCap: 2},
			{Name: "Logger", Behavior: "log_wood", Tool: "axe", Count: 1, SkillCap: 2},
			{Name: "Blacksmith", Behavior: "craft", Tool: "hammer", Count: 1, SkillCap: 1.5},
		},
		Villagers: VillagerConfig{
			InitialCoins:     10,
			InitialResources: map[string]int{"food": 3, "wood": 2},
		},
		Needs: NeedsConfig{
			Max:                   10,
			Initial:               10,
			HungerDecayPerDay:     3,
			RestDecayPerDay:       2,
			HungerCritical:        5,
			FoodRestore:           2,
			LowThreshold:          3,
			StreakPersistence:     1,
			HealthPenalty:         1,
			HappinessPenalty:      1,
			NightRestBonus:        2,
			NightHealthRecovery:   0.25,
			WinterWoodConsumption: 1,
			ColdPenalty:           1,
		},
		Tools: ToolConfig{
			WearPerUse:         1,
			SkillWearReduction: 0.2,
			RepairWoodPerPoint: 0.2,
			SpoilageCadence:    3,
			CombatTool:         "bow",
			CombatToolBonus:    2,
		},
		Yields: YieldConfig{
			FarmTend:         2,
			BaseHunt:         2,
			BaseLog:          2,
			FallbackHunt:     1,
			FallbackLog:      1,
			Forage:           1,
			HuntTileCost:     1,
			LogTileCost:      2,
			ToolBonus:        0.5,
			SkillBonusFactor: 0.5,
			MaxMultiplier:    2,
			SkillGain:        0.05,
			CraftWood:        1,
		},
		Events: EventConfig{
			StormProbability:   0.1,
			StormDivisor:       4,
			StormReduction:     2,
			DiseaseProbability: 0.05,
			DiseaseHealthLoss:  2,
			MonsterProbability: 0.05,
			MonsterHealthMin:   5,
			MonsterHealthMax:   10,
			MonsterDamageMin:   1,
			MonsterDamageMax:   3,
			VillagerDamageMin:  1,
			VillagerDamageMax:  4,
			CombatRounds:       3,
			Marriage: MarriageConfig{
				Probability: 0.1,
				MinHealth:   6,
				MinHunger:   5,
				MinCoins:    5,
				MinFood:     1,
			},
		},
	}
}
