package rank

// Per-metric tables. Gas tables share the air-quality vocabulary; the
// climate tables have their own extremes at the floor and at zero.
var (
	ECO2 = MustTable("eco2", 400, "low",
		Threshold{30000, "EVAC"},
		Threshold{1600, "CRIT"},
		Threshold{1400, "BAD"},
		Threshold{1200, "VENT"},
		Threshold{1000, "HIGH"},
		Threshold{800, "fair"},
		Threshold{400, "norm"},
	)

	TVOC = MustTable("tvoc", 220, "low",
		Threshold{5500, "EVAC"},
		Threshold{2200, "CRIT"},
		Threshold{1430, "BAD"},
		Threshold{660, "VENT"},
		Threshold{430, "HIGH"},
		Threshold{220, "fair"},
	)

	Temperature = MustTable("temperature", 0, "freezing",
		Threshold{30, "hot"},
		Threshold{25, "warm"},
		Threshold{22, "norm"},
		Threshold{20, "cool"},
		Threshold{19, "cold"},
		Threshold{0, "HEAT"},
	)

	Humidity = MustTable("humidity", 0, "dry",
		Threshold{90, "wet"},
		Threshold{80, "moist"},
		Threshold{60, "humid"},
		Threshold{40, "norm"},
		Threshold{20, "dry"},
		Threshold{0, "DESERT"},
	)
)
