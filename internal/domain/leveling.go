package domain

// ─── Leveling Engine ────────────────────────────────────────────────────────
// Level is derived, never stored: a pure function from ledger balance to tier.
// Recomputing on every read guarantees the displayed level is always
// consistent with the ledger.

// LevelTier is one row of the threshold table.
type LevelTier struct {
	Name      string `json:"name"`
	Threshold int64  `json:"threshold"`
	Benefits  string `json:"benefits"`
}

// levelTable is the fixed ascending threshold table. Thresholds are strictly
// increasing; a balance below the first non-zero threshold maps to the base
// tier.
var levelTable = []LevelTier{
	{Name: "Explorador", Threshold: 0, Benefits: "Acceso a recomendaciones personalizadas"},
	{Name: "Viajero", Threshold: 50, Benefits: "Acceso anticipado a nuevos destinos"},
	{Name: "Aventurero", Threshold: 150, Benefits: "Descuentos con aliados seleccionados"},
	{Name: "Trotamundos", Threshold: 400, Benefits: "Recompensas exclusivas de aliados"},
	{Name: "Embajador", Threshold: 1000, Benefits: "Experiencias VIP y reconocimiento de embajador"},
}

// LevelTable returns a copy of the threshold table.
func LevelTable() []LevelTier {
	out := make([]LevelTier, len(levelTable))
	copy(out, levelTable)
	return out
}

// LevelInfo is the derived level block for a balance.
type LevelInfo struct {
	Current   string `json:"current"`
	Next      string `json:"next,omitempty"`
	Remaining int64  `json:"remaining"`
	Benefits  string `json:"benefits"`
}

// LevelOf maps a balance to its tier, the next tier (empty at the top), the
// points remaining to the next tier (0 only at the top), and the current
// tier's benefits. Monotonic: a higher balance never maps to a lower tier.
func LevelOf(balance int64) LevelInfo {
	idx := 0
	for i, tier := range levelTable {
		if balance >= tier.Threshold {
			idx = i
		}
	}

	info := LevelInfo{
		Current:  levelTable[idx].Name,
		Benefits: levelTable[idx].Benefits,
	}
	if idx+1 < len(levelTable) {
		info.Next = levelTable[idx+1].Name
		info.Remaining = levelTable[idx+1].Threshold - balance
	}
	return info
}
