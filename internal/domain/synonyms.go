package domain

// SynonymTable mapea un rasgo a palabras relacionadas para matching difuso.
// Es configuración inmutable, igual que el catálogo de arquetipos.
type SynonymTable map[string][]string

// DefaultSynonyms devuelve la tabla base de sinónimos por rasgo.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"curious":      {"inquisitive", "explorer", "wonder", "questions", "learning"},
		"bold":         {"daring", "fearless", "brave", "risk", "audacious"},
		"experimental": {"tinker", "prototype", "trial", "iterate", "test"},
		"visionary":    {"forward", "imagine", "big picture", "dream", "tomorrow"},
		"adaptable":    {"flexible", "pivot", "versatile", "adjust"},
		"analytical":   {"logical", "data", "numbers", "evidence", "measure"},
		"methodical":   {"structured", "organized", "step by step", "process", "plan"},
		"rigorous":     {"thorough", "precise", "exact", "disciplined"},
		"decisive":     {"decide", "resolute", "clear-cut", "firm"},
		"pragmatic":    {"practical", "realistic", "grounded", "hands-on"},
		"empathetic":   {"caring", "compassionate", "understanding", "warm", "kind"},
		"patient":      {"calm", "steady", "unhurried", "tolerant"},
		"supportive":   {"helpful", "encouraging", "nurturing", "backing"},
		"generous":     {"giving", "share", "selfless", "open-handed"},
		"attentive":    {"listener", "observant", "present", "mindful"},
		"energetic":    {"dynamic", "vibrant", "enthusiastic", "lively", "spark"},
		"driven":       {"ambitious", "hungry", "determined", "relentless", "motivated"},
		"inspiring":    {"motivating", "uplifting", "rallying", "charismatic"},
		"direct":       {"straightforward", "blunt", "candid", "no-nonsense"},
		"competitive":  {"winning", "compete", "outperform", "edge"},
	}
}
