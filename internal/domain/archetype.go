package domain

// ToneProfile describe el registro esperado de un arquetipo en cuatro ejes [0,1].
type ToneProfile struct {
	Formality  float64 `json:"formality"`
	Analytical float64 `json:"analytical"`
	Creative   float64 `json:"creative"`
	Assertive  float64 `json:"assertive"`
}

// Archetype es configuración estática e inmutable: nunca se muta en runtime.
type Archetype struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	CoreValues   []string    `json:"core_values"`
	Tone         ToneProfile `json:"tone"`
	Traits       []string    `json:"traits"`
	Keywords     []string    `json:"keywords"`
	ContentStyle string      `json:"content_style"`
	// MissionTemplate usa placeholders entre corchetes, ej: "[AUDIENCE]".
	MissionTemplate string `json:"mission_template"`
}

const (
	ArchetypeInnovator  = "innovator"
	ArchetypeStrategist = "strategist"
	ArchetypeMentor     = "mentor"
	ArchetypeCatalyst   = "catalyst"
)

// DefaultArchetypes devuelve el catálogo base de cuatro arquetipos.
// Cada llamada devuelve una copia fresca para que nadie pueda mutar el catálogo compartido.
func DefaultArchetypes() []Archetype {
	return []Archetype{
		{
			ID:          ArchetypeInnovator,
			Name:        "The Innovator",
			Description: "Rompe convenciones del sector y convierte ideas emergentes en formas nuevas de trabajar.",
			CoreValues:  []string{"innovation", "creativity", "vision", "growth", "courage"},
			Tone:        ToneProfile{Formality: 0.4, Analytical: 0.5, Creative: 0.9, Assertive: 0.7},
			Traits:      []string{"curious", "bold", "experimental", "visionary", "adaptable"},
			Keywords: []string{
				"innovation", "future", "disrupt", "transform",
				"experiment", "reinvent", "emerging", "bold",
			},
			ContentStyle:    "provocative ideas and future-facing narratives",
			MissionTemplate: "I help [AUDIENCE] break with [INDUSTRY] convention, turning [VALUES] into [INNOVATION].",
		},
		{
			ID:          ArchetypeStrategist,
			Name:        "The Strategist",
			Description: "Aporta rigor y evidencia: marcos probados, métricas y decisiones defendibles.",
			CoreValues:  []string{"excellence", "precision", "integrity", "knowledge", "results"},
			Tone:        ToneProfile{Formality: 0.8, Analytical: 0.9, Creative: 0.3, Assertive: 0.6},
			Traits:      []string{"analytical", "methodical", "rigorous", "decisive", "pragmatic"},
			Keywords: []string{
				"strategy", "data", "framework", "proven",
				"system", "metric", "optimize", "roadmap",
			},
			ContentStyle:    "evidence-backed breakdowns and practical frameworks",
			MissionTemplate: "I help [AUDIENCE] solve [CHALLENGE] with [EXPERTISE] grounded in [VALUES].",
		},
		{
			ID:          ArchetypeMentor,
			Name:        "The Mentor",
			Description: "Acompaña con empatía: escucha primero y guía a las personas a su siguiente etapa.",
			CoreValues:  []string{"empathy", "service", "trust", "growth", "community"},
			Tone:        ToneProfile{Formality: 0.5, Analytical: 0.3, Creative: 0.5, Assertive: 0.3},
			Traits:      []string{"empathetic", "patient", "supportive", "generous", "attentive"},
			Keywords: []string{
				"guide", "support", "empower", "human",
				"community", "care", "listen", "grow",
			},
			ContentStyle:    "warm, story-driven guidance that meets people where they are",
			MissionTemplate: "I help [AUDIENCE] move past [PAIN] by leading with [VALUES], one honest conversation at a time.",
		},
		{
			ID:          ArchetypeCatalyst,
			Name:        "The Catalyst",
			Description: "Genera impulso: convierte intención en acción y celebra los resultados visibles.",
			CoreValues:  []string{"energy", "impact", "action", "ambition", "momentum"},
			Tone:        ToneProfile{Formality: 0.3, Analytical: 0.4, Creative: 0.6, Assertive: 0.9},
			Traits:      []string{"energetic", "driven", "inspiring", "direct", "competitive"},
			Keywords: []string{
				"action", "momentum", "results", "win",
				"accelerate", "ignite", "challenge", "drive",
			},
			ContentStyle:    "high-energy calls to action with visible wins",
			MissionTemplate: "I help [AUDIENCE] in [INDUSTRY] turn [VALUES] into [IMPACT], fast.",
		},
	}
}

// ArchetypeByID busca en un catálogo; ok=false si el id no existe.
func ArchetypeByID(catalog []Archetype, id string) (Archetype, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Archetype{}, false
}

// ArchetypeIDs devuelve los ids del catálogo en orden.
func ArchetypeIDs(catalog []Archetype) []string {
	ids := make([]string, 0, len(catalog))
	for _, a := range catalog {
		ids = append(ids, a.ID)
	}
	return ids
}
