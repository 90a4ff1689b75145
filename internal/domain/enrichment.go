package domain

// CommunicationStyle son los cuatro escalares [0,1] del análisis de escritura IA.
type CommunicationStyle struct {
	Formality             float64 `json:"formality"`
	AnalyticalVsEmotional float64 `json:"analytical_vs_emotional"`
	Assertiveness         float64 `json:"assertiveness"`
	Creativity            float64 `json:"creativity"`
}

// WritingAnalysis es el contrato del analizador de escritura respaldado por IA.
type WritingAnalysis struct {
	CommunicationStyle   CommunicationStyle `json:"communication_style"`
	Expertise            []string           `json:"expertise"`
	KeyThemes            []string           `json:"key_themes"`
	VoiceCharacteristics []string           `json:"voice_characteristics"`
	ArchetypeIndicators  map[string]float64 `json:"archetype_indicators"`
}

// DefaultWritingAnalysis es el objeto documentado cuando el enriquecimiento
// no está disponible o su payload es inválido: escalares neutros en 0.5,
// exactamente 3 características de voz y un indicador por cada arquetipo configurado.
func DefaultWritingAnalysis(archetypeIDs []string) WritingAnalysis {
	indicators := make(map[string]float64, len(archetypeIDs))
	for _, id := range archetypeIDs {
		indicators[id] = 0.5
	}
	return WritingAnalysis{
		CommunicationStyle: CommunicationStyle{
			Formality:             0.5,
			AnalyticalVsEmotional: 0.5,
			Assertiveness:         0.5,
			Creativity:            0.5,
		},
		Expertise:            []string{},
		KeyThemes:            []string{},
		VoiceCharacteristics: []string{"clear", "genuine", "professional"},
		ArchetypeIndicators:  indicators,
	}
}

// PersonalityAnalysis es el contrato paralelo del analizador de personalidad.
type PersonalityAnalysis struct {
	CoreTraits         []string           `json:"core_traits"`
	LeadershipStyle    string             `json:"leadership_style"`
	Values             []string           `json:"values"`
	Motivations        []string           `json:"motivations"`
	ArchetypeAlignment map[string]float64 `json:"archetype_alignment"`
}

// DefaultPersonalityAnalysis es el default documentado del contrato de personalidad.
func DefaultPersonalityAnalysis() PersonalityAnalysis {
	return PersonalityAnalysis{
		CoreTraits:         []string{},
		LeadershipStyle:    "collaborative",
		Values:             []string{},
		Motivations:        []string{},
		ArchetypeAlignment: map[string]float64{},
	}
}
