package domain

// DimensionBreakdown expone los cinco sub-scores de una clasificación.
type DimensionBreakdown struct {
	Values      float64 `json:"values"`
	Tone        float64 `json:"tone"`
	Personality float64 `json:"personality"`
	Writing     float64 `json:"writing"`
	Audience    float64 `json:"audience"`
}

// WritingSignature son señales estilísticas derivadas de la muestra de escritura.
// Se expone para UI/telemetría; nunca entra al score ponderado.
type WritingSignature struct {
	QuestionTendency  float64 `json:"question_tendency"`
	FirstPersonShare  float64 `json:"first_person_share"`
	StorytellingScore float64 `json:"storytelling_score"`
	AuthorityScore    float64 `json:"authority_score"`
	EmpathyScore      float64 `json:"empathy_score"`
	ExclamationEnergy float64 `json:"exclamation_energy"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	SentenceCount     int     `json:"sentence_count"`
}

// ArchetypeScore es el resultado por arquetipo, recalculado en cada llamada.
type ArchetypeScore struct {
	Archetype  Archetype          `json:"archetype"`
	Total      float64            `json:"total"`
	Confidence float64            `json:"confidence"`
	Breakdown  DimensionBreakdown `json:"breakdown"`
}

// HybridDescriptor se emite cuando dos arquetipos puntúan cerca y con confianza.
type HybridDescriptor struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BlendRatio  float64 `json:"blend_ratio"`
}

// ClassificationResult siempre tiene primary; secondary y hybrid son opcionales.
type ClassificationResult struct {
	Primary   ArchetypeScore    `json:"primary"`
	Secondary *ArchetypeScore   `json:"secondary,omitempty"`
	Hybrid    *HybridDescriptor `json:"hybrid,omitempty"`
	Signature *WritingSignature `json:"writing_signature,omitempty"`
}
