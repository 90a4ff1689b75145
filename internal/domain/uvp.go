package domain

// Tipos de variante UVP. Siempre se generan exactamente las tres.
const (
	UVPTypeStandard       = "standard"
	UVPTypeResultsFocused = "results-focused"
	UVPTypePainFocused    = "pain-focused"
)

// UniqueFactors son los cinco factores derivados del perfil para construir UVPs.
type UniqueFactors struct {
	Role      string `json:"role"`
	Method    string `json:"method"`
	Outcome   string `json:"outcome"`
	Audience  string `json:"audience"`
	PainPoint string `json:"pain_point"`
}

// IndustryContext agrega terminología y encuadre competitivo por arquetipo.
type IndustryContext struct {
	Field                string   `json:"field"`
	Terminology          []string `json:"terminology"`
	CompetitiveLandscape string   `json:"competitive_landscape"`
}

// UVPVariation es una declaración lista para publicar.
// Headline: una sola línea, sin espacios en los bordes, máximo 220 caracteres.
type UVPVariation struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Statement       string   `json:"statement"`
	Headline        string   `json:"headline"`
	Confidence      float64  `json:"confidence"`
	Differentiators []string `json:"differentiators"`
}

// UVPAnalysis es el resultado completo de construcción de UVP.
type UVPAnalysis struct {
	Variations      []UVPVariation  `json:"variations"`
	PrimaryUVP      UVPVariation    `json:"primary_uvp"`
	UniqueFactors   UniqueFactors   `json:"unique_factors"`
	IndustryContext IndustryContext `json:"industry_context"`
}
