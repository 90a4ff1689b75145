package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"brand-dna/internal/domain"
	"brand-dna/internal/llm"
)

// EnrichmentCache guarda análisis de escritura ya resueltos (clave: hash de la muestra).
type EnrichmentCache interface {
	GetWriting(ctx context.Context, key string) (domain.WritingAnalysis, bool)
	SetWriting(ctx context.Context, key string, analysis domain.WritingAnalysis)
}

/*
========================
 Analizador de escritura
========================
*/

// LLMWritingAnalyzer implementa WritingAnalyzer delegando en un LLM.
// Cualquier fallo (red, status, payload inválido) se convierte en el default
// documentado: el pipeline nunca depende de que la llamada externa salga bien.
type LLMWritingAnalyzer struct {
	client       llm.LLMClient
	archetypeIDs []string
	cache        EnrichmentCache
	logger       *zap.Logger
}

func NewLLMWritingAnalyzer(client llm.LLMClient, archetypeIDs []string, cache EnrichmentCache, logger *zap.Logger) *LLMWritingAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMWritingAnalyzer{
		client:       client,
		archetypeIDs: archetypeIDs,
		cache:        cache,
		logger:       logger,
	}
}

func (a *LLMWritingAnalyzer) Analyze(ctx context.Context, sample string) (domain.WritingAnalysis, error) {
	fallback := domain.DefaultWritingAnalysis(a.archetypeIDs)
	if a.client == nil || strings.TrimSpace(sample) == "" {
		return fallback, nil
	}

	key := sampleKey(sample)
	if a.cache != nil {
		if cached, ok := a.cache.GetWriting(ctx, key); ok {
			return cached, nil
		}
	}

	prompt := writingAnalysisPrompt(sample, a.archetypeIDs)
	raw, err := a.client.Generate(ctx, prompt)
	if err != nil {
		a.logger.Warn("writing analysis llm call failed", zap.Error(err))
		return fallback, nil
	}

	parsed, ok := parseWritingAnalysis(raw, a.archetypeIDs)
	if !ok {
		a.logger.Warn("writing analysis payload malformed", zap.String("raw_prefix", prefix(raw, 120)))
		return fallback, nil
	}

	if a.cache != nil {
		a.cache.SetWriting(ctx, key, parsed)
	}
	return parsed, nil
}

func writingAnalysisPrompt(sample string, archetypeIDs []string) string {
	return fmt.Sprintf(`You are an expert in professional communication analysis.
Analyze the writing sample below and respond with ONLY a JSON object shaped as:
{
  "communication_style": {"formality": 0.5, "analytical_vs_emotional": 0.5, "assertiveness": 0.5, "creativity": 0.5},
  "expertise": ["..."],
  "key_themes": ["..."],
  "voice_characteristics": ["...", "...", "..."],
  "archetype_indicators": {%s}
}
All numbers must be between 0.0 and 1.0. archetype_indicators must contain every listed id.

Writing sample:
%s`, quoteIndicatorKeys(archetypeIDs), strings.TrimSpace(sample))
}

func quoteIndicatorKeys(ids []string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%q: 0.5", id))
	}
	return strings.Join(parts, ", ")
}

// parseWritingAnalysis valida y normaliza el payload: escalares acotados,
// exactamente 3 características de voz y un indicador por arquetipo.
func parseWritingAnalysis(raw string, archetypeIDs []string) (domain.WritingAnalysis, bool) {
	cleaned := cleanLLMJSONResponse(raw)
	obj := extractFirstJSONObject(cleaned)
	if obj == "" {
		obj = extractFirstJSONObject(raw)
	}
	if obj == "" {
		return domain.WritingAnalysis{}, false
	}

	var parsed domain.WritingAnalysis
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return domain.WritingAnalysis{}, false
	}

	parsed.CommunicationStyle.Formality = clamp01(parsed.CommunicationStyle.Formality)
	parsed.CommunicationStyle.AnalyticalVsEmotional = clamp01(parsed.CommunicationStyle.AnalyticalVsEmotional)
	parsed.CommunicationStyle.Assertiveness = clamp01(parsed.CommunicationStyle.Assertiveness)
	parsed.CommunicationStyle.Creativity = clamp01(parsed.CommunicationStyle.Creativity)

	if parsed.Expertise == nil {
		parsed.Expertise = []string{}
	}
	if parsed.KeyThemes == nil {
		parsed.KeyThemes = []string{}
	}

	defaults := domain.DefaultWritingAnalysis(archetypeIDs)
	for len(parsed.VoiceCharacteristics) < 3 {
		parsed.VoiceCharacteristics = append(parsed.VoiceCharacteristics, defaults.VoiceCharacteristics[len(parsed.VoiceCharacteristics)])
	}
	parsed.VoiceCharacteristics = parsed.VoiceCharacteristics[:3]

	if parsed.ArchetypeIndicators == nil {
		parsed.ArchetypeIndicators = map[string]float64{}
	}
	for _, id := range archetypeIDs {
		if v, ok := parsed.ArchetypeIndicators[id]; ok {
			parsed.ArchetypeIndicators[id] = clamp01(v)
		} else {
			parsed.ArchetypeIndicators[id] = 0.5
		}
	}

	return parsed, true
}

/*
========================
 Analizador de personalidad
========================
*/

// LLMPersonalityAnalyzer implementa PersonalityAnalyzer con el mismo contrato
// de fallback: cualquier fallo devuelve el default documentado.
type LLMPersonalityAnalyzer struct {
	client llm.LLMClient
	logger *zap.Logger
}

func NewLLMPersonalityAnalyzer(client llm.LLMClient, logger *zap.Logger) *LLMPersonalityAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMPersonalityAnalyzer{client: client, logger: logger}
}

func (a *LLMPersonalityAnalyzer) Analyze(ctx context.Context, responses []domain.QuizResponse) (domain.PersonalityAnalysis, error) {
	fallback := domain.DefaultPersonalityAnalysis()
	if a.client == nil || len(responses) == 0 {
		return fallback, nil
	}

	var sb strings.Builder
	for _, r := range responses {
		sb.WriteString("- ")
		sb.WriteString(strings.TrimSpace(r.AnswerText))
		if r.SelectedOption != "" {
			sb.WriteString(" (chose: " + r.SelectedOption + ")")
		}
		sb.WriteString("\n")
	}

	prompt := fmt.Sprintf(`You are an expert in professional personality assessment.
From the quiz answers below, respond with ONLY a JSON object shaped as:
{
  "core_traits": ["..."],
  "leadership_style": "...",
  "values": ["..."],
  "motivations": ["..."],
  "archetype_alignment": {"innovator": 0.5, "strategist": 0.5, "mentor": 0.5, "catalyst": 0.5}
}
All numbers must be between 0.0 and 1.0.

Quiz answers:
%s`, sb.String())

	raw, err := a.client.Generate(ctx, prompt)
	if err != nil {
		a.logger.Warn("personality analysis llm call failed", zap.Error(err))
		return fallback, nil
	}

	cleaned := cleanLLMJSONResponse(raw)
	obj := extractFirstJSONObject(cleaned)
	if obj == "" {
		obj = extractFirstJSONObject(raw)
	}
	if obj == "" {
		return fallback, nil
	}

	var parsed domain.PersonalityAnalysis
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		a.logger.Warn("personality analysis payload malformed", zap.String("raw_prefix", prefix(raw, 120)))
		return fallback, nil
	}

	if strings.TrimSpace(parsed.LeadershipStyle) == "" {
		parsed.LeadershipStyle = fallback.LeadershipStyle
	}
	if parsed.CoreTraits == nil {
		parsed.CoreTraits = []string{}
	}
	if parsed.Values == nil {
		parsed.Values = []string{}
	}
	if parsed.Motivations == nil {
		parsed.Motivations = []string{}
	}
	if parsed.ArchetypeAlignment == nil {
		parsed.ArchetypeAlignment = map[string]float64{}
	}
	for id, v := range parsed.ArchetypeAlignment {
		parsed.ArchetypeAlignment[id] = clamp01(v)
	}

	return parsed, nil
}

/*
========================
 Sugeridor de misión
========================
*/

// LLMMissionSuggester propone misiones candidatas. A diferencia de los
// analizadores, acá sí se devuelve el error: MissionService es quien resuelve
// el fallback (exactamente una misión generada por template).
type LLMMissionSuggester struct {
	client llm.LLMClient
}

func NewLLMMissionSuggester(client llm.LLMClient) *LLMMissionSuggester {
	return &LLMMissionSuggester{client: client}
}

func (s *LLMMissionSuggester) Suggest(ctx context.Context, profile domain.WorkshopProfile, archetype domain.Archetype) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("mission suggester: no llm client")
	}

	prompt := fmt.Sprintf(`You write concise personal mission statements for professionals.
Brand archetype: %s (%s).
Top values: %s.
Respond with ONLY a JSON object: {"missions": ["...", "...", "..."]}
Each mission is one sentence, first person, and mentions who the person helps.`,
		archetype.Name, archetype.Description, joinTopValues(profile.SelectedValues, 3))

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("mission suggestion: %w", err)
	}

	obj := extractFirstJSONObject(cleanLLMJSONResponse(raw))
	if obj == "" {
		obj = extractFirstJSONObject(raw)
	}
	if obj == "" {
		return nil, fmt.Errorf("mission suggestion: no json object in response")
	}

	var parsed struct {
		Missions []string `json:"missions"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil, fmt.Errorf("parse mission suggestion: %w", err)
	}
	return parsed.Missions, nil
}

func sampleKey(sample string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(sample)))
	return hex.EncodeToString(sum[:])
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
