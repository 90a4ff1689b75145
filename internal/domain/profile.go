package domain

import "time"

// ToneScale indica la escala nativa de los sliders de tono del workshop.
type ToneScale string

const (
	// ToneScaleSigned es el slider nativo del workshop: -100..100.
	ToneScaleSigned ToneScale = "signed"
	// ToneScaleUnit viene de respuestas de quiz ya agregadas: 0..100.
	ToneScaleUnit ToneScale = "unit"
)

// TonePreferences guarda los cuatro sliders en su escala nativa.
type TonePreferences struct {
	Formality  float64   `json:"formality"`
	Analytical float64   `json:"analytical"`
	Creative   float64   `json:"creative"`
	Assertive  float64   `json:"assertive"`
	Scale      ToneScale `json:"scale,omitempty"`
}

// Normalized devuelve los cuatro ejes llevados a [0,1] según la escala nativa.
func (t TonePreferences) Normalized() ToneProfile {
	return ToneProfile{
		Formality:  normalizeTone(t.Formality, t.Scale),
		Analytical: normalizeTone(t.Analytical, t.Scale),
		Creative:   normalizeTone(t.Creative, t.Scale),
		Assertive:  normalizeTone(t.Assertive, t.Scale),
	}
}

func normalizeTone(v float64, scale ToneScale) float64 {
	var n float64
	switch scale {
	case ToneScaleUnit:
		n = v / 100.0
	default:
		n = (v + 100.0) / 200.0
	}
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Ids de pregunta bien conocidos del cuestionario del workshop.
const (
	QuestionCurrentRole        = "current-role"
	QuestionUniqueApproach     = "unique-approach"
	QuestionIndustryFrustation = "industry-frustration"
)

// QuizResponse es una respuesta individual del cuestionario de personalidad.
type QuizResponse struct {
	QuestionID     string `json:"question_id"`
	AnswerText     string `json:"answer_text"`
	SelectedOption string `json:"selected_option,omitempty"`
}

// AudiencePersona describe a quién quiere llegar la persona usuaria.
type AudiencePersona struct {
	Name       string   `json:"name"`
	Industry   string   `json:"industry"`
	PainPoints []string `json:"pain_points"`
	Goals      []string `json:"goals"`
}

// WorkshopProfile es el perfil crudo armado por los colaboradores.
// El core lo trata como solo-lectura; el orden de SelectedValues es prioridad.
type WorkshopProfile struct {
	ID              string             `json:"id,omitempty"`
	UserID          string             `json:"user_id,omitempty"`
	SelectedValues  []string           `json:"selected_values"`
	TonePreferences *TonePreferences   `json:"tone_preferences,omitempty"`
	QuizResponses   []QuizResponse     `json:"quiz_responses"`
	WritingSample   string             `json:"writing_sample,omitempty"`
	Personas        []AudiencePersona  `json:"personas"`
	AIIndicators    map[string]float64 `json:"ai_indicators,omitempty"`
	CreatedAt       time.Time          `json:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at,omitempty"`
}

// PrimaryPersona devuelve la primera persona de audiencia, si existe.
func (p WorkshopProfile) PrimaryPersona() (AudiencePersona, bool) {
	if len(p.Personas) == 0 {
		return AudiencePersona{}, false
	}
	return p.Personas[0], true
}

// QuizAnswer busca la respuesta a una pregunta por id; "" si no está.
func (p WorkshopProfile) QuizAnswer(questionID string) string {
	for _, r := range p.QuizResponses {
		if r.QuestionID == questionID {
			return r.AnswerText
		}
	}
	return ""
}
