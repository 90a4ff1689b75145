package service

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"brand-dna/internal/domain"
)

// missionSlotFills mapea cada placeholder a su regla de extracción declarativa.
// Un slot sin dato devuelve "" y el pase final lo elimina de la oración:
// los datos faltantes achican la frase, nunca dejan un artefacto de template.
var missionSlotFills = map[string]func(domain.WorkshopProfile) string{
	"VALUES": func(p domain.WorkshopProfile) string {
		return joinTopValues(p.SelectedValues, 3)
	},
	"AUDIENCE": func(p domain.WorkshopProfile) string {
		persona, ok := p.PrimaryPersona()
		if !ok {
			return ""
		}
		return strings.TrimSpace(persona.Name)
	},
	"INDUSTRY": func(p domain.WorkshopProfile) string {
		persona, ok := p.PrimaryPersona()
		if !ok {
			return ""
		}
		return strings.TrimSpace(persona.Industry)
	},
	"PAIN": func(p domain.WorkshopProfile) string {
		persona, ok := p.PrimaryPersona()
		if !ok || len(persona.PainPoints) == 0 {
			return ""
		}
		return strings.TrimSpace(persona.PainPoints[0])
	},
	"CHALLENGE": func(p domain.WorkshopProfile) string {
		persona, ok := p.PrimaryPersona()
		if !ok || len(persona.PainPoints) == 0 {
			return ""
		}
		return strings.TrimSpace(persona.PainPoints[0])
	},
	"EXPERTISE": func(p domain.WorkshopProfile) string {
		return strings.TrimSpace(p.QuizAnswer(domain.QuestionCurrentRole))
	},
	"INNOVATION": func(p domain.WorkshopProfile) string {
		return strings.TrimSpace(p.QuizAnswer(domain.QuestionUniqueApproach))
	},
	"IMPACT": func(p domain.WorkshopProfile) string {
		persona, ok := p.PrimaryPersona()
		if !ok || len(persona.Goals) == 0 {
			return ""
		}
		return strings.TrimSpace(persona.Goals[0])
	},
}

var (
	placeholderRe = regexp.MustCompile(`\[[^\]]*\]`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// MissionService genera declaraciones de misión por arquetipo.
// El suggester IA es opcional; ante cualquier fallo se usa el template local.
type MissionService struct {
	suggester MissionSuggester
	logger    *zap.Logger
}

func NewMissionService(suggester MissionSuggester, logger *zap.Logger) *MissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MissionService{suggester: suggester, logger: logger}
}

// GenerateMission devuelve exactamente una misión. Prefiere la primera
// sugerencia IA válida; si no hay, llena el template del arquetipo.
func (s *MissionService) GenerateMission(ctx context.Context, arch domain.Archetype, profile domain.WorkshopProfile) string {
	if s.suggester != nil {
		suggestions, err := s.suggester.Suggest(ctx, profile, arch)
		if err != nil {
			s.logger.Warn("mission suggester failed, falling back to template", zap.Error(err))
		}
		for _, m := range suggestions {
			if strings.TrimSpace(m) != "" {
				return strings.TrimSpace(m)
			}
		}
	}
	return FillMissionTemplate(arch, profile)
}

// FillMissionTemplate sustituye los slots del template del arquetipo y aplica
// el pase final de limpieza de placeholders sin llenar.
func FillMissionTemplate(arch domain.Archetype, profile domain.WorkshopProfile) string {
	out := arch.MissionTemplate
	for name, fill := range missionSlotFills {
		token := "[" + name + "]"
		if !strings.Contains(out, token) {
			continue
		}
		out = strings.ReplaceAll(out, token, fill(profile))
	}
	return stripUnfilledSlots(out)
}

// stripUnfilledSlots elimina cualquier token [..] restante y repara la puntuación.
func stripUnfilledSlots(s string) string {
	s = placeholderRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, " .", ".")
	s = strings.ReplaceAll(s, ",.", ".")
	return strings.TrimSpace(s)
}

func joinTopValues(values []string, limit int) string {
	trimmed := make([]string, 0, limit)
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		trimmed = append(trimmed, strings.TrimSpace(v))
		if len(trimmed) == limit {
			break
		}
	}
	switch len(trimmed) {
	case 0:
		return ""
	case 1:
		return trimmed[0]
	}
	return strings.Join(trimmed[:len(trimmed)-1], ", ") + " and " + trimmed[len(trimmed)-1]
}
