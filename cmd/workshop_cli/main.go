package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"brand-dna/internal/domain"
	"brand-dna/internal/llm"
	"brand-dna/internal/service"
)

// CLI interactiva del workshop de marca: arma el perfil por consola, corre
// la clasificación y muestra UVPs, misión y ganchos de contenido. No toca
// base de datos; el enriquecimiento LLM se activa solo si hay LLM_API_KEY.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	logger := zap.NewExample()
	defer logger.Sync()

	catalog := domain.DefaultArchetypes()

	var (
		writingAnalyzer     service.WritingAnalyzer
		personalityAnalyzer service.PersonalityAnalyzer
		missionSuggester    service.MissionSuggester
	)
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		llmClient := llm.NewHTTPClient(os.Getenv("LLM_BASE_URL"), apiKey, os.Getenv("LLM_MODEL"), os.Getenv("LLM_EMBED_MODEL"), zap.NewStdLog(logger))
		writingAnalyzer = service.NewLLMWritingAnalyzer(llmClient, domain.ArchetypeIDs(catalog), nil, logger)
		personalityAnalyzer = service.NewLLMPersonalityAnalyzer(llmClient, logger)
		missionSuggester = service.NewLLMMissionSuggester(llmClient)
		fmt.Println("Enriquecimiento LLM activado.")
	}

	classifier := service.NewClassifierService(catalog, domain.DefaultSynonyms(), writingAnalyzer, personalityAnalyzer, logger)
	uvpSvc := service.NewUVPService(catalog, service.StaticTerminologyProvider{}, logger)
	missionSvc := service.NewMissionService(missionSuggester, logger)

	fmt.Println("===== Brand Workshop =====")
	profile := buildProfileFlow(reader)

	result := classifier.Classify(ctx, profile)
	printClassification(result)

	analysis := uvpSvc.ConstructUVP(ctx, profile, result.Primary.Archetype.ID)
	printUVP(analysis)

	mission := missionSvc.GenerateMission(ctx, result.Primary.Archetype, profile)
	fmt.Println("\n--- Misión ---")
	fmt.Println(mission)

	hooks := service.GenerateContentHooks(analysis)
	fmt.Println("\n--- Ganchos de contenido ---")
	for i, hook := range hooks {
		fmt.Printf("[%d] %s\n", i+1, hook)
	}
}

func buildProfileFlow(reader *bufio.Reader) domain.WorkshopProfile {
	var profile domain.WorkshopProfile

	fmt.Println("Valores de marca, en orden de prioridad (coma separada):")
	profile.SelectedValues = readList(reader)

	fmt.Println("\nSliders de tono (-100 a 100, enter para 0):")
	tone := domain.TonePreferences{Scale: domain.ToneScaleSigned}
	tone.Formality = readSlider(reader, "Formalidad")
	tone.Analytical = readSlider(reader, "Analítico")
	tone.Creative = readSlider(reader, "Creativo")
	tone.Assertive = readSlider(reader, "Asertivo")
	profile.TonePreferences = &tone

	fmt.Println("\nCuestionario (enter para saltar):")
	questions := []struct {
		id     string
		prompt string
	}{
		{domain.QuestionCurrentRole, "¿Cuál es tu rol actual?"},
		{domain.QuestionUniqueApproach, "¿Qué hace único tu enfoque?"},
		{domain.QuestionIndustryFrustation, "¿Qué te frustra de tu industria?"},
	}
	for _, q := range questions {
		fmt.Printf("%s ", q.prompt)
		answer := readLine(reader)
		if answer != "" {
			profile.QuizResponses = append(profile.QuizResponses, domain.QuizResponse{
				QuestionID: q.id,
				AnswerText: answer,
			})
		}
	}

	fmt.Println("\nPega una muestra de escritura (una línea, enter para saltar):")
	profile.WritingSample = readLine(reader)

	fmt.Println("\nAudiencia objetivo:")
	fmt.Print("Nombre de la persona (enter para saltar): ")
	if name := readLine(reader); name != "" {
		persona := domain.AudiencePersona{Name: name}
		fmt.Print("Industria: ")
		persona.Industry = readLine(reader)
		fmt.Println("Dolores (coma separada):")
		persona.PainPoints = readList(reader)
		fmt.Println("Metas (coma separada):")
		persona.Goals = readList(reader)
		profile.Personas = append(profile.Personas, persona)
	}

	return profile
}

func printClassification(result domain.ClassificationResult) {
	fmt.Println("\n--- Clasificación ---")
	fmt.Printf("Arquetipo primario: %s (score %.2f, confianza %.2f)\n",
		result.Primary.Archetype.Name, result.Primary.Total, result.Primary.Confidence)
	if result.Secondary != nil {
		fmt.Printf("Secundario: %s (score %.2f)\n", result.Secondary.Archetype.Name, result.Secondary.Total)
	}
	if result.Hybrid != nil {
		fmt.Printf("Híbrido: %s (blend %.2f)\n", result.Hybrid.Name, result.Hybrid.BlendRatio)
	}
	b := result.Primary.Breakdown
	fmt.Printf("Dimensiones: valores %.2f | tono %.2f | personalidad %.2f | escritura %.2f | audiencia %.2f\n",
		b.Values, b.Tone, b.Personality, b.Writing, b.Audience)
}

func printUVP(analysis domain.UVPAnalysis) {
	fmt.Println("\n--- Propuestas de valor ---")
	for _, v := range analysis.Variations {
		marker := " "
		if v.ID == analysis.PrimaryUVP.ID {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s\n", marker, v.Type, v.Statement)
	}
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func readList(reader *bufio.Reader) []string {
	var items []string
	for _, part := range strings.Split(readLine(reader), ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func readSlider(reader *bufio.Reader, label string) float64 {
	fmt.Printf("%s: ", label)
	raw := readLine(reader)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	if v < -100 {
		return -100
	}
	if v > 100 {
		return 100
	}
	return v
}
