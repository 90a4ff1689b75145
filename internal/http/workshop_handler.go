package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"brand-dna/internal/domain"
	"brand-dna/internal/email"
	"brand-dna/internal/llm"
	"brand-dna/internal/repository"
	"brand-dna/internal/service"
)

// WorkshopHandler mantiene dependencias para los endpoints del workshop de marca.
type WorkshopHandler struct {
	logger      *zap.Logger
	catalog     []domain.Archetype
	classifier  *service.ClassifierService
	uvpServ     *service.UVPService
	missionServ *service.MissionService
	llmClient   llm.LLMClient
	profiles    repository.WorkshopProfileRepository
	snapshots   repository.SnapshotRepository
	sender      email.Sender
	limiter     service.EnrichRateLimiter
}

// NewWorkshopHandler crea una instancia de WorkshopHandler con dependencias necesarias.
func NewWorkshopHandler(
	logger *zap.Logger,
	catalog []domain.Archetype,
	classifier *service.ClassifierService,
	uvpServ *service.UVPService,
	missionServ *service.MissionService,
	llmClient llm.LLMClient,
	profiles repository.WorkshopProfileRepository,
	snapshots repository.SnapshotRepository,
	sender email.Sender,
	limiter service.EnrichRateLimiter,
) *WorkshopHandler {
	return &WorkshopHandler{
		logger:      logger,
		catalog:     catalog,
		classifier:  classifier,
		uvpServ:     uvpServ,
		missionServ: missionServ,
		llmClient:   llmClient,
		profiles:    profiles,
		snapshots:   snapshots,
		sender:      sender,
		limiter:     limiter,
	}
}

// Classify maneja POST /workshop/classify.
func (h *WorkshopHandler) Classify(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var profile domain.WorkshopProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid classify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	profile.UserID = claims.UserID

	if h.limiter != nil && !h.limiter.Allow(claims.UserID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	result := h.classifier.Classify(c.Request.Context(), profile)
	c.JSON(http.StatusOK, gin.H{"classification": result})
}

// ConstructUVP maneja POST /workshop/uvp.
func (h *WorkshopHandler) ConstructUVP(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Profile   domain.WorkshopProfile `json:"profile" binding:"required"`
		Archetype string                 `json:"archetype" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid uvp request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Profile.UserID = claims.UserID

	analysis := h.uvpServ.ConstructUVP(c.Request.Context(), req.Profile, req.Archetype)
	c.JSON(http.StatusOK, gin.H{"uvp": analysis})
}

// GenerateMission maneja POST /workshop/mission.
func (h *WorkshopHandler) GenerateMission(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Profile     domain.WorkshopProfile `json:"profile" binding:"required"`
		ArchetypeID string                 `json:"archetype_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mission request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Profile.UserID = claims.UserID

	arch, ok := domain.ArchetypeByID(h.catalog, req.ArchetypeID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown archetype"})
		return
	}

	mission := h.missionServ.GenerateMission(c.Request.Context(), arch, req.Profile)
	c.JSON(http.StatusOK, gin.H{"mission": mission})
}

// GenerateHooks maneja POST /workshop/hooks.
func (h *WorkshopHandler) GenerateHooks(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Profile   domain.WorkshopProfile `json:"profile" binding:"required"`
		Archetype string                 `json:"archetype" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid hooks request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Profile.UserID = claims.UserID

	analysis := h.uvpServ.ConstructUVP(c.Request.Context(), req.Profile, req.Archetype)
	hooks := service.GenerateContentHooks(analysis)
	c.JSON(http.StatusOK, gin.H{"hooks": hooks, "uvp": analysis})
}

// CreateSnapshot maneja POST /workshop/snapshots: corre el pipeline completo
// (clasificación, UVP, misión, embedding) y lo persiste.
func (h *WorkshopHandler) CreateSnapshot(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var profile domain.WorkshopProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid snapshot request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(claims.UserID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	now := time.Now().UTC()
	profile.UserID = claims.UserID
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	ctx := c.Request.Context()
	classification := h.classifier.Classify(ctx, profile)
	analysis := h.uvpServ.ConstructUVP(ctx, profile, classification.Primary.Archetype.ID)
	mission := h.missionServ.GenerateMission(ctx, classification.Primary.Archetype, profile)

	snapshot := domain.BrandSnapshot{
		ID:          uuid.New(),
		UserID:      claims.UserID,
		ArchetypeID: classification.Primary.Archetype.ID,
		TotalScore:  classification.Primary.Total,
		Confidence:  classification.Primary.Confidence,
		Hybrid:      classification.Hybrid,
		PrimaryUVP:  analysis.PrimaryUVP.Statement,
		Mission:     mission,
		CreatedAt:   now,
	}

	// El embedding es mejor-esfuerzo: sin muestra o sin proveedor se
	// guarda el snapshot igual, solo que no participa en búsquedas.
	if sample := strings.TrimSpace(profile.WritingSample); sample != "" && h.llmClient != nil {
		if vec, err := h.llmClient.CreateEmbedding(ctx, sample); err != nil {
			h.logger.Warn("snapshot embedding failed", zap.Error(err))
		} else if len(vec) > 0 {
			snapshot.Embedding = pgvector.NewVector(vec)
			snapshot.HasEmbedding = true
		}
	}

	if err := h.profiles.Upsert(ctx, profile); err != nil {
		h.logger.Error("save workshop profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}
	if err := h.snapshots.Create(ctx, snapshot); err != nil {
		h.logger.Error("create snapshot failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create snapshot"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"snapshot":       snapshot,
		"classification": classification,
		"uvp":            analysis,
		"mission":        mission,
	})
}

// ListSnapshots maneja GET /workshop/snapshots.
func (h *WorkshopHandler) ListSnapshots(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	snapshots, err := h.snapshots.ListByUser(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		h.logger.Error("list snapshots failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list snapshots"})
		return
	}
	if snapshots == nil {
		snapshots = []domain.BrandSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

// SimilarSnapshots maneja GET /workshop/snapshots/similar: busca perfiles
// de otras personas con voz de escritura cercana.
func (h *WorkshopHandler) SimilarSnapshots(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if h.llmClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "embeddings unavailable"})
		return
	}

	ctx := c.Request.Context()
	profile, err := h.profiles.GetByUserID(ctx, claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workshop profile not found"})
		return
	}
	sample := strings.TrimSpace(profile.WritingSample)
	if sample == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile has no writing sample"})
		return
	}

	vec, err := h.llmClient.CreateEmbedding(ctx, sample)
	if err != nil {
		h.logger.Error("similarity embedding failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "embeddings unavailable"})
		return
	}

	k, _ := strconv.Atoi(c.DefaultQuery("k", "5"))
	matches, err := h.snapshots.SearchSimilar(ctx, pgvector.NewVector(vec), claims.UserID, k)
	if err != nil {
		h.logger.Error("similarity search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search snapshots"})
		return
	}
	if matches == nil {
		matches = []domain.BrandSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// SendReport maneja POST /workshop/report: envía por correo el último snapshot.
func (h *WorkshopHandler) SendReport(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if h.sender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email delivery unavailable"})
		return
	}

	ctx := c.Request.Context()
	snapshots, err := h.snapshots.ListByUser(ctx, claims.UserID, 1)
	if err != nil || len(snapshots) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot to report"})
		return
	}

	body := buildReportBody(claims.DisplayName, h.catalog, snapshots[0])
	if err := h.sender.SendBrandReport(ctx, claims.Email, "Your brand report", body); err != nil {
		h.logger.Error("send report failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email delivery unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "report_sent"})
}

func buildReportBody(displayName string, catalog []domain.Archetype, s domain.BrandSnapshot) string {
	archetypeName := s.ArchetypeID
	if arch, ok := domain.ArchetypeByID(catalog, s.ArchetypeID); ok {
		archetypeName = arch.Name
	}

	var b strings.Builder
	greeting := "Hi"
	if strings.TrimSpace(displayName) != "" {
		greeting = "Hi " + displayName
	}
	fmt.Fprintf(&b, "%s,\n\n", greeting)
	fmt.Fprintf(&b, "Your brand archetype: %s\n", archetypeName)
	if s.Hybrid != nil {
		fmt.Fprintf(&b, "Hybrid profile: %s\n", s.Hybrid.Name)
	}
	fmt.Fprintf(&b, "Confidence: %.0f%%\n\n", s.Confidence*100)
	fmt.Fprintf(&b, "Your value proposition:\n%s\n\n", s.PrimaryUVP)
	fmt.Fprintf(&b, "Your mission statement:\n%s\n", s.Mission)
	return b.String()
}
