package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/assessment"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/repository"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Identity, ownership, and creation-time fields may never appear in an
// update payload.
var protectedUpdateFields = []string{"id", "user_id", "client_id", "created_at"}

// ErrProtectedField rejects updates that touch assessment identity.
type ErrProtectedField struct {
	Field string
}

func (e *ErrProtectedField) Error() string {
	return fmt.Sprintf("field %q is protected and cannot be updated", e.Field)
}

type AssessmentUsecase struct {
	assessmentRepo *repository.AssessmentRepository
	clientRepo     *repository.ClientRepository
	engine         *assessment.Engine
	logger         *zap.Logger
}

func NewAssessmentUsecase(
	assessmentRepo *repository.AssessmentRepository,
	clientRepo *repository.ClientRepository,
	engine *assessment.Engine,
	logger *zap.Logger,
) *AssessmentUsecase {
	return &AssessmentUsecase{
		assessmentRepo: assessmentRepo,
		clientRepo:     clientRepo,
		engine:         engine,
		logger:         logger,
	}
}

// Create scores a new assessment from the client's stored applicant
// attributes and persists it.
func (uc *AssessmentUsecase) Create(userID string, req dto.CreateAssessmentRequest) (*model.Assessment, error) {
	var attrs *dto.ApplicantAttributes
	if req.ClientID != "" {
		client, err := uc.clientRepo.FindByID(req.ClientID, userID)
		if err != nil {
			return nil, fmt.Errorf("client lookup: %w", err)
		}
		attrs = uc.clientAttributes(client)
	}

	a, err := uc.engine.Create(attrs, req.VisaSubclass, req.OccupationCode, req.OccupationName)
	if err != nil {
		return nil, err
	}
	a.UserID = userID
	a.ClientID = req.ClientID
	a.DocumentID = req.DocumentID

	if err := uc.assessmentRepo.Create(a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	return a, nil
}

// Update applies a partial update from a raw JSON payload. Protected fields
// are rejected before the payload is decoded; the engine then re-scores only
// the categories whose inputs changed. Concurrent updates to the same
// assessment must be serialized by the caller.
func (uc *AssessmentUsecase) Update(id string, raw []byte) (*model.Assessment, error) {
	for _, field := range protectedUpdateFields {
		if gjson.GetBytes(raw, field).Exists() {
			return nil, &ErrProtectedField{Field: field}
		}
	}

	var upd dto.AssessmentUpdate
	if err := json.Unmarshal(raw, &upd); err != nil {
		return nil, fmt.Errorf("decode update payload: %w", err)
	}

	a, err := uc.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("assessment lookup: %w", err)
	}

	if err := uc.engine.Update(a, &upd); err != nil {
		return nil, err
	}
	if err := uc.assessmentRepo.Save(a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	return a, nil
}

func (uc *AssessmentUsecase) Get(id string) (*model.Assessment, error) {
	return uc.assessmentRepo.FindByID(id)
}

func (uc *AssessmentUsecase) ListByUser(userID string) ([]model.Assessment, error) {
	return uc.assessmentRepo.FindByUser(userID)
}

// CreateClient registers a new applicant for the current user.
func (uc *AssessmentUsecase) CreateClient(userID string, req dto.ClientRequest) (*model.Client, error) {
	now := time.Now()
	client := &model.Client{
		ID:          uuid.New(),
		UserID:      userID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Nationality: req.Nationality,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	return client, nil
}

func (uc *AssessmentUsecase) GetClient(id, userID string) (*model.Client, error) {
	return uc.clientRepo.FindByID(id, userID)
}

func (uc *AssessmentUsecase) ListClients(userID string) ([]model.Client, error) {
	return uc.clientRepo.FindByUser(userID)
}

func (uc *AssessmentUsecase) UpdateClient(id, userID string, req dto.ClientRequest) (*model.Client, error) {
	client, err := uc.clientRepo.FindByID(id, userID)
	if err != nil {
		return nil, fmt.Errorf("client lookup: %w", err)
	}
	if req.FullName != "" {
		client.FullName = req.FullName
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.DateOfBirth != "" {
		client.DateOfBirth = req.DateOfBirth
	}
	if req.Nationality != "" {
		client.Nationality = req.Nationality
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Save(client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	return client, nil
}

// clientAttributes decodes the jsonb attribute columns of a client row.
// Broken documents are logged and treated as absent rather than failing the
// whole assessment.
func (uc *AssessmentUsecase) clientAttributes(client *model.Client) *dto.ApplicantAttributes {
	attrs := &dto.ApplicantAttributes{
		FullName:    client.FullName,
		Email:       client.Email,
		Phone:       client.Phone,
		Nationality: client.Nationality,
		DateOfBirth: client.DateOfBirth,
	}
	if client.Education != "" {
		if err := json.Unmarshal([]byte(client.Education), &attrs.Education); err != nil {
			uc.logger.Warn("unreadable education document on client",
				zap.String("client_id", client.ID.String()), zap.Error(err))
		}
	}
	if client.Experience != "" {
		if err := json.Unmarshal([]byte(client.Experience), &attrs.Experience); err != nil {
			uc.logger.Warn("unreadable experience document on client",
				zap.String("client_id", client.ID.String()), zap.Error(err))
		}
	}
	if client.English != "" {
		var english dto.English
		if err := json.Unmarshal([]byte(client.English), &english); err != nil {
			uc.logger.Warn("unreadable english document on client",
				zap.String("client_id", client.ID.String()), zap.Error(err))
		} else {
			attrs.English = &english
		}
	}
	return attrs
}
