package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/applicant"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/matcher"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/repository"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/service"
	"go.uber.org/zap"
)

// DocumentUsecase runs the CV pipeline: extracted text in, ranked occupation
// matches and updated applicant attributes out.
type DocumentUsecase struct {
	documentRepo   *repository.DocumentRepository
	occupationRepo *repository.OccupationRepository
	clientRepo     *repository.ClientRepository
	openRouter     service.OpenRouterServiceInterface
	gemini         service.GeminiServiceInterface
	matcher        *matcher.Matcher
	logger         *zap.Logger
}

func NewDocumentUsecase(
	documentRepo *repository.DocumentRepository,
	occupationRepo *repository.OccupationRepository,
	clientRepo *repository.ClientRepository,
	openRouter service.OpenRouterServiceInterface,
	gemini service.GeminiServiceInterface,
	m *matcher.Matcher,
	logger *zap.Logger,
) *DocumentUsecase {
	return &DocumentUsecase{
		documentRepo:   documentRepo,
		occupationRepo: occupationRepo,
		clientRepo:     clientRepo,
		openRouter:     openRouter,
		gemini:         gemini,
		matcher:        m,
		logger:         logger,
	}
}

// ProcessCV stores the uploaded document, suggests occupations for its text,
// matches them against a single catalog snapshot, and merges extracted
// applicant attributes onto the client record when one is linked.
func (uc *DocumentUsecase) ProcessCV(ctx context.Context, userID, clientID, filename, fileType string, fileSize int64, text string) (*dto.CVAnalysisResponse, error) {
	suggested, err := uc.openRouter.SuggestOccupations(ctx, text)
	if err != nil {
		uc.logger.Warn("primary suggestion provider failed, falling back to gemini", zap.Error(err))
		suggested, err = uc.gemini.SuggestOccupations(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("analyze cv: %w", err)
		}
	}

	rows, err := uc.occupationRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load occupation catalog: %w", err)
	}
	catalog := matcher.CatalogFromOccupations(rows, uc.logger)
	matches := uc.matcher.Match(ctx, suggested, catalog)

	now := time.Now()
	doc := &model.Document{
		ID:            uuid.New(),
		UserID:        userID,
		ClientID:      clientID,
		Filename:      filename,
		FileType:      fileType,
		FileSize:      fileSize,
		ExtractedText: text,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.documentRepo.Create(doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	records := make([]model.DocumentOccupation, 0, len(matches))
	for _, match := range matches {
		records = append(records, model.DocumentOccupation{
			ID:                  uuid.New(),
			DocumentID:          doc.ID,
			AnzscoCode:          match.Entry.Code,
			OccupationName:      match.Entry.Name,
			ConfidenceScore:     match.Confidence,
			SuggestedOccupation: match.Suggested,
			CreatedAt:           now,
		})
	}
	if err := uc.documentRepo.ReplaceMatches(doc.ID.String(), records); err != nil {
		return nil, fmt.Errorf("save occupation matches: %w", err)
	}

	if clientID != "" {
		// attribute extraction failing must not sink the upload; the matches
		// are already useful on their own
		if err := uc.updateClientAttributes(ctx, userID, clientID, text); err != nil {
			uc.logger.Warn("applicant data extraction failed",
				zap.String("client_id", clientID),
				zap.Error(err),
			)
		}
	}

	return &dto.CVAnalysisResponse{
		DocumentID:        doc.ID.String(),
		SuggestedNames:    suggested,
		OccupationMatches: MatchesToDTO(matches),
	}, nil
}

// LatestForClient returns the most recent document for a client together
// with its recorded occupation matches.
func (uc *DocumentUsecase) LatestForClient(clientID string) (*model.Document, []model.DocumentOccupation, error) {
	doc, err := uc.documentRepo.LatestByClient(clientID)
	if err != nil {
		return nil, nil, err
	}
	matches, err := uc.documentRepo.MatchesByDocument(doc.ID.String())
	if err != nil {
		return nil, nil, err
	}
	return doc, matches, nil
}

func (uc *DocumentUsecase) updateClientAttributes(ctx context.Context, userID, clientID, text string) error {
	attrs, err := uc.openRouter.ExtractApplicantData(ctx, text)
	if err != nil {
		return err
	}
	applicant.Normalize(attrs)

	client, err := uc.clientRepo.FindByID(clientID, userID)
	if err != nil {
		return fmt.Errorf("client lookup: %w", err)
	}

	if attrs.FullName != "" {
		client.FullName = attrs.FullName
	}
	if attrs.Email != "" {
		client.Email = attrs.Email
	}
	if attrs.Phone != "" {
		client.Phone = attrs.Phone
	}
	if attrs.Nationality != "" {
		client.Nationality = attrs.Nationality
	}
	if attrs.DateOfBirth != "" && attrs.DateOfBirth != applicant.UnknownDate {
		client.DateOfBirth = attrs.DateOfBirth
	}
	if len(attrs.Education) > 0 {
		if encoded, err := json.Marshal(attrs.Education); err == nil {
			client.Education = string(encoded)
		}
	}
	if len(attrs.Experience) > 0 {
		if encoded, err := json.Marshal(attrs.Experience); err == nil {
			client.Experience = string(encoded)
		}
	}
	if attrs.English != nil {
		if encoded, err := json.Marshal(attrs.English); err == nil {
			client.English = string(encoded)
		}
	}
	client.UpdatedAt = time.Now()
	return uc.clientRepo.Save(client)
}

// MatchesToDTO converts ranked matcher output to the wire shape.
func MatchesToDTO(matches []matcher.Match) []dto.OccupationMatchDTO {
	out := make([]dto.OccupationMatchDTO, 0, len(matches))
	for _, match := range matches {
		out = append(out, dto.OccupationMatchDTO{
			AnzscoCode:          match.Entry.Code,
			OccupationName:      match.Entry.Name,
			List:                match.Entry.List,
			VisaSubclasses:      match.Entry.VisaSubclasses,
			AssessingAuthority:  match.Entry.AssessingAuthority,
			ConfidenceScore:     match.Confidence,
			SuggestedOccupation: match.Suggested,
		})
	}
	return out
}
