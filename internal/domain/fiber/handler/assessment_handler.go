package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/usecase"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/util"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/visa"
)

type AssessmentHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/visa-assessment", h.Create)
	app.Get("/visa-assessment", h.List)
	app.Get("/visa-assessment/:id", h.Get)
	app.Patch("/visa-assessment/:id", h.Update)

	app.Post("/clients", h.CreateClient)
	app.Get("/clients", h.ListClients)
	app.Get("/clients/:id", h.GetClient)
	app.Put("/clients/:id", h.UpdateClient)
}

func (h *AssessmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.VisaSubclass == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "visa_subclass is required",
		})
	}

	a, err := h.uc.Create(c.Get("X-User-ID"), req)
	if err != nil {
		if errors.Is(err, visa.ErrUnsupportedSubclass) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "unsupported visa subclass",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create assessment",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create assessment",
		Data:    toAssessmentDTO(a),
	})
}

func (h *AssessmentHandler) Get(c *fiber.Ctx) error {
	a, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "assessment not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get assessment",
		Data:    toAssessmentDTO(a),
	})
}

func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	assessments, err := h.uc.ListByUser(c.Get("X-User-ID"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list assessments",
		}, err)
	}
	out := make([]dto.AssessmentDTO, 0, len(assessments))
	for i := range assessments {
		out = append(out, toAssessmentDTO(&assessments[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list assessments",
		Data:    out,
	})
}

func (h *AssessmentHandler) Update(c *fiber.Ctx) error {
	a, err := h.uc.Update(c.Params("id"), c.Body())
	if err != nil {
		var protected *usecase.ErrProtectedField
		switch {
		case errors.As(err, &protected):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: protected.Error(),
			})
		case errors.Is(err, visa.ErrUnsupportedSubclass):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "unsupported visa subclass",
			}, err)
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to update assessment",
			}, err)
		}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update assessment",
		Data:    toAssessmentDTO(a),
	})
}

func (h *AssessmentHandler) CreateClient(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.FullName == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "full_name is required",
		})
	}
	client, err := h.uc.CreateClient(c.Get("X-User-ID"), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create client",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create client",
		Data:    client,
	})
}

func (h *AssessmentHandler) GetClient(c *fiber.Ctx) error {
	client, err := h.uc.GetClient(c.Params("id"), c.Get("X-User-ID"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "client not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get client",
		Data:    client,
	})
}

func (h *AssessmentHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.uc.ListClients(c.Get("X-User-ID"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list clients",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list clients",
		Data:    clients,
	})
}

func (h *AssessmentHandler) UpdateClient(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	client, err := h.uc.UpdateClient(c.Params("id"), c.Get("X-User-ID"), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "client not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update client",
		Data:    client,
	})
}

func toAssessmentDTO(a *model.Assessment) dto.AssessmentDTO {
	return dto.AssessmentDTO{
		ID:                a.ID,
		ClientID:          a.ClientID,
		DocumentID:        a.DocumentID,
		VisaSubclass:      a.VisaSubclass,
		VisaName:          a.VisaName,
		OccupationCode:    a.OccupationCode,
		OccupationName:    a.OccupationName,
		Status:            a.Status,
		EligibilityStatus: a.EligibilityStatus,
		EligibilityNotes:  a.EligibilityNotes,

		AgeValue:                 a.AgeValue,
		AgePoints:                a.AgePoints,
		EnglishLevel:             a.EnglishLevel,
		EnglishTest:              a.EnglishTest,
		EnglishPoints:            a.EnglishPoints,
		EducationLevel:           a.EducationLevel,
		EducationField:           a.EducationField,
		EducationPoints:          a.EducationPoints,
		ExperienceOverseasYears:  a.ExperienceOverseasYears,
		ExperienceAustraliaYears: a.ExperienceAustraliaYears,
		ExperiencePoints:         a.ExperiencePoints,

		AustralianStudyPoints:     a.AustralianStudyPoints,
		SpecialistEducationPoints: a.SpecialistEducationPoints,
		PartnerSkillsPoints:       a.PartnerSkillsPoints,
		CommunityLanguagePoints:   a.CommunityLanguagePoints,
		RegionalStudyPoints:       a.RegionalStudyPoints,
		ProfessionalYearPoints:    a.ProfessionalYearPoints,

		TotalPoints: a.TotalPoints,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
