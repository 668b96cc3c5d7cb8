package handler

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/middleware"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/usecase"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/util"
)

const maxUploadSize = 5 * 1024 * 1024

type DocumentHandler struct {
	uc *usecase.DocumentUsecase
}

func NewDocumentHandler(uc *usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/documents/upload-cv", middleware.RateLimiter(1, 4*time.Second), h.UploadCV)
	app.Get("/documents/client/:clientId/latest", h.Latest)
}

func (h *DocumentHandler) UploadCV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "cv file is required",
		}, err)
	}
	if file.Size > maxUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "cv file size is too large (max 5MB)",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("unsupported file type %s, only PDF is accepted", ext),
		})
	}

	savePath := filepath.Join("./uploads/cv/", file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save cv file",
		}, err)
	}

	text, err := util.ExtractPDFText(savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "failed to extract cv text",
		}, err)
	}

	userID := c.Get("X-User-ID")
	clientID := c.FormValue("client_id")

	result, err := h.uc.ProcessCV(c.Context(), userID, clientID, file.Filename, file.Header.Get("Content-Type"), file.Size, text)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to analyze cv",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success analyze cv",
		Data:    result,
	})
}

func (h *DocumentHandler) Latest(c *fiber.Ctx) error {
	clientID := c.Params("clientId")
	doc, matches, err := h.uc.LatestForClient(clientID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "no documents found for this client",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get latest document",
		Data: fiber.Map{
			"document":           doc,
			"occupation_matches": matches,
		},
	})
}
