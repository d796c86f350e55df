package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artem13815/jobseeker/api/http/presenter"
	"github.com/artem13815/jobseeker/pkg/extract"
	"github.com/artem13815/jobseeker/pkg/jobseeker"
	"github.com/artem13815/jobseeker/pkg/resume"
	"github.com/artem13815/jobseeker/pkg/security/jwt"
)

type IngestHandler struct {
	svc jobseeker.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	log      zerolog.Logger
}

func NewIngestHandler(svc jobseeker.UseCase, maxBytes int64, log zerolog.Logger) *IngestHandler {
	if maxBytes <= 0 {
		maxBytes = resume.DefaultMaxBytes
	}
	return &IngestHandler{svc: svc, maxBytes: maxBytes, log: log}
}

// SkillsAppliedResponse: resulting приходит в режиме replace, added в режиме add.
type SkillsAppliedResponse struct {
	Mode      string    `json:"mode" example:"add"`
	Resulting *[]string `json:"resulting,omitempty"`
	Added     *[]string `json:"added,omitempty"`
}

type IngestResponse struct {
	OK            bool                  `json:"ok" example:"true"`
	Parsed        extract.ParsedResume  `json:"parsed"`
	SkillsApplied SkillsAppliedResponse `json:"skillsApplied"`
}

func newIngestResponse(res jobseeker.IngestResult) IngestResponse {
	applied := SkillsAppliedResponse{Mode: string(res.Skills.Mode)}
	if res.Skills.Mode == jobseeker.SkillsReplace {
		resulting := res.Skills.Resulting
		if resulting == nil {
			resulting = []string{}
		}
		applied.Resulting = &resulting
	} else {
		added := res.Skills.Added
		if added == nil {
			added = []string{}
		}
		applied.Added = &added
	}
	return IngestResponse{OK: true, Parsed: res.Parsed, SkillsApplied: applied}
}

// Ingest принимает файл резюме, извлекает из него данные и обновляет
// профиль соискателя.
// @Summary Загрузка и разбор резюме
// @Description Принимает PDF, DOCX или текст, извлекает контакты, опыт, интересы и навыки и сливает их в профиль. skillsMode=add (по умолчанию) добавляет новые навыки, replace заменяет набор целиком.
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   file       formData file   true  "Файл резюме (PDF, DOCX или TXT)"
// @Param   userId     formData string false "ID соискателя (UUID); по умолчанию subject токена"
// @Param   skillsMode formData string false "add или replace" Enums(add, replace)
// @Security BearerAuth
// @Success 200 {object} IngestResponse
// @Failure 400 {object} presenter.ErrorResponse "Нет файла, userId или неверный skillsMode"
// @Failure 403 {object} presenter.ErrorResponse "Чужой профиль"
// @Failure 413 {object} presenter.ErrorResponse "Файл слишком большой"
// @Failure 415 {object} presenter.ErrorResponse "Неподдерживаемый формат"
// @Failure 422 {object} presenter.ErrorResponse "Не удалось прочитать текст"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/ingest [post]
func (h *IngestHandler) Ingest(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.FormValue("userId"))
	if subject, ok := c.Locals(jwt.LocalUserID).(string); ok && subject != "" {
		if userID == "" {
			userID = subject
		} else if !strings.EqualFold(userID, subject) && !isAdmin(c) {
			return presenter.Error(c, http.StatusForbidden, "userId does not match token")
		}
	}
	if userID == "" {
		return presenter.Error(c, http.StatusBadRequest, "Missing userId")
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "Missing file")
	}
	if fh.Size > h.maxBytes {
		return ingestError(c, resume.ErrTooLarge)
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return ingestError(c, err)
	}

	res, err := h.svc.Ingest(c.UserContext(), jobseeker.IngestInput{
		UserID:     userID,
		SkillsMode: c.FormValue("skillsMode"),
		Filename:   fh.Filename,
		MimeType:   fh.Header.Get(fiber.HeaderContentType),
		Data:       data,
	})
	if err != nil {
		if status, _ := ingestStatus(err); status == http.StatusInternalServerError {
			h.log.Error().Err(err).Str("user_id", userID).Msg("ingest failed")
		}
		return ingestError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newIngestResponse(res))
}

// ingestStatus maps ingest errors to an HTTP status and client message.
func ingestStatus(err error) (int, string) {
	switch {
	case errors.Is(err, jobseeker.ErrMissingUser):
		return http.StatusBadRequest, "Missing userId"
	case errors.Is(err, jobseeker.ErrInvalidUser), errors.Is(err, jobseeker.ErrInvalidMode):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, resume.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "File too large"
	case errors.Is(err, resume.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, "Unsupported file format: pdf, docx or plain text expected"
	case errors.Is(err, jobseeker.ErrEmptyText), errors.Is(err, resume.ErrCorrupt):
		return http.StatusUnprocessableEntity, "Could not read resume text"
	default:
		return http.StatusInternalServerError, "Failed to ingest resume"
	}
}

func ingestError(c *fiber.Ctx, err error) error {
	status, msg := ingestStatus(err)
	return presenter.Error(c, status, msg)
}

func isAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals(jwt.LocalIsAdmin).(bool)
	return admin
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", resume.ErrTooLarge, max)
	}
	return b, nil
}
