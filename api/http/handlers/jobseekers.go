package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobseeker/api/http/presenter"
	"github.com/artem13815/jobseeker/pkg/jobseeker"
	"github.com/artem13815/jobseeker/pkg/security/jwt"
)

type JobseekersHandler struct {
	svc jobseeker.UseCase
}

func NewJobseekersHandler(svc jobseeker.UseCase) *JobseekersHandler {
	return &JobseekersHandler{svc: svc}
}

type ListResponse struct {
	OK     bool                `json:"ok" example:"true"`
	Items  []jobseeker.Profile `json:"items"`
	Limit  int                 `json:"limit" example:"50"`
	Offset int                 `json:"offset" example:"0"`
}

// tokenSubject returns the authenticated user id, "" when auth is off.
func tokenSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(jwt.LocalUserID).(string)
	return s
}

// Get возвращает сохранённый профиль соискателя.
// @Summary Профиль соискателя
// @Tags    Соискатели
// @Produce json
// @Param   id path string true "ID соискателя (UUID)"
// @Security BearerAuth
// @Success 200 {object} jobseeker.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobseekers/{id} [get]
func (h *JobseekersHandler) Get(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if sub := tokenSubject(c); sub != "" && !strings.EqualFold(sub, id) && !isAdmin(c) {
		return presenter.Error(c, http.StatusForbidden, "access to another profile is not allowed")
	}
	p, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, jobseeker.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "jobseeker not found")
		case errors.Is(err, jobseeker.ErrMissingUser), errors.Is(err, jobseeker.ErrInvalidUser):
			return presenter.Error(c, http.StatusBadRequest, "invalid id")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load jobseeker")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// List возвращает профили, новые сверху. Только для администратора,
// если включена авторизация.
// @Summary Список соискателей
// @Tags    Соискатели
// @Produce json
// @Param   skill  query string false "Фильтр по навыку (поддерживаются синонимы, например k8s)"
// @Param   limit  query int    false "Размер страницы (1..200)" default(50)
// @Param   offset query int    false "Смещение" default(0)
// @Security BearerAuth
// @Success 200 {object} ListResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobseekers [get]
func (h *JobseekersHandler) List(c *fiber.Ctx) error {
	if tokenSubject(c) != "" && !isAdmin(c) {
		return presenter.Error(c, http.StatusForbidden, "admin only")
	}
	limit, offset := parseLimitOffset(c, defaultPageLimit)
	items, err := h.svc.List(c.UserContext(), jobseeker.ListFilter{
		Skill:  c.Query("skill"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list jobseekers")
	}
	return presenter.JSON(c, http.StatusOK, ListResponse{OK: true, Items: items, Limit: limit, Offset: offset})
}
