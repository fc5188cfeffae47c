package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wynngrid/internal/delivery/http/dto"
	"wynngrid/internal/delivery/http/middleware"
	"wynngrid/internal/domain/project"
	"wynngrid/internal/pkg/response"
	"wynngrid/internal/pkg/upload"
	"wynngrid/internal/usecase"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// RegisterRoutes mounts reads behind bearer auth only; proGuard gates the
// mutating routes so standard accounts can still list an empty gallery.
func (h *ProjectHandler) RegisterRoutes(r fiber.Router, proGuard fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create, proGuard)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update, proGuard)
	r.Delete("/:id", h.Delete, proGuard)
	r.Delete("/:id/images/:index", h.DeleteImage, proGuard)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	projects, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProjects(projects))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	p, err := h.uc.Get(c.Context(), id, userID)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProject(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Multipart form required", nil, err)
	}

	in := usecase.CreateProjectInput{
		Name:        formValue(form, "name"),
		ProjectType: formValue(form, "projectType"),
		Location:    formValue(form, "location"),
		Description: formValue(form, "description"),
	}
	if raw := formValue(form, "area"); raw != "" {
		if in.Area, err = strconv.ParseFloat(raw, 64); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "area must be a number", nil, err)
		}
	}
	if raw := formValue(form, "jobCost"); raw != "" {
		if in.JobCost, err = strconv.ParseFloat(raw, 64); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "jobCost must be a number", nil, err)
		}
	}
	for _, fh := range form.File["images"] {
		in.Images = append(in.Images, upload.FromMultipart(fh))
	}

	p, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Project created", dto.FromProject(p))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Multipart form required", nil, err)
	}

	var in usecase.UpdateProjectInput
	if vs := form.Value["name"]; len(vs) > 0 {
		in.Name = &vs[0]
	}
	if vs := form.Value["projectType"]; len(vs) > 0 {
		in.ProjectType = &vs[0]
	}
	if vs := form.Value["location"]; len(vs) > 0 {
		in.Location = &vs[0]
	}
	if vs := form.Value["description"]; len(vs) > 0 {
		in.Description = &vs[0]
	}
	if vs := form.Value["area"]; len(vs) > 0 {
		area, err := strconv.ParseFloat(vs[0], 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "area must be a number", nil, err)
		}
		in.Area = &area
	}
	if vs := form.Value["jobCost"]; len(vs) > 0 {
		cost, err := strconv.ParseFloat(vs[0], 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "jobCost must be a number", nil, err)
		}
		in.JobCost = &cost
	}
	for _, fh := range form.File["images"] {
		in.Images = append(in.Images, upload.FromMultipart(fh))
	}

	p, err := h.uc.Update(c.Context(), id, userID, in)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Project updated", dto.FromProject(p))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id, userID); err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Project deleted", nil)
}

func (h *ProjectHandler) DeleteImage(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid image index", nil, err)
	}

	p, err := h.uc.DeleteImage(c.Context(), id, userID, index)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Image deleted", dto.FromProject(p))
}

func mapProjectUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, project.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrMissingProjectFields),
		errors.Is(err, usecase.ErrInvalidProjectType),
		errors.Is(err, usecase.ErrTooFewImages),
		errors.Is(err, usecase.ErrInvalidImageIndex):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
