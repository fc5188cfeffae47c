package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/delivery/http/dto"
	"wynngrid/internal/delivery/http/middleware"
	"wynngrid/internal/domain/profile"
	"wynngrid/internal/domain/user"
	"wynngrid/internal/pkg/response"
	"wynngrid/internal/pkg/upload"
	"wynngrid/internal/usecase"
)

type OnboardingHandler struct {
	uc usecase.OnboardingUsecase
}

// updateProfileData is the JSON document carried in the multipart "data"
// field of an update request. Absent fields stay untouched.
type updateProfileData struct {
	BusinessName           *string                    `json:"businessName"`
	ContactNumber          *string                    `json:"contactNumber"`
	City                   *string                    `json:"city"`
	ServiceProviderType    *string                    `json:"serviceProviderType"`
	ExperienceYears        *string                    `json:"experienceYears"`
	GraduationInfo         *string                    `json:"graduationInfo"`
	Associations           *string                    `json:"associations"`
	PortfolioURLs          []string                   `json:"portfolioUrls"`
	WebsiteURL             *string                    `json:"websiteUrl"`
	WorkSetupPreference    *string                    `json:"workSetupPreference"`
	PreferredTimeline      *string                    `json:"preferredTimeline"`
	AboutUs                *string                    `json:"aboutUs"`
	Comments               *string                    `json:"comments"`
	PreferredWorkLocations []string                   `json:"preferredWorkLocations"`
	TypeOfProjects         []usecase.ProjectTypeInput `json:"typeOfProjects"`
}

func NewOnboardingHandler(uc usecase.OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

func (h *OnboardingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/complete-profile", h.CompleteProfile)
	r.Get("/profile", h.GetProfile)
	r.Put("/update-profile", h.UpdateProfile)
	r.Delete("/delete-profile", h.DeleteProfile)
	r.Get("/user-details", h.GetUserDetails)
	r.Delete("/delete-banner-image/:index", h.DeleteBannerImage)
}

func (h *OnboardingHandler) CompleteProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Multipart form required", nil, err)
	}

	in := usecase.CompleteProfileInput{
		BusinessName:        formValue(form, "businessName"),
		ContactNumber:       formValue(form, "contactNumber"),
		City:                formValue(form, "city"),
		ServiceProviderType: formValue(form, "serviceProviderType"),
		ExperienceYears:     formValue(form, "experienceYears"),
		GraduationInfo:      formValue(form, "graduationInfo"),
		Associations:        formValue(form, "associations"),
		WebsiteURL:          formValue(form, "websiteUrl"),
		WorkSetupPreference: formValue(form, "workSetupPreference"),
		PreferredTimeline:   formValue(form, "preferredTimeline"),
		AboutUs:             formValue(form, "aboutUs"),
		Comments:            formValue(form, "comments"),
	}

	if err := decodeFormJSON(form, "portfolioUrls", &in.PortfolioURLs); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "portfolioUrls must be a JSON array", nil, err)
	}
	if err := decodeFormJSON(form, "preferredWorkLocations", &in.PreferredWorkLocations); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "preferredWorkLocations must be a JSON array", nil, err)
	}
	if err := decodeFormJSON(form, "typeOfProjects", &in.TypeOfProjects); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "typeOfProjects must be a JSON array", nil, err)
	}

	if fhs := form.File["profilePic"]; len(fhs) > 0 {
		in.ProfilePic = upload.FromMultipart(fhs[0])
	}
	for _, fh := range form.File["bannerImages"] {
		in.BannerImages = append(in.BannerImages, upload.FromMultipart(fh))
	}

	p, err := h.uc.CompleteProfile(c.Context(), userID, in)
	if err != nil {
		return mapOnboardingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Profile created", dto.FromProfile(p))
}

func (h *OnboardingHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, u, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapOnboardingUsecaseError(err)
	}

	data := map[string]any{
		"profile": dto.FromProfile(p),
		"user":    dto.FromUser(u),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *OnboardingHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Multipart form required", nil, err)
	}

	var data updateProfileData
	if raw := formValue(form, "data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "data must be a JSON object", nil, err)
		}
	}

	in := usecase.UpdateProfileInput{
		BusinessName:           data.BusinessName,
		ContactNumber:          data.ContactNumber,
		City:                   data.City,
		ServiceProviderType:    data.ServiceProviderType,
		ExperienceYears:        data.ExperienceYears,
		GraduationInfo:         data.GraduationInfo,
		Associations:           data.Associations,
		PortfolioURLs:          data.PortfolioURLs,
		WebsiteURL:             data.WebsiteURL,
		WorkSetupPreference:    data.WorkSetupPreference,
		PreferredTimeline:      data.PreferredTimeline,
		AboutUs:                data.AboutUs,
		Comments:               data.Comments,
		PreferredWorkLocations: data.PreferredWorkLocations,
		TypeOfProjects:         data.TypeOfProjects,
	}

	if fhs := form.File["profilePic"]; len(fhs) > 0 {
		in.ProfilePic = upload.FromMultipart(fhs[0])
	}
	for _, fh := range form.File["bannerImages"] {
		in.BannerImages = append(in.BannerImages, upload.FromMultipart(fh))
	}

	p, err := h.uc.UpdateProfile(c.Context(), userID, in)
	if err != nil {
		return mapOnboardingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile updated", dto.FromProfile(p))
}

func (h *OnboardingHandler) DeleteBannerImage(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid image index", nil, err)
	}

	p, err := h.uc.DeleteBannerImage(c.Context(), userID, index)
	if err != nil {
		return mapOnboardingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Banner image deleted", dto.FromProfile(p))
}

func (h *OnboardingHandler) DeleteProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.DeleteProfile(c.Context(), userID); err != nil {
		return mapOnboardingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile deleted", nil)
}

func (h *OnboardingHandler) GetUserDetails(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	u, p, err := h.uc.GetUserDetails(c.Context(), userID)
	if err != nil {
		return mapOnboardingUsecaseError(err)
	}

	data := map[string]any{
		"user":    dto.FromUser(u),
		"profile": nil,
	}
	if p != nil {
		data["profile"] = dto.FromProfile(*p)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// decodeFormJSON parses a JSON-encoded multipart field. A missing or empty
// field leaves out untouched.
func decodeFormJSON(form *multipart.Form, key string, out any) error {
	raw := formValue(form, key)
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

func mapOnboardingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, profile.ErrAlreadyExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "Profile already exists", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrProfilePicRequired),
		errors.Is(err, usecase.ErrWorkLocationsRequired),
		errors.Is(err, usecase.ErrProjectTypesRequired),
		errors.Is(err, usecase.ErrInvalidProjectAverage),
		errors.Is(err, usecase.ErrTooManyBannerImages),
		errors.Is(err, usecase.ErrInvalidImageIndex):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
