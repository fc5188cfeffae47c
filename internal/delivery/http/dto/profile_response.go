package dto

import (
	"time"

	"github.com/google/uuid"

	"wynngrid/internal/domain/profile"
)

type ProjectAverageResponse struct {
	ID              uuid.UUID `json:"id"`
	ProjectType     string    `json:"projectType"`
	AvgArea         float64   `json:"avgArea"`
	AvgValue        float64   `json:"avgValue"`
	Specializations []string  `json:"specializations"`
}

type ProfileResponse struct {
	ID                     uuid.UUID                `json:"id"`
	UserID                 uuid.UUID                `json:"userId"`
	ProfilePic             string                   `json:"profilePicUrl"`
	BusinessName           string                   `json:"businessName"`
	ContactNumber          string                   `json:"contactNumber"`
	City                   string                   `json:"city"`
	ServiceProviderType    string                   `json:"serviceProviderType"`
	ExperienceYears        string                   `json:"experienceYears"`
	GraduationInfo         string                   `json:"graduationInfo"`
	Associations           string                   `json:"associations"`
	PortfolioURLs          []string                 `json:"portfolioUrls"`
	WebsiteURL             string                   `json:"websiteUrl"`
	WorkSetupPreference    string                   `json:"workSetupPreference"`
	PreferredTimeline      string                   `json:"preferredTimeline"`
	AboutUs                string                   `json:"aboutUs"`
	Comments               string                   `json:"comments"`
	BannerImages           []string                 `json:"bannerImages"`
	PreferredWorkLocations []string                 `json:"preferredWorkLocations"`
	TypeOfProjects         []ProjectAverageResponse `json:"typeOfProjects"`
	CreatedAt              time.Time                `json:"createdAt"`
	UpdatedAt              time.Time                `json:"updatedAt"`
}

func FromProfile(p profile.Profile) ProfileResponse {
	averages := make([]ProjectAverageResponse, 0, len(p.Averages))
	for _, a := range p.Averages {
		averages = append(averages, ProjectAverageResponse{
			ID:              a.ID,
			ProjectType:     a.ProjectType,
			AvgArea:         a.AvgArea,
			AvgValue:        a.AvgValue,
			Specializations: a.Specializations,
		})
	}

	return ProfileResponse{
		ID:                     p.ID,
		UserID:                 p.UserID,
		ProfilePic:             p.ProfilePicURL,
		BusinessName:           p.BusinessName,
		ContactNumber:          p.ContactNumber,
		City:                   p.City,
		ServiceProviderType:    p.ServiceProviderType,
		ExperienceYears:        p.ExperienceYears,
		GraduationInfo:         p.GraduationInfo,
		Associations:           p.Associations,
		PortfolioURLs:          p.PortfolioURLs,
		WebsiteURL:             p.WebsiteURL,
		WorkSetupPreference:    p.WorkSetupPreference,
		PreferredTimeline:      p.PreferredTimeline,
		AboutUs:                p.AboutUs,
		Comments:               p.Comments,
		BannerImages:           p.BannerImageURLs,
		PreferredWorkLocations: p.PreferredWorkLocations,
		TypeOfProjects:         averages,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}
