package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the onboarding record describing a service provider's business
// details. One per account.
type Profile struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	ProfilePicURL          string
	BusinessName           string
	ContactNumber          string
	City                   string
	ServiceProviderType    string
	ExperienceYears        string
	GraduationInfo         string
	Associations           string
	PortfolioURLs          []string
	WebsiteURL             string
	WorkSetupPreference    string
	PreferredTimeline      string
	AboutUs                string
	Comments               string
	BannerImageURLs        []string
	PreferredWorkLocations []string
	Averages               []ProjectAverage
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// ProjectAverage is the per-project-type aggregate a provider reports. The
// whole collection is replaced, never diffed, when new data is supplied.
type ProjectAverage struct {
	ID              uuid.UUID
	ProfileID       uuid.UUID
	ProjectType     string
	AvgArea         float64
	AvgValue        float64
	Specializations []string
}
