package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"wynngrid/internal/domain/profile"
	"wynngrid/internal/domain/user"
	"wynngrid/internal/pkg/mail"
	"wynngrid/internal/pkg/upload"
)

// MaxBannerImages caps how many banner uploads a single request may carry.
const MaxBannerImages = 5

var (
	ErrProfilePicRequired    = errors.New("profile picture is required")
	ErrWorkLocationsRequired = errors.New("at least one preferred work location is required")
	ErrProjectTypesRequired  = errors.New("at least one project type with average area and value is required")
	ErrInvalidProjectAverage = errors.New("each project type must include projectType, avgArea, and avgValue")
	ErrTooManyBannerImages   = errors.New("a maximum of 5 banner images is allowed")
	ErrInvalidImageIndex     = errors.New("invalid image index")
)

type ProjectTypeInput struct {
	ProjectType     string   `json:"projectType"`
	AvgArea         float64  `json:"avgArea"`
	AvgValue        float64  `json:"avgValue"`
	Specializations []string `json:"specializations"`
}

type CompleteProfileInput struct {
	ProfilePic   upload.File
	BannerImages []upload.File

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
	PreferredWorkLocations []string
	TypeOfProjects         []ProjectTypeInput
}

// UpdateProfileInput carries only the fields present in the request. Nil
// string pointers and nil slices leave stored values untouched; banner
// uploads append while a profile picture upload replaces.
type UpdateProfileInput struct {
	ProfilePic   upload.File
	BannerImages []upload.File

	BusinessName           *string
	ContactNumber          *string
	City                   *string
	ServiceProviderType    *string
	ExperienceYears        *string
	GraduationInfo         *string
	Associations           *string
	PortfolioURLs          []string
	WebsiteURL             *string
	WorkSetupPreference    *string
	PreferredTimeline      *string
	AboutUs                *string
	Comments               *string
	PreferredWorkLocations []string
	TypeOfProjects         []ProjectTypeInput
}

type OnboardingUsecase interface {
	CompleteProfile(ctx context.Context, userID uuid.UUID, in CompleteProfileInput) (profile.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (profile.Profile, error)
	DeleteBannerImage(ctx context.Context, userID uuid.UUID, index int) (profile.Profile, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
	GetUserDetails(ctx context.Context, userID uuid.UUID) (user.User, *profile.Profile, error)
}

type Onboarding struct {
	profiles profile.Repository
	users    user.Repository
	uploader upload.Uploader
	mailer   mail.Mailer
	cache    ListingCache
	logger   *log.Logger
}

func NewOnboardingUsecase(profiles profile.Repository, users user.Repository, uploader upload.Uploader, mailer mail.Mailer, cache ListingCache, logger *log.Logger) *Onboarding {
	return &Onboarding{
		profiles: profiles,
		users:    users,
		uploader: uploader,
		mailer:   mailer,
		cache:    cache,
		logger:   logger,
	}
}

func (o *Onboarding) CompleteProfile(ctx context.Context, userID uuid.UUID, in CompleteProfileInput) (profile.Profile, error) {
	if in.ProfilePic == nil {
		return profile.Profile{}, ErrProfilePicRequired
	}
	if len(in.PreferredWorkLocations) == 0 {
		return profile.Profile{}, ErrWorkLocationsRequired
	}
	if len(in.TypeOfProjects) == 0 {
		return profile.Profile{}, ErrProjectTypesRequired
	}
	if err := validateProjectTypes(in.TypeOfProjects); err != nil {
		return profile.Profile{}, err
	}
	if len(in.BannerImages) > MaxBannerImages {
		return profile.Profile{}, ErrTooManyBannerImages
	}

	exists, err := o.profiles.ExistsByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	if exists {
		return profile.Profile{}, profile.ErrAlreadyExists
	}

	picURL, err := o.uploader.Upload(ctx, in.ProfilePic, upload.FolderProfilePictures)
	if err != nil {
		return profile.Profile{}, err
	}

	bannerURLs, err := o.uploadAll(ctx, in.BannerImages, upload.FolderBannerImages)
	if err != nil {
		return profile.Profile{}, err
	}

	p := profile.Profile{
		ID:                     uuid.New(),
		UserID:                 userID,
		ProfilePicURL:          picURL,
		BusinessName:           in.BusinessName,
		ContactNumber:          in.ContactNumber,
		City:                   in.City,
		ServiceProviderType:    in.ServiceProviderType,
		ExperienceYears:        in.ExperienceYears,
		GraduationInfo:         in.GraduationInfo,
		Associations:           in.Associations,
		PortfolioURLs:          emptyIfNil(in.PortfolioURLs),
		WebsiteURL:             in.WebsiteURL,
		WorkSetupPreference:    in.WorkSetupPreference,
		PreferredTimeline:      in.PreferredTimeline,
		AboutUs:                in.AboutUs,
		Comments:               in.Comments,
		BannerImageURLs:        bannerURLs,
		PreferredWorkLocations: in.PreferredWorkLocations,
	}
	p.Averages = toAverages(p.ID, in.TypeOfProjects)

	if err := o.profiles.Create(ctx, p); err != nil {
		return profile.Profile{}, err
	}

	// Completing onboarding is what makes an account visible in the pro
	// listing.
	if u, err := o.users.GetByID(ctx, userID); err == nil && u.UserType != user.TypePro {
		u.UserType = user.TypePro
		if err := o.users.Update(ctx, u); err != nil {
			return profile.Profile{}, err
		}
	}

	invalidateProUsers(ctx, o.cache)

	if u, err := o.users.GetByID(ctx, userID); err == nil {
		mail.SendBestEffort(ctx, o.mailer, o.logger, u.Email,
			"Onboarding Complete",
			"Thank you for completing your onboarding process. We appreciate you believing in us!")
	}

	return o.profiles.GetByUserID(ctx, userID)
}

func (o *Onboarding) GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, user.User, error) {
	p, err := o.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, user.User{}, err
	}
	u, err := o.users.GetByID(ctx, userID)
	if err != nil {
		return profile.Profile{}, user.User{}, err
	}
	return p, sanitizeUser(u), nil
}

func (o *Onboarding) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (profile.Profile, error) {
	p, err := o.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	if len(in.BannerImages) > MaxBannerImages {
		return profile.Profile{}, ErrTooManyBannerImages
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&p.BusinessName, in.BusinessName)
	applyString(&p.ContactNumber, in.ContactNumber)
	applyString(&p.City, in.City)
	applyString(&p.ServiceProviderType, in.ServiceProviderType)
	applyString(&p.ExperienceYears, in.ExperienceYears)
	applyString(&p.GraduationInfo, in.GraduationInfo)
	applyString(&p.Associations, in.Associations)
	applyString(&p.WebsiteURL, in.WebsiteURL)
	applyString(&p.WorkSetupPreference, in.WorkSetupPreference)
	applyString(&p.PreferredTimeline, in.PreferredTimeline)
	applyString(&p.AboutUs, in.AboutUs)
	applyString(&p.Comments, in.Comments)

	if in.PortfolioURLs != nil {
		p.PortfolioURLs = in.PortfolioURLs
	}
	if in.PreferredWorkLocations != nil {
		p.PreferredWorkLocations = in.PreferredWorkLocations
	}

	if in.ProfilePic != nil {
		url, err := o.uploader.Upload(ctx, in.ProfilePic, upload.FolderProfilePictures)
		if err != nil {
			return profile.Profile{}, err
		}
		p.ProfilePicURL = url
	}

	if len(in.BannerImages) > 0 {
		urls, err := o.uploadAll(ctx, in.BannerImages, upload.FolderBannerImages)
		if err != nil {
			return profile.Profile{}, err
		}
		p.BannerImageURLs = append(p.BannerImageURLs, urls...)
	}

	replaceAverages := in.TypeOfProjects != nil
	if replaceAverages {
		if len(in.TypeOfProjects) == 0 {
			return profile.Profile{}, ErrProjectTypesRequired
		}
		if err := validateProjectTypes(in.TypeOfProjects); err != nil {
			return profile.Profile{}, err
		}
		p.Averages = toAverages(p.ID, in.TypeOfProjects)
	}

	if err := o.profiles.Update(ctx, p, replaceAverages); err != nil {
		return profile.Profile{}, err
	}

	invalidateProUsers(ctx, o.cache)
	return o.profiles.GetByUserID(ctx, userID)
}

func (o *Onboarding) DeleteBannerImage(ctx context.Context, userID uuid.UUID, index int) (profile.Profile, error) {
	p, err := o.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	if index < 0 || index >= len(p.BannerImageURLs) {
		return profile.Profile{}, ErrInvalidImageIndex
	}

	p.BannerImageURLs = append(p.BannerImageURLs[:index], p.BannerImageURLs[index+1:]...)
	if err := o.profiles.Update(ctx, p, false); err != nil {
		return profile.Profile{}, err
	}

	invalidateProUsers(ctx, o.cache)
	return p, nil
}

func (o *Onboarding) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if err := o.profiles.Delete(ctx, userID); err != nil {
		return err
	}

	invalidateProUsers(ctx, o.cache)

	if u, err := o.users.GetByID(ctx, userID); err == nil {
		mail.SendBestEffort(ctx, o.mailer, o.logger, u.Email,
			"Profile deleted", "Profile deleted successfully")
	}
	return nil
}

func (o *Onboarding) GetUserDetails(ctx context.Context, userID uuid.UUID) (user.User, *profile.Profile, error) {
	u, err := o.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, nil, err
	}

	p, err := o.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return sanitizeUser(u), nil, nil
		}
		return user.User{}, nil, err
	}
	return sanitizeUser(u), &p, nil
}

// uploadAll pushes files concurrently, preserving request order in the
// returned URLs.
func (o *Onboarding) uploadAll(ctx context.Context, files []upload.File, folder string) ([]string, error) {
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			url, err := o.uploader.Upload(gctx, f, folder)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func validateProjectTypes(in []ProjectTypeInput) error {
	for _, t := range in {
		if t.ProjectType == "" || t.AvgArea == 0 || t.AvgValue == 0 {
			return ErrInvalidProjectAverage
		}
	}
	return nil
}

func toAverages(profileID uuid.UUID, in []ProjectTypeInput) []profile.ProjectAverage {
	out := make([]profile.ProjectAverage, 0, len(in))
	for _, t := range in {
		out = append(out, profile.ProjectAverage{
			ID:              uuid.New(),
			ProfileID:       profileID,
			ProjectType:     t.ProjectType,
			AvgArea:         t.AvgArea,
			AvgValue:        t.AvgValue,
			Specializations: emptyIfNil(t.Specializations),
		})
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
