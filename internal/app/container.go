package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"wynngrid/internal/config"
	"wynngrid/internal/database"
	"wynngrid/internal/database/migration"
	dbpostgres "wynngrid/internal/database/postgres"
	"wynngrid/internal/infrastructure/cache"
	"wynngrid/internal/pkg/googleauth"
	"wynngrid/internal/pkg/jwt"
	"wynngrid/internal/pkg/mail"
	"wynngrid/internal/pkg/otp"
	"wynngrid/internal/pkg/upload"
	"wynngrid/internal/repository"
	"wynngrid/internal/usecase"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	JWT      jwt.Service
	Mailer   mail.Mailer
	Uploader upload.Uploader
	Google   googleauth.Verifier

	Users    *repository.PostgresUserRepository
	Profiles *repository.PostgresProfileRepository
	Projects *repository.PostgresProjectRepository
	Contacts *repository.PostgresContactRepository
	Listing  *repository.PostgresListingRepository

	AuthUC       usecase.AuthUsecase
	OnboardingUC usecase.OnboardingUsecase
	ProjectUC    usecase.ProjectUsecase
	ContactUC    usecase.ContactUsecase
	NotifyUC     usecase.NotifyUsecase
	ListingUC    usecase.ListingUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.MigrationsDir != "" {
		runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	redisCache := cache.NewRedis(cfg.Cache, logger)

	var mailer mail.Mailer
	if cfg.SMTP.Host != "" {
		smtp, err := mail.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("smtp mailer: %w", err)
		}
		mailer = smtp
	} else {
		logger.Printf("[Mail] SMTP not configured, outgoing mail disabled")
	}

	uploader, err := upload.NewCloudinaryUploader(cfg.Cloudinary)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cloudinary uploader: %w", err)
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		JWT:      jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn),
		Mailer:   mailer,
		Uploader: uploader,
		Google:   googleauth.NewGoogleVerifier(cfg.Google.ClientID),
	}

	c.Users = repository.NewPostgresUserRepository(db)
	c.Profiles = repository.NewPostgresProfileRepository(db)
	c.Projects = repository.NewPostgresProjectRepository(db)
	c.Contacts = repository.NewPostgresContactRepository(db)
	c.Listing = repository.NewPostgresListingRepository(db)

	c.AuthUC = usecase.NewAuthUsecase(c.Users, c.JWT, otp.NewGenerator(), c.Mailer, c.Google, redisCache, logger)
	c.OnboardingUC = usecase.NewOnboardingUsecase(c.Profiles, c.Users, c.Uploader, c.Mailer, redisCache, logger)
	c.ProjectUC = usecase.NewProjectUsecase(c.Projects, c.Uploader, redisCache, logger)
	c.ContactUC = usecase.NewContactUsecase(c.Contacts, c.Mailer, cfg.App.AdminEmail, logger)
	c.NotifyUC = usecase.NewNotifyUsecase(c.Contacts, c.Mailer, logger)
	c.ListingUC = usecase.NewListingUsecase(c.Listing, redisCache, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
