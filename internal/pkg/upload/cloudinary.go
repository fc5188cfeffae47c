package upload

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"wynngrid/internal/config"
)

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are required")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, f File, folder string) (string, error) {
	if f == nil {
		return "", fmt.Errorf("nil file")
	}
	if f.Size() > MaxFileSize {
		return "", fmt.Errorf("file %s exceeds %d bytes", f.Filename(), int64(MaxFileSize))
	}

	src, err := f.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resp, err := u.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         folder,
		AllowedFormats: api.CldAPIArray{"jpg", "png", "jpeg"},
	})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.SecureURL == "" {
		return "", fmt.Errorf("upload of %s returned no URL", f.Filename())
	}
	return resp.SecureURL, nil
}
