package upload

import (
	"context"
	"io"
	"mime/multipart"
)

const (
	FolderProfilePictures = "profile_pictures"
	FolderBannerImages    = "banner_images"
	FolderProjectImages   = "project_images"
)

// MaxFileSize caps uploads at 5MB, matching the media host's limit.
const MaxFileSize = 5 * 1024 * 1024

// File is an upload source. Handlers wrap multipart file headers; tests use
// in-memory fakes.
type File interface {
	Open() (io.ReadCloser, error)
	Filename() string
	Size() int64
}

// Uploader pushes a file to the media host and returns a durable URL.
type Uploader interface {
	Upload(ctx context.Context, f File, folder string) (string, error)
}

type multipartFile struct {
	fh *multipart.FileHeader
}

func FromMultipart(fh *multipart.FileHeader) File {
	return multipartFile{fh: fh}
}

func (m multipartFile) Open() (io.ReadCloser, error) { return m.fh.Open() }
func (m multipartFile) Filename() string             { return m.fh.Filename }
func (m multipartFile) Size() int64                  { return m.fh.Size }
