package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize caps post image uploads at 5 MB.
const MaxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageStore saves uploaded post images to local disk. Posts keep only the
// public path; the files themselves are served as static assets.
type ImageStore struct {
	Dir string // filesystem directory the images land in
}

func NewImageStore() *ImageStore {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./web/uploads/posts_images"
	}
	return &ImageStore{Dir: dir}
}

// ValidateImageName checks the extension of an uploaded filename and returns
// it normalized to lower case.
func ValidateImageName(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	return ext, nil
}

// Save stores the uploaded file under a fresh uuid name and returns the
// public URL path to record on the post.
func (s *ImageStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxImageSize {
		return "", fmt.Errorf("image too large: %d bytes", header.Size)
	}

	ext, err := ValidateImageName(header.Filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return "/uploads/posts_images/" + name, nil
}
