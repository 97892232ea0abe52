package archive

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/fiam/gounidecode/unidecode"
)

// Archiver lưu bản gốc file CSV sau khi upload thành công
type Archiver interface {
	Archive(ctx context.Context, file File) (string, error)
}

// File là một file CSV của lần upload
type File struct {
	Campaign string
	Day      string
	RunID    string
	Field    string
	Data     []byte
}

// Folder trả về thư mục lưu trữ: ingest/<campaign>/<day>
func (f File) Folder() string {
	return fmt.Sprintf("ingest/%s/%s", slug(f.Campaign), f.Day)
}

// PublicID là tên file: <run-id>-<field>.csv
func (f File) PublicID() string {
	return fmt.Sprintf("%s-%s.csv", f.RunID, f.Field)
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
	return strings.Join(strings.Fields(s), "-")
}

// CloudinaryArchiver upload file dạng raw lên Cloudinary
type CloudinaryArchiver struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryArchiver(cld *cloudinary.Cloudinary) *CloudinaryArchiver {
	return &CloudinaryArchiver{cld: cld}
}

func (a *CloudinaryArchiver) Archive(ctx context.Context, file File) (string, error) {
	resp, err := a.cld.Upload.Upload(ctx, bytes.NewReader(file.Data), uploader.UploadParams{
		Folder:       file.Folder(),
		PublicID:     file.PublicID(),
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// NopArchiver dùng khi không cấu hình CLOUDINARY_URL
type NopArchiver struct{}

func (NopArchiver) Archive(context.Context, File) (string, error) {
	return "", nil
}
