package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"buymyshop/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WebsitePayment{}, &models.UserSetting{}, &models.SiteMetric{}))
	return db
}

// stubCloud stands in for the Cloudinary blob store.
type stubCloud struct {
	url  string
	fail bool
}

func (s *stubCloud) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	if s.fail {
		return "", errors.New("upload refused")
	}
	return s.url, nil
}

// recordNotifier captures notifications instead of hitting Telegram.
type recordNotifier struct {
	submitted []*models.WebsitePayment
	decided   []*models.WebsitePayment
}

func (n *recordNotifier) NotifyNewPayment(p *models.WebsitePayment) { n.submitted = append(n.submitted, p) }
func (n *recordNotifier) NotifyDecision(p *models.WebsitePayment)   { n.decided = append(n.decided, p) }

// pngBytes returns content http.DetectContentType reports as image/png.
func pngBytes(size int) []byte {
	sig := []byte("\x89PNG\r\n\x1a\n")
	if size < len(sig) {
		size = len(sig)
	}
	b := make([]byte, size)
	copy(b, sig)
	return b
}

// multipartForm builds a multipart body with the given fields and an
// optional proof_image file.
func multipartForm(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("proof_image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}
