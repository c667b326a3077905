package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu_backoffice/internal/storage"
)

// memBlob keeps uploads out of the tests entirely; it only records deletes.
type memBlob struct {
	deleted []string
}

func (m *memBlob) Upload(_ context.Context, _ []byte, folder, _ string) (storage.BlobInfo, error) {
	key := folder + "/" + uuid.NewString()
	return storage.BlobInfo{URL: "https://cdn.test/" + key, PublicID: key}, nil
}

func (m *memBlob) Delete(_ context.Context, publicID string) error {
	m.deleted = append(m.deleted, publicID)
	return nil
}

func bannerRouter() *gin.Engine {
	r := gin.New()
	r.POST("/banners", CreateBanner)
	r.DELETE("/banners/:id", DeleteBanner)
	return r
}

func postBanner(t *testing.T, r http.Handler, position, title string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("position", position))
	require.NoError(t, w.WriteField("title", title))
	fw, err := w.CreateFormFile("image", "banner.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("imagebytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/banners", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBannerPositionConflictThenDeleteAndRetry(t *testing.T) {
	setupTestDB(t)
	blob := &memBlob{}
	storage.Blob = blob
	r := bannerRouter()

	rec := postBanner(t, r, "1", "Admissions open")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Banner struct {
			ID uint `json:"ID"`
		} `json:"banner"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Same position: conflict carrying the blocking banner's id
	rec = postBanner(t, r, "1", "Results declared")
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	var conflict struct {
		ConflictID uint `json:"conflict_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conflict))
	assert.Equal(t, created.Banner.ID, conflict.ConflictID)

	// The documented recovery: delete the blocker, then retry
	req := httptest.NewRequest(http.MethodDelete, "/banners/"+itoa(created.Banner.ID), nil)
	del := httptest.NewRecorder()
	r.ServeHTTP(del, req)
	require.Equal(t, http.StatusOK, del.Code, del.Body.String())
	assert.Len(t, blob.deleted, 1)

	rec = postBanner(t, r, "1", "Results declared")
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
