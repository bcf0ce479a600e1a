package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"publisher-gateway/domain/dto"
	"publisher-gateway/infrastructure/clients/facebook"
	"publisher-gateway/infrastructure/logger"
	"publisher-gateway/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMedia_CarouselSendsEmptyAttachedMediaWhenEveryUploadFails(t *testing.T) {
	logger.SetOutput(io.Discard)

	var mu sync.Mutex
	var feedBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		switch {
		case strings.HasSuffix(r.URL.Path, "/photos"):
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"bad image"}}`))
		case strings.HasSuffix(r.URL.Path, "/feed"):
			mu.Lock()
			assert.NoError(t, json.Unmarshal(raw, &feedBody))
			mu.Unlock()
			_, _ = w.Write([]byte(`{"id":"page-1_5"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	graph := facebook.NewGraphClient(context.Background(), &facebook.Config{
		PageID:      "page-1",
		AccessToken: "token",
		APIVersion:  "v20.0",
		BaseURL:     srv.URL,
	})
	uc := usecase.NewFacebookPublishUsecase(graph, commentLabel)

	result, err := uc.PostMedia(context.Background(), &dto.MediaPostRequest{ImageURLs: []string{"a", "b"}, Caption: "c"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.PhotosCount)
	mu.Lock()
	defer mu.Unlock()
	require.Contains(t, feedBody, "attached_media")
	assert.Equal(t, []interface{}{}, feedBody["attached_media"])
	assert.Equal(t, "c", feedBody["message"])
}
