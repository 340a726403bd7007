package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/streamhub-api/shared/provider"
)

func TestBunnyStream_CreateVideo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/library/4242/videos", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("AccessKey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Episode 1", body["title"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"guid":"c2f0e6a4-guid","videoLibraryId":4242,"title":"Episode 1"}`))
	}))
	defer srv.Close()

	client := provider.NewBunnyStream("4242", "secret-key", srv.URL)

	video, err := client.CreateVideo(context.Background(), "Episode 1")
	require.NoError(t, err)
	assert.Equal(t, "c2f0e6a4-guid", video.GUID)
	assert.Equal(t, int64(4242), video.LibraryID)
	assert.Equal(t, "https://iframe.mediadelivery.net/embed/4242/c2f0e6a4-guid", client.EmbedURL(video.GUID))
}

func TestBunnyStream_DeleteVideo(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "deleted", status: http.StatusOK},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/library/4242/videos/abc", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := provider.NewBunnyStream("4242", "secret-key", srv.URL).DeleteVideo(context.Background(), "abc")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
