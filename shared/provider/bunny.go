package provider

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	bunnyStreamBaseURL = "https://video.bunnycdn.com"
	bunnyEmbedURL      = "https://iframe.mediadelivery.net/embed/%s/%s"
)

// Video is a video object in a Bunny Stream library.
type Video struct {
	GUID      string `json:"guid"`
	LibraryID int64  `json:"videoLibraryId"`
	Title     string `json:"title"`
}

// BunnyStream is a client for the Bunny Stream video API.
type BunnyStream struct {
	client    *resty.Client
	libraryID string
}

// NewBunnyStream creates a Bunny Stream client for a video library.
// An empty baseURL selects the public API.
func NewBunnyStream(libraryID, apiKey, baseURL string) *BunnyStream {
	if baseURL == "" {
		baseURL = bunnyStreamBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("AccessKey", apiKey).
		SetHeader("Accept", "application/json")

	return &BunnyStream{client: client, libraryID: libraryID}
}

// CreateVideo registers a new, empty video in the library.
func (b *BunnyStream) CreateVideo(ctx context.Context, title string) (*Video, error) {
	var video Video

	resp, err := b.client.R().
		SetContext(ctx).
		SetPathParam("libraryId", b.libraryID).
		SetBody(map[string]string{"title": title}).
		SetResult(&video).
		Post("/library/{libraryId}/videos")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("bunny stream returned %d: %s", resp.StatusCode(), resp.String())
	}

	return &video, nil
}

// DeleteVideo removes a video from the library.
func (b *BunnyStream) DeleteVideo(ctx context.Context, guid string) error {
	resp, err := b.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"libraryId": b.libraryID, "guid": guid}).
		Delete("/library/{libraryId}/videos/{guid}")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("bunny stream returned %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

// EmbedURL returns the player URL for a video.
func (b *BunnyStream) EmbedURL(guid string) string {
	return fmt.Sprintf(bunnyEmbedURL, b.libraryID, guid)
}
