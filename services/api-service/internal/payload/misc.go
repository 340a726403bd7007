package payload

type AddTodoRequest struct {
	Text string `json:"text"`
}

type ToggleTodoRequest struct {
	ID string `json:"id" validate:"required"`
}

type AddHistoryRequest struct {
	SeriesID   string `json:"seriesId"   validate:"required"`
	EpisodeID  string `json:"episodeId"`
	SeriesName string `json:"seriesName"`
	Cover      string `json:"cover"`
	Progress   int    `json:"progress"   validate:"gte=0"`
}

// DeleteHistoryRequest removes one entry, or the whole history when ID is empty.
type DeleteHistoryRequest struct {
	ID string `json:"id"`
}

type AddFavoriteRequest struct {
	SeriesID   string `json:"seriesId"   validate:"required"`
	SeriesName string `json:"seriesName"`
	Cover      string `json:"cover"`
}

type UploadImageRequest struct {
	File   string `json:"file"   validate:"required,imagesource"`
	Folder string `json:"folder" validate:"omitempty,alphanum"`
}

type DeleteImageRequest struct {
	PublicID string `json:"publicId" validate:"required"`
}

type CreateVideoRequest struct {
	Title string `json:"title" validate:"max=200"`
}

type DeleteVideoRequest struct {
	VideoID string `json:"videoId" validate:"required"`
}

type VideoResponse struct {
	VideoID   string `json:"videoId"`
	LibraryID int64  `json:"libraryId"`
	EmbedURL  string `json:"embedUrl"`
}

type SeedResponse struct {
	Inserted map[string]int `json:"inserted"`
}

// Empty is the request of operations that take no input.
type Empty struct{}
