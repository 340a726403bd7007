package payload

import "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"

type IDRequest struct {
	ID string `form:"id" json:"id" validate:"required"`
}

// ListSeriesRequest either looks a single series up by ID or lists series.
type ListSeriesRequest struct {
	ID       string `form:"id"`
	Genre    string `form:"genre"`
	Featured *bool  `form:"featured"`
	Limit    int64  `form:"limit"    validate:"gte=0,lte=100"`
	Skip     int64  `form:"skip"     validate:"gte=0"`
}

type SearchRequest struct {
	Query string `form:"q" json:"q"`
}

type ListEpisodesRequest struct {
	SeriesID string `form:"seriesId" json:"seriesId" validate:"required"`
}

type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

type SaveSeriesRequest struct {
	ID          string           `json:"_id"`
	LegacyID    *model.NumericID `json:"id"`
	Name        string           `json:"name"        validate:"required,max=200"`
	Description string           `json:"description"`
	Cover       string           `json:"cover"       validate:"omitempty,url"`
	Genre       []model.GenreRef `json:"genre"       validate:"dive"`
	Tags        []string         `json:"tags"`
	Languages   []string         `json:"languages"`
	VideoID     string           `json:"videoId"`
	Featured    bool             `json:"featured"`
}

type SaveEpisodeRequest struct {
	ID            string `json:"_id"`
	SeriesID      string `json:"seriesId"      validate:"required"`
	EpisodeNumber int    `json:"episodeNumber" validate:"required,min=1"`
	Title         string `json:"title"         validate:"required,max=200"`
	Description   string `json:"description"`
	Thumbnail     string `json:"thumbnail"`
	VideoID       string `json:"videoId"`
	VideoURL      string `json:"videoUrl"      validate:"omitempty,url"`
	Duration      int    `json:"duration"      validate:"gte=0"`
}

type SaveGenreRequest struct {
	ID      string          `json:"_id"`
	GenreID model.NumericID `json:"id"`
	Name    string          `json:"name" validate:"required,max=50"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
