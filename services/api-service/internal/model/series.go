package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GenreRef is the copy of a genre embedded in a series.
type GenreRef struct {
	ID   NumericID `bson:"id"   json:"id"`
	Name string    `bson:"name" json:"name"`
}

type Series struct {
	ID          bson.ObjectID `bson:"_id,omitempty"       json:"_id"`
	LegacyID    *NumericID    `bson:"id,omitempty"        json:"id,omitempty"`
	Name        string        `bson:"name"                json:"name"`
	Description string        `bson:"description"         json:"description"`
	Cover       string        `bson:"cover"               json:"cover"`
	Genre       []GenreRef    `bson:"genre"               json:"genre"`
	Tags        []string      `bson:"tags,omitempty"      json:"tags,omitempty"`
	Languages   []string      `bson:"languages,omitempty" json:"languages,omitempty"`
	VideoID     string        `bson:"videoId,omitempty"   json:"videoId,omitempty"`
	Featured    bool          `bson:"featured"            json:"featured"`
	CreatedAt   time.Time     `bson:"createdAt"           json:"createdAt"`
}

// FirstGenreName returns the name of the first genre, or "".
func (s *Series) FirstGenreName() string {
	if len(s.Genre) == 0 {
		return ""
	}
	return s.Genre[0].Name
}

type Episode struct {
	ID            bson.ObjectID `bson:"_id,omitempty"         json:"_id"`
	SeriesID      string        `bson:"seriesId"              json:"seriesId"`
	EpisodeNumber int           `bson:"episodeNumber"         json:"episodeNumber"`
	Title         string        `bson:"title"                 json:"title"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	Thumbnail     string        `bson:"thumbnail,omitempty"   json:"thumbnail,omitempty"`
	VideoID       string        `bson:"videoId,omitempty"     json:"videoId,omitempty"`
	VideoURL      string        `bson:"videoUrl,omitempty"    json:"videoUrl,omitempty"`
	Duration      int           `bson:"duration,omitempty"    json:"duration,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt"             json:"createdAt"`
}

// Genre is the source of truth for genre names. Series keep their own copies.
type Genre struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	GenreID NumericID     `bson:"id"            json:"id"`
	Name    string        `bson:"name"          json:"name"`
}

// Ref returns the embedded form of the genre.
func (g *Genre) Ref() GenreRef {
	return GenreRef{ID: g.GenreID, Name: g.Name}
}
