package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// WatchHistory records that a series, and optionally an episode, was watched.
type WatchHistory struct {
	ID         bson.ObjectID `bson:"_id,omitempty"        json:"_id"`
	SeriesID   string        `bson:"seriesId"             json:"seriesId"`
	EpisodeID  string        `bson:"episodeId,omitempty"  json:"episodeId,omitempty"`
	SeriesName string        `bson:"seriesName,omitempty" json:"seriesName,omitempty"`
	Cover      string        `bson:"cover,omitempty"      json:"cover,omitempty"`
	Progress   int           `bson:"progress,omitempty"   json:"progress,omitempty"`
	WatchedAt  time.Time     `bson:"watchedAt"            json:"watchedAt"`
}

type Favorite struct {
	ID         bson.ObjectID `bson:"_id,omitempty"        json:"_id"`
	SeriesID   string        `bson:"seriesId"             json:"seriesId"`
	SeriesName string        `bson:"seriesName,omitempty" json:"seriesName,omitempty"`
	Cover      string        `bson:"cover,omitempty"      json:"cover,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt"            json:"createdAt"`
}
