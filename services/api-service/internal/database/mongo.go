package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
)

// ErrMissingURI is returned when no connection string is configured.
var ErrMissingURI = errors.New("MONGODB_URI environment variable is not set")

const connectTimeout = 10 * time.Second

// Pool owns the process-wide Mongo client. It is created once by main and
// handed to the data-access layer.
type Pool struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client, verifies it with a ping and selects dbName.
func Connect(ctx context.Context, uri, dbName string) (*Pool, error) {
	if uri == "" {
		return nil, ErrMissingURI
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, apperror.Wrap(err, "connect to database")
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperror.Wrap(err, "connect to database")
	}

	return &Pool{client: client, db: client.Database(dbName)}, nil
}

// Database returns the selected database.
func (p *Pool) Database() *mongo.Database {
	return p.db
}

// Close disconnects the client.
func (p *Pool) Close(ctx context.Context) error {
	return p.client.Disconnect(ctx)
}
