package seed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/payload"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/repository"
	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/store"
	"github.com/vasapolrittideah/streamhub-api/shared/apperror"
)

// Seeder wipes the demo collections and fills them with sample data.
// Users, watch history and favourites are left alone.
type Seeder struct {
	store  store.Store
	logger *zerolog.Logger
	now    func() time.Time
}

func NewSeeder(s store.Store, logger *zerolog.Logger) *Seeder {
	return &Seeder{store: s, logger: logger, now: time.Now}
}

type collection struct {
	name string
	docs []any
}

// Run replaces every seeded collection concurrently. The first failure
// cancels the remaining writes.
func (s *Seeder) Run(ctx context.Context) (*payload.SeedResponse, error) {
	collections := s.dataset()

	var (
		mu       sync.Mutex
		inserted = make(map[string]int, len(collections))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range collections {
		g.Go(func() error {
			if _, err := s.store.Remove(ctx, c.name, bson.M{}); err != nil {
				return fmt.Errorf("clear %s: %w", c.name, err)
			}

			for _, doc := range c.docs {
				if _, err := s.store.Save(ctx, c.name, doc); err != nil {
					return fmt.Errorf("seed %s: %w", c.name, err)
				}
			}

			mu.Lock()
			inserted[c.name] = len(c.docs)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperror.Wrap(err, "seed sample data")
	}

	s.logger.Info().Interface("inserted", inserted).Msg("seeded sample data")

	return &payload.SeedResponse{Inserted: inserted}, nil
}

func (s *Seeder) dataset() []collection {
	now := s.now().UTC()

	genres := []model.Genre{
		{GenreID: 1, Name: "Drama"},
		{GenreID: 2, Name: "Romance"},
		{GenreID: 3, Name: "Thriller"},
		{GenreID: 4, Name: "Comedy"},
		{GenreID: 5, Name: "Fantasy"},
		{GenreID: 6, Name: "Mystery"},
	}

	legacy := func(n int64) *model.NumericID {
		id := model.NumericID(n)
		return &id
	}

	series := []model.Series{
		{
			ID:          bson.NewObjectID(),
			LegacyID:    legacy(1),
			Name:        "Harbor Lights",
			Description: "A lighthouse keeper's daughter returns home to settle her father's debts.",
			Genre:       []model.GenreRef{genres[0].Ref(), genres[1].Ref()},
			Tags:        []string{"family", "coastal"},
			Languages:   []string{"en"},
			Featured:    true,
		},
		{
			ID:          bson.NewObjectID(),
			LegacyID:    legacy(2),
			Name:        "Night Shift",
			Description: "Three nurses, one hospital, and a patient nobody admitted.",
			Genre:       []model.GenreRef{genres[2].Ref(), genres[5].Ref()},
			Tags:        []string{"hospital"},
			Languages:   []string{"en", "es"},
			Featured:    true,
		},
		{
			ID:          bson.NewObjectID(),
			Name:        "Second Breakfast",
			Description: "A failing cafe gets one last chance from a food critic.",
			Genre:       []model.GenreRef{genres[3].Ref()},
			Languages:   []string{"en"},
		},
		{
			ID:          bson.NewObjectID(),
			Name:        "The Ninth Gate of Aster",
			Description: "An apprentice mapmaker charts a kingdom that rearranges itself every night.",
			Genre:       []model.GenreRef{genres[4].Ref(), genres[0].Ref()},
			Languages:   []string{"en"},
		},
	}

	var episodes []any
	for _, sr := range series {
		for n := 1; n <= 3; n++ {
			episodes = append(episodes, &model.Episode{
				SeriesID:      sr.ID.Hex(),
				EpisodeNumber: n,
				Title:         fmt.Sprintf("Episode %d", n),
				Duration:      90 + n*15,
				CreatedAt:     now,
			})
		}
	}

	categories := []model.Category{
		{ID: bson.NewObjectID(), Name: "Merchandise", Icon: "shirt", Order: 1},
		{ID: bson.NewObjectID(), Name: "Subscriptions", Icon: "star", Order: 2},
	}

	products := []any{
		&model.Product{Name: "Harbor Lights Mug", Price: 12.5, Discount: 10, CategoryID: categories[0].ID.Hex(), Stock: 40, CreatedAt: now},
		&model.Product{Name: "Night Shift Hoodie", Price: 39.99, Discount: 25, CategoryID: categories[0].ID.Hex(), Stock: 15, CreatedAt: now},
		&model.Product{Name: "Monthly Pass", Price: 4.99, CategoryID: categories[1].ID.Hex(), Stock: 9999, CreatedAt: now},
		&model.Product{Name: "Yearly Pass", Price: 49.99, Discount: 20, CategoryID: categories[1].ID.Hex(), Stock: 9999, CreatedAt: now},
	}

	todos := []any{
		&model.Todo{Text: "Finish Harbor Lights", CreatedAt: now},
		&model.Todo{Text: "Try the yearly pass", Completed: true, CreatedAt: now},
	}

	genreDocs := make([]any, 0, len(genres))
	for i := range genres {
		genreDocs = append(genreDocs, &genres[i])
	}

	seriesDocs := make([]any, 0, len(series))
	for i := range series {
		series[i].CreatedAt = now
		seriesDocs = append(seriesDocs, &series[i])
	}

	categoryDocs := make([]any, 0, len(categories))
	for i := range categories {
		categoryDocs = append(categoryDocs, &categories[i])
	}

	return []collection{
		{name: repository.GenreCollection, docs: genreDocs},
		{name: repository.SeriesCollection, docs: seriesDocs},
		{name: repository.EpisodeCollection, docs: episodes},
		{name: repository.CategoryCollection, docs: categoryDocs},
		{name: repository.ProductCollection, docs: products},
		{name: repository.TodoCollection, docs: todos},
	}
}
