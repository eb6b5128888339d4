// Package resolve maps (title, year) key pairs to reference page IDs.
package resolve

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/harrisonrobin/linka/pkg/notion"
)

// ErrNotFound indicates no reference page matched the key pair. Query
// failures surface as ErrNotFound too: a resolution failure leaves the
// relation unset for that task, it never aborts the run.
var ErrNotFound = errors.New("no matching reference page")

// Querier is the database query operation the resolver needs.
type Querier interface {
	QueryDatabase(ctx context.Context, databaseID string, filter notion.Filter) ([]notion.Page, error)
}

// Resolver looks up reference pages by exact (title, year) match. Hits
// are cached for the lifetime of the resolver, so a batch whose tasks
// share a week or month queries each key once.
type Resolver struct {
	client Querier
	log    *zap.SugaredLogger
	cache  map[cacheKey]string
}

type cacheKey struct {
	db    string
	title string
	year  int
}

func New(client Querier, log *zap.SugaredLogger) *Resolver {
	return &Resolver{
		client: client,
		log:    log,
		cache:  make(map[cacheKey]string),
	}
}

// Find returns the ID of the first page in the database whose title
// property equals title and whose year property equals year. Exact
// equality on both keys; no case folding. With multiple matches the
// store's default ordering decides, which well-formed data never hits.
func (r *Resolver) Find(ctx context.Context, databaseID, titleProp, yearProp, title string, year int) (string, error) {
	key := cacheKey{db: databaseID, title: title, year: year}
	if id, ok := r.cache[key]; ok {
		return id, nil
	}

	filter := notion.And(
		notion.TitleEquals(titleProp, title),
		notion.NumberEquals(yearProp, year),
	)

	pages, err := r.client.QueryDatabase(ctx, databaseID, filter)
	if err != nil {
		r.log.Warnw("reference query failed",
			"database", databaseID, "title", title, "year", year, "error", err)
		return "", ErrNotFound
	}
	if len(pages) == 0 {
		return "", ErrNotFound
	}

	id := pages[0].ID
	r.cache[key] = id
	return id, nil
}
