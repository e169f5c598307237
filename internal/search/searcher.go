package search

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	algolia "github.com/algolia/algoliasearch-client-go/v3/algolia/search"
)

// Query is one page of a browse search against a resolved index.
type Query struct {
	Index   string
	Text    string
	Filters string
	Page    int
}

// Result is the page of hits returned by the index.
type Result struct {
	Index   string           `json:"index"`
	Hits    []map[string]any `json:"hits"`
	NbHits  int              `json:"nb_hits"`
	Page    int              `json:"page"`
	NbPages int              `json:"nb_pages"`
	QueryID string           `json:"query_id,omitempty"`
}

type Searcher interface {
	Search(ctx context.Context, q Query) (Result, error)
}

// AlgoliaSearcher talks to the hosted index.
type AlgoliaSearcher struct {
	client *algolia.Client
}

func NewAlgoliaSearcher(appID, apiKey string) *AlgoliaSearcher {
	return &AlgoliaSearcher{client: algolia.NewClient(appID, apiKey)}
}

func (s *AlgoliaSearcher) Search(ctx context.Context, q Query) (Result, error) {
	res, err := s.client.InitIndex(q.Index).Search(q.Text,
		opt.Filters(q.Filters),
		opt.Page(q.Page),
		opt.HitsPerPage(HitsPerPage),
		opt.ClickAnalytics(true),
		opt.EnablePersonalization(true),
		ctx,
	)
	if err != nil {
		return Result{}, fmt.Errorf("search %s: %w", q.Index, err)
	}
	return Result{
		Index:   q.Index,
		Hits:    res.Hits,
		NbHits:  res.NbHits,
		Page:    res.Page,
		NbPages: res.NbPages,
		QueryID: res.QueryID,
	}, nil
}
