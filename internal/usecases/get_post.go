package usecases

import (
	"context"

	"x-to-markdown/internal/domain"
	"x-to-markdown/pkg/log"
)

// PostCache defines the interface for caching post payloads.
type PostCache interface {
	Get(username, tweetID string) (*domain.Payload, bool)
	Set(username, tweetID string, payload *domain.Payload)
}

// GetPostUseCase handles retrieving posts with cache-first strategy.
type GetPostUseCase struct {
	cache   PostCache
	fetcher *FetchPostUseCase
}

// NewGetPostUseCase creates a new GetPostUseCase.
func NewGetPostUseCase(cache PostCache, fetcher *FetchPostUseCase) *GetPostUseCase {
	return &GetPostUseCase{
		cache:   cache,
		fetcher: fetcher,
	}
}

// Execute retrieves a post, checking cache first before fetching.
func (uc *GetPostUseCase) Execute(ctx context.Context, tweetID, username string) (*domain.Payload, error) {
	if payload, found := uc.cache.Get(username, tweetID); found {
		log.GlobalDebugCtx(ctx, "cache hit")
		return payload, nil
	}

	log.GlobalDebugCtx(ctx, "cache miss, fetching")

	payload, err := uc.fetcher.Execute(ctx, tweetID, username)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(username, tweetID, payload)

	return payload, nil
}
