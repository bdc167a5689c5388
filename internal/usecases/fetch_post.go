package usecases

import (
	"context"

	"x-to-markdown/internal/domain"
	"x-to-markdown/pkg/log"
)

// PostFetcher defines the interface for retrieving post payloads.
type PostFetcher interface {
	Fetch(ctx context.Context, username, tweetID string) (*domain.Payload, error)
}

// FetchPostUseCase handles fetching a single post from the source API.
type FetchPostUseCase struct {
	fetcher PostFetcher
}

// NewFetchPostUseCase creates a new FetchPostUseCase.
func NewFetchPostUseCase(fetcher PostFetcher) *FetchPostUseCase {
	return &FetchPostUseCase{fetcher: fetcher}
}

// Execute fetches a post and makes sure the payload carries a tweet with
// a source URL.
func (uc *FetchPostUseCase) Execute(ctx context.Context, tweetID, username string) (*domain.Payload, error) {
	payload, err := uc.fetcher.Fetch(ctx, username, tweetID)
	if err != nil {
		return nil, err
	}
	if payload == nil || payload.Tweet == nil {
		return nil, domain.ErrNoTweetData
	}

	if payload.Tweet.URL == "" {
		payload.Tweet.URL = domain.StatusURL(username, tweetID)
	}
	if payload.Tweet.IsArticle() {
		log.GlobalDebugCtx(ctx, "fetched article", "title", payload.Tweet.Article.Title)
	}

	return payload, nil
}
