package domain

import "errors"

var (
	// ErrTweetNotFound is returned when the post does not exist or was deleted.
	ErrTweetNotFound = errors.New("tweet not found or deleted")

	// ErrTweetPrivate is returned when the post is from a private account.
	ErrTweetPrivate = errors.New("tweet is from a private account")

	// ErrInvalidURL is returned when the URL format is invalid.
	ErrInvalidURL = errors.New("invalid tweet URL format")

	// ErrFetchFailed is returned when the source API cannot be reached
	// or answers with an unexpected status.
	ErrFetchFailed = errors.New("failed to fetch tweet")

	// ErrRateLimited is returned when rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNoTweetData is returned when a payload carries no tweet object.
	ErrNoTweetData = errors.New("no tweet data found")

	// ErrMalformedPayload is returned when the payload is not valid JSON
	// of the expected shape.
	ErrMalformedPayload = errors.New("malformed tweet payload")

	// ErrMalformedArticle is returned when an article has no content blocks.
	ErrMalformedArticle = errors.New("malformed article: missing content blocks")
)
