package usecases

import (
	"context"

	"x-to-markdown/internal/domain"
	"x-to-markdown/internal/render"
	"x-to-markdown/pkg/log"
)

// Document is a rendered post.
type Document struct {
	Title    string
	Slug     string
	Markdown string
	Article  bool
}

// PostSource yields the payload of a post by handle and id.
// Both FetchPostUseCase and GetPostUseCase satisfy it.
type PostSource interface {
	Execute(ctx context.Context, tweetID, username string) (*domain.Payload, error)
}

// ConvertPostUseCase retrieves a post and renders it as markdown.
type ConvertPostUseCase struct {
	source PostSource
}

// NewConvertPostUseCase creates a new ConvertPostUseCase.
func NewConvertPostUseCase(source PostSource) *ConvertPostUseCase {
	return &ConvertPostUseCase{source: source}
}

// Execute retrieves the post and renders it.
func (uc *ConvertPostUseCase) Execute(ctx context.Context, tweetID, username string) (*Document, error) {
	ctx = log.WithPost(ctx, username, tweetID)

	payload, err := uc.source.Execute(ctx, tweetID, username)
	if err != nil {
		return nil, err
	}

	doc, err := ConvertPayload(payload)
	if err != nil {
		log.GlobalErrorCtx(ctx, "render failed", "error", err)
		return nil, err
	}

	log.GlobalInfoCtx(ctx, "post converted", "article", doc.Article, "bytes", len(doc.Markdown))
	return doc, nil
}

// ConvertPayload renders an already decoded payload.
func ConvertPayload(payload *domain.Payload) (*Document, error) {
	md, err := render.Markdown(payload)
	if err != nil {
		return nil, err
	}
	return &Document{
		Title:    render.Title(payload),
		Slug:     render.Slug(payload),
		Markdown: md,
		Article:  payload.Tweet.IsArticle(),
	}, nil
}

// ConvertJSON decodes raw API JSON and renders it.
func ConvertJSON(data []byte) (*Document, error) {
	payload, err := domain.ParsePayload(data)
	if err != nil {
		return nil, err
	}
	return ConvertPayload(payload)
}
