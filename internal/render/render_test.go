package render_test

import (
	"errors"
	"strings"
	"testing"

	"x-to-markdown/internal/domain"
	"x-to-markdown/internal/render"
	"x-to-markdown/test/fixtures"
)

func mustParse(t *testing.T, raw string) *domain.Payload {
	t.Helper()
	p, err := domain.ParsePayload([]byte(raw))
	if err != nil {
		t.Fatalf("ParsePayload() error = %v", err)
	}
	return p
}

func articlePayload(blocks []domain.Block, entities []domain.EntityMapEntry, media []domain.MediaEntity) *domain.Payload {
	return &domain.Payload{Tweet: &domain.Tweet{
		URL:    "https://x.com/jane/status/1",
		Author: domain.Author{Name: "Jane", ScreenName: "jane"},
		Article: &domain.Article{
			Title:         "Title",
			CreatedAt:     "2026-01-01",
			Content:       &domain.ArticleContent{Blocks: blocks, EntityMap: entities},
			MediaEntities: media,
		},
	}}
}

// body strips the heading and metadata, returning what follows the separator.
func body(t *testing.T, md string) string {
	t.Helper()
	_, after, ok := strings.Cut(md, "\n---\n\n")
	if !ok {
		t.Fatalf("separator not found in %q", md)
	}
	return after
}

func TestMarkdown_Article_MatchesExpectedDocument(t *testing.T) {
	// Arrange
	p := mustParse(t, fixtures.Article())

	// Act
	md, err := render.Markdown(p)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md != fixtures.ArticleMarkdown() {
		t.Errorf("article markdown mismatch\ngot:\n%s\nwant:\n%s", md, fixtures.ArticleMarkdown())
	}
}

func TestMarkdown_NoTweet_ReturnsErrNoTweetData(t *testing.T) {
	testCases := []struct {
		name    string
		payload *domain.Payload
	}{
		{name: "nil payload", payload: nil},
		{name: "missing tweet", payload: &domain.Payload{Code: 404}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := render.Markdown(tc.payload)
			if !errors.Is(err, domain.ErrNoTweetData) {
				t.Errorf("expected ErrNoTweetData, got %v", err)
			}
		})
	}
}

func TestArticle_MissingContent_ReturnsErrMalformedArticle(t *testing.T) {
	testCases := []struct {
		name    string
		article *domain.Article
	}{
		{name: "no content", article: &domain.Article{Title: "x"}},
		{name: "no blocks", article: &domain.Article{Title: "x", Content: &domain.ArticleContent{}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &domain.Payload{Tweet: &domain.Tweet{Article: tc.article}}

			_, err := render.Markdown(p)

			if !errors.Is(err, domain.ErrMalformedArticle) {
				t.Errorf("expected ErrMalformedArticle, got %v", err)
			}
		})
	}
}

func TestArticle_EmptyBlockList_RendersHeaderOnly(t *testing.T) {
	p := articlePayload([]domain.Block{}, nil, nil)

	md, err := render.Article(p)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body(t, md) != "" {
		t.Errorf("expected empty body, got %q", body(t, md))
	}
}

func TestArticle_ListItems_AreAdjacent(t *testing.T) {
	// Arrange
	p := articlePayload([]domain.Block{
		{Type: domain.BlockUnorderedListItem, Text: "a"},
		{Type: domain.BlockUnorderedListItem, Text: "b"},
		{Type: domain.BlockUnorderedListItem, Text: "c"},
		{Type: domain.BlockUnstyled, Text: "after"},
	}, nil, nil)

	// Act
	md, err := render.Article(p)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "- a\n- b\n- c\nafter\n\n"
	if got := body(t, md); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestArticle_BlockTypes_RenderPerType(t *testing.T) {
	testCases := []struct {
		name     string
		block    domain.Block
		expected string
	}{
		{name: "header one", block: domain.Block{Type: domain.BlockHeaderOne, Text: "H"}, expected: "# H\n\n"},
		{name: "header two", block: domain.Block{Type: domain.BlockHeaderTwo, Text: "H"}, expected: "## H\n\n"},
		{name: "header three", block: domain.Block{Type: domain.BlockHeaderThree, Text: "H"}, expected: "### H\n\n"},
		{name: "ordered item", block: domain.Block{Type: domain.BlockOrderedListItem, Text: "x"}, expected: "1. x\n"},
		{name: "unknown type", block: domain.Block{Type: "blockquote", Text: "q"}, expected: "q\n\n"},
		{name: "trimmed text", block: domain.Block{Type: domain.BlockUnstyled, Text: "  padded \n"}, expected: "padded\n\n"},
		{name: "blank text skipped", block: domain.Block{Type: domain.BlockHeaderOne, Text: " \t"}, expected: ""},
		{name: "atomic without entity", block: domain.Block{Type: domain.BlockAtomic, Text: "visible"}, expected: ""},
		{
			name:     "atomic with unknown key",
			block:    domain.Block{Type: domain.BlockAtomic, EntityRanges: []domain.EntityRange{{Key: "404"}}},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			p := articlePayload([]domain.Block{tc.block}, nil, nil)

			// Act
			md, err := render.Article(p)

			// Assert
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := body(t, md); got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestArticle_AtomicEntities_RenderPerEntityType(t *testing.T) {
	media := []domain.MediaEntity{
		{MediaID: "10", MediaInfo: domain.MediaInfo{OriginalImgURL: "https://img/10.jpg"}},
		{MediaID: "11"},
	}
	testCases := []struct {
		name     string
		entity   domain.Entity
		expected string
	}{
		{
			name:     "markdown",
			entity:   domain.Entity{Type: domain.EntityMarkdown, Data: domain.EntityData{Markdown: "| a |\n|---|"}},
			expected: "| a |\n|---|\n\n",
		},
		{
			name:     "tweet",
			entity:   domain.Entity{Type: domain.EntityTweet, Data: domain.EntityData{TweetID: "1876543210987654321"}},
			expected: "> [Embedded Tweet](https://x.com/i/status/1876543210987654321)\n\n",
		},
		{
			name:     "media resolved",
			entity:   domain.Entity{Type: domain.EntityMedia, Data: domain.EntityData{MediaItems: []domain.MediaRef{{MediaID: "10"}}}},
			expected: "![image](https://img/10.jpg)\n\n",
		},
		{
			name:     "media without url",
			entity:   domain.Entity{Type: domain.EntityMedia, Data: domain.EntityData{MediaItems: []domain.MediaRef{{MediaID: "11"}}}},
			expected: "[Image: media_id 11]\n\n",
		},
		{
			name:     "media missing",
			entity:   domain.Entity{Type: domain.EntityMedia, Data: domain.EntityData{MediaItems: []domain.MediaRef{{MediaID: "12"}}}},
			expected: "[Image: media_id 12]\n\n",
		},
		{
			name:     "media with no items",
			entity:   domain.Entity{Type: domain.EntityMedia},
			expected: "",
		},
		{
			name:     "unknown entity type",
			entity:   domain.Entity{Type: "LINK"},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			p := articlePayload(
				[]domain.Block{{Type: domain.BlockAtomic, Text: " ", EntityRanges: []domain.EntityRange{{Key: "7"}}}},
				[]domain.EntityMapEntry{{Key: "7", Value: tc.entity}},
				media,
			)

			// Act
			md, err := render.Article(p)

			// Assert
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := body(t, md); got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestArticle_AtomicBlock_UsesFirstEntityRangeOnly(t *testing.T) {
	p := articlePayload(
		[]domain.Block{{Type: domain.BlockAtomic, EntityRanges: []domain.EntityRange{{Key: "1"}, {Key: "2"}}}},
		[]domain.EntityMapEntry{
			{Key: "1", Value: domain.Entity{Type: domain.EntityTweet, Data: domain.EntityData{TweetID: "100"}}},
			{Key: "2", Value: domain.Entity{Type: domain.EntityTweet, Data: domain.EntityData{TweetID: "200"}}},
		},
		nil,
	)

	md, err := render.Article(p)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := body(t, md); got != "> [Embedded Tweet](https://x.com/i/status/100)\n\n" {
		t.Errorf("got %q", got)
	}
}

func TestBuildEntityMap_LaterEntriesWin(t *testing.T) {
	m := render.BuildEntityMap([]domain.EntityMapEntry{
		{Key: "1", Value: domain.Entity{Type: domain.EntityMarkdown}},
		{Key: "1", Value: domain.Entity{Type: domain.EntityTweet}},
	})

	if len(m) != 1 {
		t.Fatalf("len = %d, want 1", len(m))
	}
	if m["1"].Type != domain.EntityTweet {
		t.Errorf("type = %v, want %v", m["1"].Type, domain.EntityTweet)
	}
}

func TestResolveMedia_MatchesIDsAsStrings(t *testing.T) {
	// Arrange
	entity := domain.Entity{Type: domain.EntityMedia, Data: domain.EntityData{
		MediaItems: []domain.MediaRef{{MediaID: "9007199254740993"}},
	}}
	media := []domain.MediaEntity{
		{MediaID: "9007199254740992", MediaInfo: domain.MediaInfo{OriginalImgURL: "https://img/wrong.jpg"}},
		{MediaID: "9007199254740993", MediaInfo: domain.MediaInfo{OriginalImgURL: "https://img/right.jpg"}},
	}

	// Act
	md, ok := render.ResolveMedia(entity, media)

	// Assert
	if !ok {
		t.Fatal("expected media to resolve")
	}
	if md != "![image](https://img/right.jpg)" {
		t.Errorf("got %q", md)
	}
}

func TestMarkdown_Stats_OmitsZeroCounters(t *testing.T) {
	testCases := []struct {
		name     string
		tweet    domain.Tweet
		expected string
	}{
		{name: "none", tweet: domain.Tweet{}, expected: ""},
		{name: "zero likes", tweet: domain.Tweet{Likes: 0}, expected: ""},
		{name: "likes only", tweet: domain.Tweet{Likes: 1500}, expected: "**Stats:** 1,500 likes\n"},
		{
			name:     "all counters",
			tweet:    domain.Tweet{Likes: 1, Retweets: 2000, Views: 3456789},
			expected: "**Stats:** 1 likes · 2,000 retweets · 3,456,789 views\n",
		},
		{
			name:     "views and retweets",
			tweet:    domain.Tweet{Retweets: 5, Views: 10},
			expected: "**Stats:** 5 retweets · 10 views\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			tw := tc.tweet
			tw.URL = "u"
			p := &domain.Payload{Tweet: &tw}

			// Act
			md, err := render.Markdown(p)

			// Assert
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			head, _, _ := strings.Cut(md, "\n---\n\n")
			_, stats, _ := strings.Cut(head, "**Source:** u\n")
			if stats != tc.expected {
				t.Errorf("stats = %q, want %q", stats, tc.expected)
			}
		})
	}
}

func TestTitle_ReturnsHeadingText(t *testing.T) {
	if got := render.Title(mustParse(t, fixtures.Article())); got != "On Writing" {
		t.Errorf("article title = %q", got)
	}
	if got := render.Title(mustParse(t, fixtures.BasicTweet())); got != "Tweet by John Doe" {
		t.Errorf("tweet title = %q", got)
	}
	if got := render.Title(nil); got != "" {
		t.Errorf("nil title = %q", got)
	}
}
