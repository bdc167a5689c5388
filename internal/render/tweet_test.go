package render_test

import (
	"testing"

	"x-to-markdown/internal/domain"
	"x-to-markdown/internal/render"
	"x-to-markdown/test/fixtures"
)

func TestTweet_PlainText_RendersExactDocument(t *testing.T) {
	// Arrange
	p := &domain.Payload{Tweet: &domain.Tweet{
		URL:       "https://x.com/jane/status/1",
		Text:      "Hello",
		CreatedAt: "Mon Jan 05 09:00:00 +0000 2026",
		Author:    domain.Author{Name: "Jane", ScreenName: "jane"},
	}}
	expected := "# Tweet by Jane\n\n" +
		"**Author:** Jane (@jane)\n" +
		"**Published:** Mon Jan 05 09:00:00 +0000 2026\n" +
		"**Source:** https://x.com/jane/status/1\n" +
		"\n---\n\n" +
		"Hello\n"

	// Act
	md, err := render.Markdown(p)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md != expected {
		t.Errorf("got %q, want %q", md, expected)
	}
}

func TestTweet_WithStats_RendersGroupedNumbers(t *testing.T) {
	p := mustParse(t, fixtures.BasicTweet())

	md, err := render.Tweet(p)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "# Tweet by John Doe\n\n" +
		"**Author:** John Doe (@johndoe)\n" +
		"**Published:** Wed Jan 01 12:00:00 +0000 2026\n" +
		"**Source:** https://x.com/johndoe/status/123\n" +
		"**Stats:** 1,500 likes · 20 retweets · 1,234,567 views\n" +
		"\n---\n\n" +
		"This is a test tweet content.\n"
	if md != expected {
		t.Errorf("got %q, want %q", md, expected)
	}
}

func TestTweet_Media_RendersPhotosAndVideoThumbnails(t *testing.T) {
	// Arrange
	p := mustParse(t, fixtures.MediaTweet())

	// Act
	md, err := render.Tweet(p)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "Look at these\n" +
		"\n" +
		"![image](https://pbs.twimg.com/media/a.jpg)\n\n" +
		"[Video thumbnail](https://pbs.twimg.com/thumb.jpg)\n\n"
	if got := body(t, md); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestTweet_EmptyMediaList_NoTrailingSection(t *testing.T) {
	p := &domain.Payload{Tweet: &domain.Tweet{Text: "x", Media: &domain.Media{}}}

	md, err := render.Tweet(p)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := body(t, md); got != "x\n" {
		t.Errorf("got %q, want %q", got, "x\n")
	}
}

func TestTweet_NoText_RendersEmptyBody(t *testing.T) {
	p := &domain.Payload{Tweet: &domain.Tweet{}}

	md, err := render.Tweet(p)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := body(t, md); got != "\n" {
		t.Errorf("got %q, want %q", got, "\n")
	}
}
