// Package fixtures provides status API JSON fixtures for tests.
package fixtures

// BasicTweet returns a flat post with text, stats and no media.
func BasicTweet() string {
	return `{
  "code": 200,
  "message": "OK",
  "tweet": {
    "id": "123",
    "url": "https://x.com/johndoe/status/123",
    "text": "This is a test tweet content.",
    "created_at": "Wed Jan 01 12:00:00 +0000 2026",
    "author": {"name": "John Doe", "screen_name": "johndoe"},
    "likes": 1500,
    "retweets": 20,
    "views": 1234567
  }
}`
}

// MediaTweet returns a flat post with a photo, a video and an animated gif.
func MediaTweet() string {
	return `{
  "code": 200,
  "message": "OK",
  "tweet": {
    "id": 456,
    "url": "https://x.com/jane/status/456",
    "raw_text": {"text": "Look at these"},
    "created_at": "Thu Jan 02 08:30:00 +0000 2026",
    "author": {"name": "Jane", "screen_name": "jane"},
    "media": {
      "all": [
        {"type": "photo", "url": "https://pbs.twimg.com/media/a.jpg"},
        {"type": "video", "url": "https://video.twimg.com/v.mp4", "thumbnail_url": "https://pbs.twimg.com/thumb.jpg"},
        {"type": "gif", "url": "https://video.twimg.com/g.mp4"},
        {"type": "photo"}
      ]
    }
  }
}`
}

// Article returns a long-form article exercising every block and entity type.
func Article() string {
	return `{
  "code": 200,
  "message": "OK",
  "tweet": {
    "id": "789",
    "url": "https://x.com/writer/status/789",
    "created_at": "Fri Jan 03 10:00:00 +0000 2026",
    "author": {"name": "Writer", "screen_name": "writer"},
    "likes": 42,
    "article": {
      "title": "On Writing",
      "created_at": "2026-01-03T10:00:00.000Z",
      "content": {
        "blocks": [
          {"type": "header-one", "text": "Intro", "inlineStyleRanges": [], "entityRanges": []},
          {"type": "unstyled", "text": "hello world", "inlineStyleRanges": [{"offset": 0, "length": 5, "style": "Bold"}], "entityRanges": []},
          {"type": "unordered-list-item", "text": "a", "inlineStyleRanges": [], "entityRanges": []},
          {"type": "unordered-list-item", "text": "b", "inlineStyleRanges": [], "entityRanges": []},
          {"type": "ordered-list-item", "text": "first", "inlineStyleRanges": [], "entityRanges": []},
          {"type": "atomic", "text": " ", "inlineStyleRanges": [], "entityRanges": [{"key": 0, "offset": 0, "length": 1}]},
          {"type": "atomic", "text": " ", "inlineStyleRanges": [], "entityRanges": [{"key": "1", "offset": 0, "length": 1}]},
          {"type": "atomic", "text": " ", "inlineStyleRanges": [], "entityRanges": [{"key": 2, "offset": 0, "length": 1}]},
          {"type": "atomic", "text": " ", "inlineStyleRanges": [], "entityRanges": [{"key": 3, "offset": 0, "length": 1}]},
          {"type": "unstyled", "text": "   ", "inlineStyleRanges": [], "entityRanges": []},
          {"type": "header-two", "text": "The end", "inlineStyleRanges": [{"offset": 4, "length": 3, "style": "Italic"}], "entityRanges": []}
        ],
        "entityMap": [
          {"key": "0", "value": {"type": "MEDIA", "mutability": "IMMUTABLE", "data": {"mediaItems": [{"mediaId": "1876543210987654321"}]}}},
          {"key": 1, "value": {"type": "MARKDOWN", "mutability": "IMMUTABLE", "data": {"markdown": "` + "```go\\nfmt.Println(1)\\n```" + `"}}},
          {"key": "2", "value": {"type": "TWEET", "mutability": "IMMUTABLE", "data": {"tweetId": "555"}}},
          {"key": "3", "value": {"type": "MEDIA", "mutability": "IMMUTABLE", "data": {"mediaItems": [{"mediaId": 999}]}}}
        ]
      },
      "media_entities": [
        {"media_id": "1876543210987654321", "media_info": {"original_img_url": "https://pbs.twimg.com/media/orig.jpg"}}
      ]
    }
  }
}`
}

// ArticleMarkdown is the expected rendering of Article.
func ArticleMarkdown() string {
	return "# On Writing\n\n" +
		"**Author:** Writer (@writer)\n" +
		"**Published:** 2026-01-03T10:00:00.000Z\n" +
		"**Source:** https://x.com/writer/status/789\n" +
		"**Stats:** 42 likes\n" +
		"\n---\n\n" +
		"# Intro\n\n" +
		"**hello** world\n\n" +
		"- a\n" +
		"- b\n" +
		"1. first\n" +
		"![image](https://pbs.twimg.com/media/orig.jpg)\n\n" +
		"```go\nfmt.Println(1)\n```\n\n" +
		"> [Embedded Tweet](https://x.com/i/status/555)\n\n" +
		"[Image: media_id 999]\n\n" +
		"## The *end*\n\n"
}

// NotFound returns the body the API sends for a missing post.
func NotFound() string {
	return `{"code": 404, "message": "NOT_FOUND"}`
}
