// Package domain contains the core business entities and rules.
package domain

import (
	"encoding/json"
	"fmt"
)

// Payload is the top-level document returned by the status API.
type Payload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Tweet   *Tweet `json:"tweet"`
}

// ParsePayload decodes raw API JSON into a Payload.
func ParsePayload(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &p, nil
}

// Tweet represents a single Twitter/X post. When Article is set the post
// is a long-form article and the flat text fields are ignored.
type Tweet struct {
	ID        ID       `json:"id"`
	URL       string   `json:"url"`
	Text      string   `json:"text"`
	RawText   *RawText `json:"raw_text"`
	CreatedAt string   `json:"created_at"`
	Author    Author   `json:"author"`
	Likes     int64    `json:"likes"`
	Retweets  int64    `json:"retweets"`
	Views     int64    `json:"views"`
	Media     *Media   `json:"media"`
	Article   *Article `json:"article"`
}

// IsArticle reports whether the post carries a rich-text article.
func (t *Tweet) IsArticle() bool {
	return t != nil && t.Article != nil
}

// Body returns the post text, falling back to the raw text.
func (t *Tweet) Body() string {
	if t.Text != "" {
		return t.Text
	}
	if t.RawText != nil {
		return t.RawText.Text
	}
	return ""
}

// RawText is the unexpanded text of a post.
type RawText struct {
	Text string `json:"text"`
}

// Author represents the post author's information.
// ScreenName is the handle without the leading @.
type Author struct {
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
}

// Media groups the media attached to a flat post.
type Media struct {
	All []MediaItem `json:"all"`
}

// MediaKind is the type tag of a MediaItem.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
)

// MediaItem is a single photo or video attached to a post.
type MediaItem struct {
	Type         MediaKind `json:"type"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
}

// Article is the long-form variant of a post.
type Article struct {
	Title         string          `json:"title"`
	CreatedAt     string          `json:"created_at"`
	Content       *ArticleContent `json:"content"`
	MediaEntities []MediaEntity   `json:"media_entities"`
}

// ArticleContent holds the ordered blocks and the entity map of an article.
type ArticleContent struct {
	Blocks    []Block          `json:"blocks"`
	EntityMap []EntityMapEntry `json:"entityMap"`
}

// BlockType is the type tag of a content block.
type BlockType string

const (
	BlockHeaderOne         BlockType = "header-one"
	BlockHeaderTwo         BlockType = "header-two"
	BlockHeaderThree       BlockType = "header-three"
	BlockUnorderedListItem BlockType = "unordered-list-item"
	BlockOrderedListItem   BlockType = "ordered-list-item"
	BlockAtomic            BlockType = "atomic"
	BlockUnstyled          BlockType = "unstyled"
)

// Block is one paragraph-like unit of an article.
type Block struct {
	Key               string             `json:"key"`
	Type              BlockType          `json:"type"`
	Text              string             `json:"text"`
	InlineStyleRanges []InlineStyleRange `json:"inlineStyleRanges"`
	EntityRanges      []EntityRange      `json:"entityRanges"`
}

// InlineStyle is the style tag of an InlineStyleRange.
type InlineStyle string

const (
	StyleBold   InlineStyle = "Bold"
	StyleItalic InlineStyle = "Italic"
)

// InlineStyleRange marks a span of block text. Offset and Length count
// UTF-16 code units.
type InlineStyleRange struct {
	Offset int         `json:"offset"`
	Length int         `json:"length"`
	Style  InlineStyle `json:"style"`
}

// EntityRange references an entity from the article's entity map.
type EntityRange struct {
	Key    ID  `json:"key"`
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// EntityMapEntry is one element of the article's entity map array.
type EntityMapEntry struct {
	Key   ID     `json:"key"`
	Value Entity `json:"value"`
}

// EntityType is the type tag of an Entity.
type EntityType string

const (
	EntityMarkdown EntityType = "MARKDOWN"
	EntityMedia    EntityType = "MEDIA"
	EntityTweet    EntityType = "TWEET"
)

// Entity is an embedded object attached to an atomic block.
type Entity struct {
	Type       EntityType `json:"type"`
	Mutability string     `json:"mutability"`
	Data       EntityData `json:"data"`
}

// EntityData carries the type-specific payload of an Entity.
type EntityData struct {
	Markdown   string     `json:"markdown"`
	MediaItems []MediaRef `json:"mediaItems"`
	TweetID    ID         `json:"tweetId"`
}

// MediaRef points at an article media entity by id.
type MediaRef struct {
	MediaID ID `json:"mediaId"`
}

// MediaEntity resolves an article media id to an image URL.
type MediaEntity struct {
	MediaID   ID        `json:"media_id"`
	MediaInfo MediaInfo `json:"media_info"`
}

// MediaInfo holds the resolved media URLs.
type MediaInfo struct {
	OriginalImgURL string `json:"original_img_url"`
}
