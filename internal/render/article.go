package render

import (
	"fmt"
	"strings"

	"x-to-markdown/internal/domain"
)

// Article renders a long-form article payload.
func Article(p *domain.Payload) (string, error) {
	if p == nil || p.Tweet == nil {
		return "", domain.ErrNoTweetData
	}
	tw := p.Tweet
	a := tw.Article
	if a == nil || a.Content == nil || a.Content.Blocks == nil {
		return "", domain.ErrMalformedArticle
	}

	entities := BuildEntityMap(a.Content.EntityMap)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	writeMeta(&b, tw, a.CreatedAt)

	for _, block := range a.Content.Blocks {
		b.WriteString(renderBlock(block, entities, a.MediaEntities))
	}

	return b.String(), nil
}

// BuildEntityMap indexes entity map entries by their normalized key.
// Later entries win on duplicate keys.
func BuildEntityMap(entries []domain.EntityMapEntry) map[domain.ID]domain.Entity {
	m := make(map[domain.ID]domain.Entity, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}

// renderBlock returns the markdown for one block, including its trailing
// newlines. List items end with a single newline so consecutive items stay
// adjacent.
func renderBlock(block domain.Block, entities map[domain.ID]domain.Entity, media []domain.MediaEntity) string {
	if block.Type == domain.BlockAtomic {
		return renderAtomic(block, entities, media)
	}

	text := strings.TrimSpace(block.Text)
	if text == "" {
		return ""
	}
	styled := ApplyStyles(text, block.InlineStyleRanges)

	switch block.Type {
	case domain.BlockHeaderOne:
		return "# " + styled + "\n\n"
	case domain.BlockHeaderTwo:
		return "## " + styled + "\n\n"
	case domain.BlockHeaderThree:
		return "### " + styled + "\n\n"
	case domain.BlockUnorderedListItem:
		return "- " + styled + "\n"
	case domain.BlockOrderedListItem:
		// Markdown renderers renumber ordered lists.
		return "1. " + styled + "\n"
	default:
		return styled + "\n\n"
	}
}

// renderAtomic renders the entity behind an atomic block. Only the first
// entity range is consulted; unresolvable entities render nothing.
func renderAtomic(block domain.Block, entities map[domain.ID]domain.Entity, media []domain.MediaEntity) string {
	if len(block.EntityRanges) == 0 {
		return ""
	}
	entity, ok := entities[block.EntityRanges[0].Key]
	if !ok {
		return ""
	}

	switch entity.Type {
	case domain.EntityMarkdown:
		return entity.Data.Markdown + "\n\n"
	case domain.EntityMedia:
		img, ok := ResolveMedia(entity, media)
		if !ok {
			return ""
		}
		return img + "\n\n"
	case domain.EntityTweet:
		return "> [Embedded Tweet](https://x.com/i/status/" + entity.Data.TweetID.String() + ")\n\n"
	default:
		return ""
	}
}

// ResolveMedia renders the first media item referenced by a MEDIA entity.
// It returns an image tag when the id resolves to an original image URL and
// a placeholder naming the id otherwise. ok is false when the entity
// references no media at all.
func ResolveMedia(entity domain.Entity, media []domain.MediaEntity) (md string, ok bool) {
	if len(entity.Data.MediaItems) == 0 {
		return "", false
	}
	id := entity.Data.MediaItems[0].MediaID

	for _, m := range media {
		if m.MediaID != id {
			continue
		}
		if m.MediaInfo.OriginalImgURL != "" {
			return "![image](" + m.MediaInfo.OriginalImgURL + ")", true
		}
		break
	}

	return "[Image: media_id " + id.String() + "]", true
}
