package render

import (
	"cmp"
	"slices"
	"unicode/utf16"

	"x-to-markdown/internal/domain"
)

// ApplyStyles wraps the spans named by ranges in markdown emphasis markers.
//
// Offsets count UTF-16 code units. Ranges are applied from the highest
// offset down so that inserting markers never shifts a range that is still
// pending. Overlapping ranges are not reconciled: their markers nest or
// interleave in application order.
//
// Bounds follow JavaScript slice rules: negative values count back from the
// end of the text and the text after the span starts at offset+length, even
// when that lies before offset.
func ApplyStyles(text string, ranges []domain.InlineStyleRange) string {
	if len(ranges) == 0 || text == "" {
		return text
	}

	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b domain.InlineStyleRange) int {
		return cmp.Compare(b.Offset, a.Offset)
	})

	units := utf16.Encode([]rune(text))
	for _, r := range sorted {
		marker := styleMarker(r.Style)
		if marker == nil {
			continue
		}

		end := r.Offset + r.Length

		out := make([]uint16, 0, len(units)+2*len(marker))
		out = append(out, jsSlice(units, 0, r.Offset)...)
		out = append(out, marker...)
		out = append(out, jsSlice(units, r.Offset, end)...)
		out = append(out, marker...)
		out = append(out, jsSlice(units, end, len(units))...)
		units = out
	}

	return string(utf16.Decode(units))
}

var (
	boldMarker   = utf16.Encode([]rune("**"))
	italicMarker = utf16.Encode([]rune("*"))
)

// styleMarker returns the emphasis marker for a style, or nil when the
// style has no markdown form.
func styleMarker(style domain.InlineStyle) []uint16 {
	switch style {
	case domain.StyleBold:
		return boldMarker
	case domain.StyleItalic:
		return italicMarker
	default:
		return nil
	}
}

// jsSlice returns s[from:to] with the bounds resolved like
// Array.prototype.slice.
func jsSlice(s []uint16, from, to int) []uint16 {
	from, to = sliceIndex(from, len(s)), sliceIndex(to, len(s))
	if to <= from {
		return nil
	}
	return s[from:to]
}

func sliceIndex(i, n int) int {
	if i < 0 {
		return max(n+i, 0)
	}
	return min(i, n)
}
