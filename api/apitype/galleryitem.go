package apitype

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

type ItemId string

const NoItemId = ItemId("")

// IsValid is false for NoItemId and for ids containing whitespace, which
// could not be typed as a single word.
func (s ItemId) IsValid() bool {
	return s != NoItemId && strings.IndexFunc(string(s), unicode.IsSpace) < 0
}

// GalleryItem is one image card in the gallery. Items are values: changing
// the selection returns a copy.
type GalleryItem struct {
	id         ItemId
	slug       string
	isSelected bool
}

func NewGalleryItemWithId(id ItemId, slug string) GalleryItem {
	return GalleryItem{
		id:   id,
		slug: slug,
	}
}

// NewGalleryItem creates an unselected item with a random id.
func NewGalleryItem(slug string) (GalleryItem, error) {
	if id, err := uuid.NewRandom(); err != nil {
		return GalleryItem{}, err
	} else {
		return NewGalleryItemWithId(ItemId(id.String()), slug), nil
	}
}

func (s GalleryItem) Id() ItemId {
	return s.id
}

func (s GalleryItem) Slug() string {
	return s.slug
}

func (s GalleryItem) IsSelected() bool {
	return s.isSelected
}

func (s GalleryItem) WithSelected(selected bool) GalleryItem {
	s.isSelected = selected
	return s
}

func (s GalleryItem) String() string {
	if s.isSelected {
		return fmt.Sprintf("GalleryItem{%s:%s:selected}", s.id, s.slug)
	}
	return fmt.Sprintf("GalleryItem{%s:%s}", s.id, s.slug)
}

func ItemIds(items []GalleryItem) []ItemId {
	ids := make([]ItemId, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.id)
	}
	return ids
}
