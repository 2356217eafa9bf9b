package apitype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	t.Run("Nothing selected", func(t *testing.T) {
		a := assert.New(t)
		header := NewHeader(0)

		a.False(header.HasSelection())
		a.Equal("Showcase", header.Title())
		a.Equal("", header.DeleteLabel())
	})
	t.Run("One selected", func(t *testing.T) {
		a := assert.New(t)
		header := NewHeader(1)

		a.True(header.HasSelection())
		a.Equal("1 Files Selected", header.Title())
		a.Equal("Delete Files", header.DeleteLabel())
	})
	t.Run("Many selected", func(t *testing.T) {
		a := assert.New(t)
		header := NewHeader(3)

		a.Equal("3 Files Selected", header.Title())
		a.Equal("Delete Files", header.DeleteLabel())
	})
}

func TestHeaderForItems(t *testing.T) {
	a := assert.New(t)

	items := []GalleryItem{
		NewGalleryItemWithId("1", "a").WithSelected(true),
		NewGalleryItemWithId("2", "b"),
		NewGalleryItemWithId("3", "c").WithSelected(true),
	}

	header := HeaderForItems(items)
	a.Equal(2, header.SelectedCount())
	a.Equal("2 Files Selected", header.Title())
	a.Equal(0, HeaderForItems(nil).SelectedCount())
}
