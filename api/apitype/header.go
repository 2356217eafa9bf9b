package apitype

import "fmt"

const (
	ShowcaseTitle     = "Showcase"
	DeleteFilesLabel  = "Delete Files"
	filesSelectedText = "%d Files Selected"
)

// Header describes the bar above the gallery grid. With no selection it
// only shows the showcase title, otherwise the selection count and the
// delete action.
type Header struct {
	selectedCount int
}

func NewHeader(selectedCount int) *Header {
	return &Header{selectedCount: selectedCount}
}

func HeaderForItems(items []GalleryItem) *Header {
	count := 0
	for _, item := range items {
		if item.IsSelected() {
			count++
		}
	}
	return NewHeader(count)
}

func (s *Header) SelectedCount() int {
	return s.selectedCount
}

func (s *Header) HasSelection() bool {
	return s.selectedCount > 0
}

func (s *Header) Title() string {
	if !s.HasSelection() {
		return ShowcaseTitle
	}
	// One file and many files share the same label
	return fmt.Sprintf(filesSelectedText, s.selectedCount)
}

// DeleteLabel is empty when there is nothing to delete.
func (s *Header) DeleteLabel() string {
	if !s.HasSelection() {
		return ""
	}
	return DeleteFilesLabel
}

func (s *Header) String() string {
	return fmt.Sprintf("Header{%s}", s.Title())
}
