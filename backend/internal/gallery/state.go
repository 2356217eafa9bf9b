package gallery

import (
	"errors"
	"fmt"

	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/util"
)

var (
	ErrIdCollision = errors.New("item id already exists")
	ErrInvalidId   = errors.New("item id is empty or contains whitespace")
)

// State is an ordered gallery. It is never modified after creation: every
// operation returns a new State, or the receiver itself when nothing changed.
type State struct {
	items []apitype.GalleryItem
}

func NewState() *State {
	return &State{}
}

// FromItems keeps the given order and selection flags.
func FromItems(items []apitype.GalleryItem) (*State, error) {
	ids := util.NewSet[apitype.ItemId]()
	for _, item := range items {
		if !item.Id().IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidId, item.Id())
		}
		if ids.Contains(item.Id()) {
			return nil, fmt.Errorf("%w: %s", ErrIdCollision, item.Id())
		}
		ids.Add(item.Id())
	}
	return &State{items: copyItems(items)}, nil
}

func (s *State) Items() []apitype.GalleryItem {
	return copyItems(s.items)
}

func (s *State) Len() int {
	return len(s.items)
}

func (s *State) Contains(id apitype.ItemId) bool {
	return s.indexOf(id) >= 0
}

func (s *State) Find(id apitype.ItemId) (apitype.GalleryItem, bool) {
	if index := s.indexOf(id); index >= 0 {
		return s.items[index], true
	}
	return apitype.GalleryItem{}, false
}

func (s *State) SelectedItems() []apitype.GalleryItem {
	var selected []apitype.GalleryItem
	for _, item := range s.items {
		if item.IsSelected() {
			selected = append(selected, item)
		}
	}
	return selected
}

func (s *State) ToggleSelect(id apitype.ItemId) *State {
	index := s.indexOf(id)
	if index < 0 {
		return s
	}
	items := copyItems(s.items)
	items[index] = items[index].WithSelected(!items[index].IsSelected())
	return &State{items: items}
}

// Reorder moves the source item to the position of the target item. Items
// in between shift by one slot.
func (s *State) Reorder(sourceId apitype.ItemId, targetId apitype.ItemId) *State {
	from := s.indexOf(sourceId)
	to := s.indexOf(targetId)
	if from < 0 || to < 0 || from == to {
		return s
	}

	items := copyItems(s.items)
	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]apitype.GalleryItem{moved}, items[to:]...)...)
	return &State{items: items}
}

// Append adds the item unselected at the end.
func (s *State) Append(item apitype.GalleryItem) (*State, error) {
	if !item.Id().IsValid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidId, item.Id())
	}
	if s.Contains(item.Id()) {
		return s, fmt.Errorf("%w: %s", ErrIdCollision, item.Id())
	}
	items := make([]apitype.GalleryItem, len(s.items), len(s.items)+1)
	copy(items, s.items)
	items = append(items, item.WithSelected(false))
	return &State{items: items}, nil
}

// Remove drops every item whose id is in ids. Unknown ids are ignored.
func (s *State) Remove(ids *util.Set[apitype.ItemId]) *State {
	items := make([]apitype.GalleryItem, 0, len(s.items))
	for _, item := range s.items {
		if !ids.Contains(item.Id()) {
			items = append(items, item)
		}
	}
	if len(items) == len(s.items) {
		return s
	}
	return &State{items: items}
}

func (s *State) indexOf(id apitype.ItemId) int {
	for i, item := range s.items {
		if item.Id() == id {
			return i
		}
	}
	return -1
}

func copyItems(items []apitype.GalleryItem) []apitype.GalleryItem {
	if items == nil {
		return nil
	}
	copied := make([]apitype.GalleryItem, len(items))
	copy(copied, items)
	return copied
}
