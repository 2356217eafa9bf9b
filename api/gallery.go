package api

import (
	"fmt"

	"vincit.fi/image-gallery/api/apitype"
)

type ClickCommand struct {
	Id apitype.ItemId
}

type DragStartCommand struct {
	Id apitype.ItemId
}

// DragEndCommand ends a drag gesture. TargetId is apitype.NoItemId when the
// item was dropped outside of any target.
type DragEndCommand struct {
	SourceId apitype.ItemId
	TargetId apitype.ItemId
}

type AddItemCommand struct {
	Item apitype.GalleryItem
}

type AddImageCommand struct {
	Slug string
}

type DeleteSelectedCommand struct{}

type GalleryQuery struct{}

// QuitCommand is echoed back on GalleryUpdated once every earlier event has
// been handled.
type QuitCommand struct{}

func (s *ClickCommand) String() string {
	return fmt.Sprintf("ClickCommand{%s}", s.Id)
}

func (s *DragStartCommand) String() string {
	return fmt.Sprintf("DragStartCommand{%s}", s.Id)
}

func (s *DragEndCommand) String() string {
	if !s.TargetId.IsValid() {
		return fmt.Sprintf("DragEndCommand{%s:<none>}", s.SourceId)
	}
	return fmt.Sprintf("DragEndCommand{%s:%s}", s.SourceId, s.TargetId)
}

func (s *AddItemCommand) String() string {
	return fmt.Sprintf("AddItemCommand{%s}", s.Item)
}

func (s *AddImageCommand) String() string {
	return fmt.Sprintf("AddImageCommand{%s}", s.Slug)
}

func (s *DeleteSelectedCommand) String() string {
	return "DeleteSelectedCommand"
}

func (s *GalleryQuery) String() string {
	return "GalleryQuery"
}

func (s *QuitCommand) String() string {
	return "QuitCommand"
}

type GalleryService interface {
	DragStart(*DragStartCommand)
	DragEnd(*DragEndCommand)
	Click(*ClickCommand)
	AddRequested(*AddItemCommand) error
	AddImage(*AddImageCommand) error
	DeleteRequested()
	RequestGallery()
	HandleCommand(apitype.Command)

	GetItems() []apitype.GalleryItem
	GetSelectedItems() []apitype.GalleryItem
	Close()
}
