package gallery

import (
	"sync"

	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
	"vincit.fi/image-gallery/common/util"
)

// Service owns the gallery state. All changes go through it and every
// change is published to api.GalleryUpdated.
type Service struct {
	sender     api.Sender
	state      *State
	activeItem *apitype.GalleryItem
	mux        sync.Mutex

	api.GalleryService
}

func NewGalleryService(sender api.Sender, state *State) api.GalleryService {
	return newService(sender, state)
}

func newService(sender api.Sender, state *State) *Service {
	if state == nil {
		state = NewState()
	}
	return &Service{
		sender: sender,
		state:  state,
	}
}

func (s *Service) HandleCommand(command apitype.Command) {
	logger.Trace.Printf("Handle %s", command)
	switch c := command.(type) {
	case *api.ClickCommand:
		s.Click(c)
	case *api.DragStartCommand:
		s.DragStart(c)
	case *api.DragEndCommand:
		s.DragEnd(c)
	// Add errors have already been sent to the error topic
	case *api.AddItemCommand:
		_ = s.AddRequested(c)
	case *api.AddImageCommand:
		_ = s.AddImage(c)
	case *api.DeleteSelectedCommand:
		s.DeleteRequested()
	case *api.GalleryQuery:
		s.RequestGallery()
	case *api.QuitCommand:
		s.sender.SendCommandToTopic(api.GalleryUpdated, c)
		s.sender.SendCommandToTopic(api.ShowError, c)
	default:
		logger.Warn.Printf("Unknown gallery command %s", command)
	}
}

func (s *Service) DragStart(command *api.DragStartCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if item, found := s.state.Find(command.Id); found {
		logger.Debug.Printf("Start dragging %s", item)
		s.activeItem = &item
	} else {
		logger.Debug.Printf("Drag started on unknown item '%s'", command.Id)
		s.activeItem = nil
	}
	s.publish()
}

func (s *Service) DragEnd(command *api.DragEndCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()

	wasDragging := s.activeItem != nil
	s.activeItem = nil

	if !command.TargetId.IsValid() {
		logger.Debug.Printf("Drag of '%s' cancelled", command.SourceId)
		if wasDragging {
			s.publish()
		}
		return
	}

	changed := s.apply(s.state.Reorder(command.SourceId, command.TargetId))
	if changed {
		logger.Debug.Printf("Moved '%s' to the position of '%s'", command.SourceId, command.TargetId)
	}
	if changed || wasDragging {
		s.publish()
	}
}

func (s *Service) Click(command *api.ClickCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.apply(s.state.ToggleSelect(command.Id)) {
		s.publish()
	} else {
		logger.Debug.Printf("Clicked unknown item '%s'", command.Id)
	}
}

func (s *Service) AddRequested(command *api.AddItemCommand) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.add(command.Item)
}

func (s *Service) AddImage(command *api.AddImageCommand) error {
	item, err := apitype.NewGalleryItem(command.Slug)
	if err != nil {
		s.sender.SendError("Could not create an id for the image", err)
		return err
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	return s.add(item)
}

func (s *Service) DeleteRequested() {
	s.mux.Lock()
	defer s.mux.Unlock()

	selected := s.state.SelectedItems()
	if len(selected) == 0 {
		logger.Debug.Printf("Nothing selected, nothing to delete")
		return
	}

	ids := util.NewSetOf(apitype.ItemIds(selected)...)
	if s.apply(s.state.Remove(ids)) {
		logger.Info.Printf("Deleted %d images", len(selected))
		s.publish()
	}
}

func (s *Service) RequestGallery() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.publish()
}

func (s *Service) GetItems() []apitype.GalleryItem {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.state.Items()
}

func (s *Service) GetSelectedItems() []apitype.GalleryItem {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.state.SelectedItems()
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down gallery service")
}

func (s *Service) add(item apitype.GalleryItem) error {
	next, err := s.state.Append(item)
	if err != nil {
		logger.Warn.Printf("Rejected %s: %s", item, err)
		s.sender.SendError("Could not add image", err)
		return err
	}
	s.apply(next)
	logger.Debug.Printf("Added %s", item)
	s.publish()
	return nil
}

// apply must be called with the lock held.
func (s *Service) apply(next *State) bool {
	if next == s.state {
		return false
	}
	s.state = next
	return true
}

// publish must be called with the lock held.
func (s *Service) publish() {
	items := s.state.Items()
	selected := s.state.SelectedItems()
	command := &api.UpdateGalleryCommand{
		Items:    items,
		Selected: selected,
		Header:   apitype.NewHeader(len(selected)),
	}
	if s.activeItem != nil {
		active := *s.activeItem
		command.ActiveItem = &active
	}
	s.sender.SendCommandToTopic(api.GalleryUpdated, command)
}
