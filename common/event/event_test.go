package event

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
)

const receiveTimeout = 2 * time.Second

func receive(t *testing.T, received chan apitype.Command) apitype.Command {
	select {
	case command := <-received:
		return command
	case <-time.After(receiveTimeout):
		require.FailNow(t, "timed out waiting for command")
		return nil
	}
}

func TestBroker_SendCommandToTopic(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	defer broker.Close()

	received := make(chan apitype.Command, 10)
	broker.Subscribe(api.GalleryEvent, func(command apitype.Command) {
		received <- command
	})

	broker.SendCommandToTopic(api.GalleryEvent, &api.ClickCommand{Id: "1"})
	broker.SendCommandToTopic(api.GalleryEvent, &api.DragEndCommand{SourceId: "1", TargetId: "2"})
	broker.SendCommandToTopic(api.GalleryEvent, &api.DeleteSelectedCommand{})

	a.Equal(&api.ClickCommand{Id: "1"}, receive(t, received))
	a.Equal(&api.DragEndCommand{SourceId: "1", TargetId: "2"}, receive(t, received))
	a.Equal(&api.DeleteSelectedCommand{}, receive(t, received))
}

func TestBroker_SendError(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	defer broker.Close()

	received := make(chan *api.ErrorCommand, 10)
	broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		received <- command
	})

	broker.SendError("Could not add image", errors.New("id collision"))
	broker.SendError("Plain message", nil)

	select {
	case command := <-received:
		a.Equal("Could not add image\nid collision", command.Message)
	case <-time.After(receiveTimeout):
		require.FailNow(t, "timed out waiting for error")
	}
	select {
	case command := <-received:
		a.Equal("Plain message", command.Message)
	case <-time.After(receiveTimeout):
		require.FailNow(t, "timed out waiting for error")
	}
}

func TestBroker_TopicsAreSeparate(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	defer broker.Close()

	events := make(chan apitype.Command, 10)
	updates := make(chan apitype.Command, 10)
	broker.Subscribe(api.GalleryEvent, func(command apitype.Command) {
		events <- command
	})
	broker.Subscribe(api.GalleryUpdated, func(command apitype.Command) {
		updates <- command
	})

	broker.SendCommandToTopic(api.GalleryUpdated, &api.QuitCommand{})

	a.Equal(&api.QuitCommand{}, receive(t, updates))
	a.Empty(events)
}
