package event

import (
	"fmt"
	"sync"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

// Broker delivers commands to subscribers. Each subscriber gets the
// commands of a topic one at a time and in the order they were sent.
type Broker struct {
	bus    messagebus.MessageBus
	topics []api.Topic
	mux    sync.Mutex

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Panic("Could not subscribe to ", topic, ": ", err)
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.topics = append(s.topics, topic)
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s': %s", topic, command)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := message
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

// Close unsubscribes every subscriber. Commands already queued are still
// delivered.
func (s *Broker) Close() {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, topic := range s.topics {
		s.bus.Close(string(topic))
	}
	s.topics = nil
}
