package backend

import (
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/backend/internal/gallery"
	"vincit.fi/image-gallery/backend/internal/seed"
	"vincit.fi/image-gallery/common"
	"vincit.fi/image-gallery/common/event"
	"vincit.fi/image-gallery/common/logger"
)

type Services struct {
	GalleryService api.GalleryService
}

func (s *Services) Close() {
	s.GalleryService.Close()
}

type Brokers struct {
	Broker *event.Broker
}

func (s *Brokers) Close() {
	s.Broker.Close()
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeServices loads the initial gallery and subscribes the gallery
// service to gallery events.
func InitializeServices(params *common.Params, brokers *Brokers) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	state, err := seed.Load(params.SeedPath())
	if err != nil {
		return nil, err
	}

	services := &Services{
		GalleryService: gallery.NewGalleryService(brokers.Broker, state),
	}
	brokers.Broker.Subscribe(api.GalleryEvent, services.GalleryService.HandleCommand)
	logger.Debug.Printf("Services initialized")
	return services, nil
}

func ConnectGui(brokers *Brokers, gui api.Gui) {
	brokers.Broker.Subscribe(api.GalleryUpdated, gui.HandleUpdate)
	brokers.Broker.Subscribe(api.ShowError, gui.ShowError)
}
