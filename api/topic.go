package api

type Topic string

const (
	GalleryEvent   Topic = "event-gallery"
	GalleryUpdated Topic = "event-gallery-updated"
	ShowError      Topic = "event-show-error"
)
