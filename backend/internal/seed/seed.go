package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/backend/internal/gallery"
	"vincit.fi/image-gallery/common/logger"
)

var ErrMissingSlug = errors.New("image has no slug")

type file struct {
	Images []image `toml:"image"`
}

type image struct {
	Id       string `toml:"id"`
	Slug     string `toml:"slug"`
	Selected bool   `toml:"selected"`
}

// Load reads the initial gallery from a TOML file. An empty path gives an
// empty gallery.
func Load(path string) (*gallery.State, error) {
	if path == "" {
		logger.Debug.Printf("No seed file, starting with an empty gallery")
		return gallery.NewState(), nil
	}

	logger.Info.Printf("Loading gallery from '%s'", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*gallery.State, error) {
	var seedFile file
	if err := toml.Unmarshal(data, &seedFile); err != nil {
		return nil, err
	}

	items := make([]apitype.GalleryItem, 0, len(seedFile.Images))
	for i, seedImage := range seedFile.Images {
		item, err := toItem(seedImage)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i+1, err)
		}
		items = append(items, item)
	}

	state, err := gallery.FromItems(items)
	if err != nil {
		return nil, err
	}
	logger.Debug.Printf("Loaded %d images", state.Len())
	return state, nil
}

func toItem(seedImage image) (apitype.GalleryItem, error) {
	if seedImage.Slug == "" {
		return apitype.GalleryItem{}, ErrMissingSlug
	}

	var item apitype.GalleryItem
	if seedImage.Id == "" {
		generated, err := apitype.NewGalleryItem(seedImage.Slug)
		if err != nil {
			return apitype.GalleryItem{}, err
		}
		item = generated
	} else {
		item = apitype.NewGalleryItemWithId(apitype.ItemId(seedImage.Id), seedImage.Slug)
	}
	return item.WithSelected(seedImage.Selected), nil
}
