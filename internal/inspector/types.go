package inspector

import (
	"context"

	"github.com/aleister1102/pathscan/internal/config"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/rs/zerolog"
)

// Inspection is what a page inspection hands to the scanner.
type Inspection struct {
	PageURL  string
	Seeds    []models.ResourceRef
	PageURLs []string
}

// Inspector harvests seed resources and page URLs from a live page.
type Inspector interface {
	Inspect(ctx context.Context, pageURL string) (*Inspection, error)
}

// New returns the headless inspector when it is enabled, the static one otherwise.
func New(cfg config.InspectorConfig, logger zerolog.Logger) Inspector {
	if cfg.Headless.Enabled {
		return NewHeadlessInspector(cfg, logger)
	}
	return NewStaticInspector(cfg, logger)
}

func toResourceRefs(urls []string) []models.ResourceRef {
	refs := make([]models.ResourceRef, 0, len(urls))
	for _, u := range urls {
		refs = append(refs, models.ResourceRef(u))
	}
	return refs
}
