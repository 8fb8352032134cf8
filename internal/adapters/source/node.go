package source

import (
	"context"

	"github.com/grindlemire/graft"
)

// CatalogNodeID is the unique identifier for the catalog Graft node.
const CatalogNodeID graft.ID = "adapter.source.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        CatalogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Catalog, error) {
			return NewCatalog(), nil
		},
	})
}
