package repository

import "context"

// Store bundles every repository a running server needs
type Store interface {
	Garden
	Catalog
	CatalogWriter
	Participation

	Ping(ctx context.Context) error
	Close()
}
