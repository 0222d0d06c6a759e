// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ssargent/cdstream/pkg/itemstore"
)

// StoreOpener opens the item store backing the API and the CLI
type StoreOpener interface {
	// OpenStore opens or creates the store described by cfg
	OpenStore(cfg itemstore.Config, log logrus.FieldLogger) (ItemStoreCloser, error)
}

// ItemStoreCloser is an ItemStore that must be closed
type ItemStoreCloser interface {
	ItemStore
	Close() error
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, store ItemStore, config ServerConfig, log logrus.FieldLogger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
