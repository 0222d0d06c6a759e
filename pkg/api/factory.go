// Package api provides factory implementations for dependency injection
package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ssargent/cdstream/pkg/itemstore"
)

// DefaultStoreOpener opens pebble-backed item stores
type DefaultStoreOpener struct{}

// NewStoreOpener creates a new store opener
func NewStoreOpener() StoreOpener {
	return &DefaultStoreOpener{}
}

// OpenStore opens an item store
func (o *DefaultStoreOpener) OpenStore(cfg itemstore.Config, log logrus.FieldLogger) (ItemStoreCloser, error) {
	return itemstore.Open(cfg, log)
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, store ItemStore, config ServerConfig, log logrus.FieldLogger) error {
	return StartServer(ctx, store, config, log)
}
