package api

import (
	"github.com/segmentio/ksuid"

	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/itemstore"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port     int
	Bind     string
	APIKey   string
	ItemKind cd.ItemKind // default kind for uploads without ?kind=

	// MaxItemSize caps upload bodies. Zero means 64 MiB.
	MaxItemSize int64
}

// ItemStore defines the item store operations the API needs
type ItemStore interface {
	Put(item itemstore.Item) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) (itemstore.Item, error)
	Delete(id ksuid.KSUID) error
	List() ([]itemstore.Meta, error)
}

// PutItemResponse is returned by POST /items
type PutItemResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Records int    `json:"records"`
}

// RecordView describes one decoded record
type RecordView struct {
	Offset    int    `json:"offset"`
	Size      int    `json:"size"` // encoded size, pad included
	Signature string `json:"signature"`
	Name      string `json:"name"`
	Unknown   bool   `json:"unknown,omitempty"`
}

// TableView describes one top-level table
type TableView struct {
	Index   int        `json:"index"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   []CellView `json:"cells"`
}

// CellView is the plain text of one cell
type CellView struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

// ResourceView describes one reassembled resource
type ResourceView struct {
	Index    int    `json:"index"`
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	Size     int    `json:"size"`
	Segments int    `json:"segments"`
}
