package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/ssargent/cdstream/pkg/catalog"
	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/codec"
	"github.com/ssargent/cdstream/pkg/itemstore"
	"github.com/ssargent/cdstream/pkg/richtext"
	"github.com/ssargent/cdstream/pkg/table"
)

const defaultMaxItemSize = 64 << 20

// Server holds the API server state
type Server struct {
	store   ItemStore
	config  ServerConfig
	metrics *Metrics
	log     logrus.FieldLogger
}

// NewServer creates a new API server
func NewServer(store ItemStore, config ServerConfig, metrics *Metrics, log logrus.FieldLogger) *Server {
	if config.MaxItemSize <= 0 {
		config.MaxItemSize = defaultMaxItemSize
	}
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
		log:     log,
	}
}

// fail logs err and sends it with the status it maps to
func (s *Server) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", r.URL.Path).Error(message)
	}
	sendError(w, fmt.Sprintf("%s: %v", message, err), code)
}

// loadItem fetches the item named by the {id} URL parameter
func (s *Server) loadItem(w http.ResponseWriter, r *http.Request) (itemstore.Item, bool) {
	id, err := itemstore.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, "Invalid item id", err)
		return itemstore.Item{}, false
	}
	item, err := s.store.Get(id)
	s.metrics.RecordStoreOperation("get", err == nil)
	if err != nil {
		s.fail(w, r, "Failed to get item", err)
		return itemstore.Item{}, false
	}
	return item, true
}

// decode decodes an item's stream and records codec metrics
func (s *Server) decode(item itemstore.Item) (codec.Stream, error) {
	start := time.Now()
	stream, err := codec.DecodeAll(item.Data, item.Kind)
	s.metrics.RecordCodecOperation("decode", err == nil, time.Since(start))
	s.metrics.RecordDecoded(item.Kind.String(), len(stream))
	return stream, err
}

// handleHealth reports that the server is up
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handlePutItem stores the request body as a new item after checking that
// it decodes.
//
//	POST /items?name=Body&kind=composite
func (s *Server) handlePutItem(w http.ResponseWriter, r *http.Request) {
	kind := s.config.ItemKind
	if k := r.URL.Query().Get("kind"); k != "" {
		parsed, err := cd.ParseItemKind(k)
		if err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		kind = parsed
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxItemSize))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusRequestEntityTooLarge)
		return
	}

	item := itemstore.Item{Name: r.URL.Query().Get("name"), Kind: kind, Data: body}
	stream, err := s.decode(item)
	if err != nil {
		s.fail(w, r, "Invalid record stream", err)
		return
	}

	id, err := s.store.Put(item)
	s.metrics.RecordStoreOperation("put", err == nil)
	if err != nil {
		s.fail(w, r, "Failed to store item", err)
		return
	}
	sendSuccess(w, PutItemResponse{ID: id.String(), Kind: kind.String(), Records: len(stream)})
}

// handleListItems lists stored items
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.List()
	s.metrics.RecordStoreOperation("list", err == nil)
	if err != nil {
		s.fail(w, r, "Failed to list items", err)
		return
	}
	s.metrics.UpdateItemCount(len(metas))
	if metas == nil {
		metas = []itemstore.Meta{}
	}
	sendSuccess(w, metas)
}

// handleGetItem returns the raw record stream of an item
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := s.loadItem(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("X-Item-Kind", item.Kind.String())
	w.Header().Set("X-Item-Name", item.Name)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(item.Data)
}

// handleDeleteItem removes an item
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemstore.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, "Invalid item id", err)
		return
	}
	err = s.store.Delete(id)
	s.metrics.RecordStoreOperation("delete", err == nil)
	if err != nil {
		s.fail(w, r, "Failed to delete item", err)
		return
	}
	sendSuccess(w, map[string]string{"id": id.String()})
}

// handleRecords lists the records of an item with their offsets
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	item, ok := s.loadItem(w, r)
	if !ok {
		return
	}

	start := time.Now()
	views := []RecordView{}
	d := codec.NewDecoder(item.Data, item.Kind)
	for d.Next() {
		rec := d.Record()
		_, unknown := rec.(*cd.Unknown)
		views = append(views, RecordView{
			Offset:    d.RecordOffset(),
			Size:      d.Offset() - d.RecordOffset(),
			Signature: rec.Signature().String(),
			Name:      catalog.Name(item.Kind, rec.Signature()),
			Unknown:   unknown,
		})
	}
	s.metrics.RecordCodecOperation("decode", d.Err() == nil, time.Since(start))
	s.metrics.RecordDecoded(item.Kind.String(), d.Count())
	if err := d.Err(); err != nil {
		s.fail(w, r, "Failed to decode item", err)
		return
	}
	sendSuccess(w, views)
}

// handleTables returns the tables of an item with the text of each cell
func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	item, ok := s.loadItem(w, r)
	if !ok {
		return
	}

	start := time.Now()
	tables, err := richtext.Tables(item.Data, item.Kind)
	s.metrics.RecordCodecOperation("walk", err == nil, time.Since(start))
	if err != nil {
		s.fail(w, r, "Failed to walk tables", err)
		return
	}

	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		views = append(views, tableView(t))
	}
	sendSuccess(w, views)
}

func tableView(t table.Table) TableView {
	v := TableView{Index: t.Index, Rows: len(t.Rows), Columns: t.Columns(), Cells: []CellView{}}
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			v.Cells = append(v.Cells, CellView{Row: c.Row, Column: c.Column, Text: richtext.PlainText(c.Content)})
		}
	}
	return v
}

// handleText returns the plain text of an item
func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	item, ok := s.loadItem(w, r)
	if !ok {
		return
	}
	stream, err := s.decode(item)
	if err != nil {
		s.fail(w, r, "Failed to decode item", err)
		return
	}
	sendSuccess(w, map[string]string{"text": richtext.PlainText(stream)})
}

// handleResources lists the files, images and blobs of an item
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	item, ok := s.loadItem(w, r)
	if !ok {
		return
	}
	stream, err := s.decode(item)
	if err != nil {
		s.fail(w, r, "Failed to decode item", err)
		return
	}
	resources, err := richtext.Resources(stream)
	if err != nil {
		s.fail(w, r, "Failed to reassemble resources", err)
		return
	}

	views := make([]ResourceView, 0, len(resources))
	for _, res := range resources {
		views = append(views, ResourceView{
			Index:    res.Index,
			Kind:     res.Kind,
			Name:     res.Name(),
			Size:     len(res.Data),
			Segments: res.Segments,
		})
	}
	sendSuccess(w, views)
}

// handleSummary returns record counts for an item
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	item, ok := s.loadItem(w, r)
	if !ok {
		return
	}
	start := time.Now()
	summary, err := richtext.Summarize(item.Data, item.Kind)
	s.metrics.RecordCodecOperation("summarize", err == nil, time.Since(start))
	if err != nil {
		s.fail(w, r, "Failed to summarize item", err)
		return
	}
	sendSuccess(w, summary)
}
