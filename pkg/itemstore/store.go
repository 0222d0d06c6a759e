// Package itemstore keeps CD items, named record streams tagged with their
// item kind, in a pebble database keyed by KSUID.
//
// The store sits outside the record core: it never decodes the streams it
// holds.
package itemstore

import (
	"io"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"

	"github.com/ssargent/cdstream/pkg/cd"
)

var (
	// ErrNotFound is returned for ids the store does not hold.
	ErrNotFound = errors.New("itemstore: item not found")

	// ErrBadCompression is returned for stored values with an unknown codec
	// byte.
	ErrBadCompression = errors.New("itemstore: bad compression")
)

// Config configures Open.
type Config struct {
	Dir         string
	Compression string // "snappy" or "none"
}

// Item is a named record stream.
type Item struct {
	Name string
	Kind cd.ItemKind
	Data []byte
}

// Meta describes a stored item without its data.
type Meta struct {
	ID         ksuid.KSUID `json:"id"`
	Name       string      `json:"name"`
	Kind       string      `json:"kind"`
	Size       int         `json:"size"`
	Stored     int         `json:"stored"`
	Compressed bool        `json:"compressed"`
	Created    time.Time   `json:"created"`
}

// Store is safe for concurrent use.
type Store struct {
	db       *pebble.DB
	compress bool
	log      logrus.FieldLogger
}

// Open opens or creates the store in cfg.Dir.
func Open(cfg Config, log logrus.FieldLogger) (*Store, error) {
	var compress bool
	switch cfg.Compression {
	case "snappy":
		compress = true
	case "", "none":
	default:
		return nil, errors.Errorf("itemstore: unknown compression %q", cfg.Compression)
	}

	db, err := pebble.Open(cfg.Dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "itemstore: open %s", cfg.Dir)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Store{db: db, compress: compress, log: log.WithField("component", "itemstore")}, nil
}

// ParseID parses the string form of an item id.
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, errors.Wrapf(ErrNotFound, "invalid id %q", s)
	}
	return id, nil
}

func checkItem(item Item) error {
	if len(item.Name) > 0xFFFF {
		return errors.Errorf("itemstore: name of %d bytes", len(item.Name))
	}
	return nil
}

// Put stores item under a new id.
func (s *Store) Put(item Item) (ksuid.KSUID, error) {
	if err := checkItem(item); err != nil {
		return ksuid.Nil, err
	}

	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), encodeValue(item, s.compress), pebble.NoSync); err != nil {
		return ksuid.Nil, errors.Wrap(err, "itemstore: put")
	}
	s.log.WithFields(logrus.Fields{
		"id":    id.String(),
		"name":  item.Name,
		"kind":  item.Kind.String(),
		"bytes": len(item.Data),
	}).Debug("item stored")
	return id, nil
}

func (s *Store) read(id ksuid.KSUID) (value, error) {
	raw, closer, err := s.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return value{}, errors.Wrap(ErrNotFound, id.String())
	}
	if err != nil {
		return value{}, errors.Wrap(err, "itemstore: get")
	}
	defer closer.Close()

	// raw is only valid until closer is closed
	v, err := parseValue(append([]byte(nil), raw...))
	if err != nil {
		return value{}, errors.Wrap(err, id.String())
	}
	return v, nil
}

// Get returns the item stored under id.
func (s *Store) Get(id ksuid.KSUID) (Item, error) {
	v, err := s.read(id)
	if err != nil {
		return Item{}, err
	}
	data, err := v.data()
	if err != nil {
		return Item{}, err
	}
	return Item{Name: v.name, Kind: v.kind, Data: data}, nil
}

// Replace overwrites the item stored under id.
func (s *Store) Replace(id ksuid.KSUID, item Item) error {
	if err := checkItem(item); err != nil {
		return err
	}
	if _, err := s.read(id); err != nil {
		return err
	}
	if err := s.db.Set(id.Bytes(), encodeValue(item, s.compress), pebble.NoSync); err != nil {
		return errors.Wrap(err, "itemstore: replace")
	}
	s.log.WithField("id", id.String()).Debug("item replaced")
	return nil
}

// Delete removes the item stored under id.
func (s *Store) Delete(id ksuid.KSUID) error {
	if _, err := s.read(id); err != nil {
		return err
	}
	if err := s.db.Delete(id.Bytes(), pebble.NoSync); err != nil {
		return errors.Wrap(err, "itemstore: delete")
	}
	s.log.WithField("id", id.String()).Debug("item deleted")
	return nil
}

// List returns the metadata of every item, oldest first.
func (s *Store) List() ([]Meta, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "itemstore: list")
	}
	defer iter.Close()

	var metas []Meta
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, errors.Wrap(err, "itemstore: stored key")
		}
		v, err := parseValue(append([]byte(nil), iter.Value()...))
		if err != nil {
			return nil, errors.Wrap(err, id.String())
		}
		size, err := v.size()
		if err != nil {
			return nil, err
		}
		metas = append(metas, Meta{
			ID:         id,
			Name:       v.name,
			Kind:       v.kind.String(),
			Size:       size,
			Stored:     len(v.payload),
			Compressed: v.codec == codecSnappy,
			Created:    id.Time(),
		})
	}
	return metas, errors.Wrap(iter.Error(), "itemstore: list")
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	if err := s.db.Flush(); err != nil {
		return errors.Wrap(err, "itemstore: flush")
	}
	return s.db.Close()
}
