package cd

import (
	"fmt"
	"strings"
)

// ItemKind names the namespace a record stream belongs to. It comes from the
// declared data type of the item holding the stream and is the only way to
// tell apart records whose signatures are numerically reused.
type ItemKind uint8

// Item kinds.
const (
	KindComposite ItemKind = iota
	KindAction
	KindQuery
	KindViewmapLayout
	KindViewmapDataset
)

// Item data types, as declared by the item that carries the stream.
const (
	TypeComposite      uint16 = 1
	TypeQuery          uint16 = 15
	TypeAction         uint16 = 16
	TypeViewmapDataset uint16 = 18
	TypeViewmapLayout  uint16 = 19
)

var kindNames = map[ItemKind]string{
	KindComposite:      "composite",
	KindAction:         "action",
	KindQuery:          "query",
	KindViewmapLayout:  "viewmap",
	KindViewmapDataset: "viewmap-dataset",
}

func (k ItemKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ItemKind(%d)", uint8(k))
}

// ItemKindFromType maps an item data type to its record namespace.
func ItemKindFromType(typ uint16) (ItemKind, error) {
	switch typ {
	case TypeComposite:
		return KindComposite, nil
	case TypeQuery:
		return KindQuery, nil
	case TypeAction:
		return KindAction, nil
	case TypeViewmapLayout:
		return KindViewmapLayout, nil
	case TypeViewmapDataset:
		return KindViewmapDataset, nil
	}
	return 0, fmt.Errorf("cd: item type %d carries no record stream", typ)
}

// ParseItemKind parses the textual form produced by ItemKind.String.
func ParseItemKind(s string) (ItemKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindComposite, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("cd: unknown item kind %q", s)
}
