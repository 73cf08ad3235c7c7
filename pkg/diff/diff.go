package diff

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/wI2L/jsondiff"
)

// Change is one difference between two keyed snapshots. Field is the dotted path
// inside the entry and is empty when the whole entry was added or removed.
type Change struct {
	Op    string      `json:"op"`
	Key   string      `json:"key"`
	Field string      `json:"field,omitempty"`
	From  interface{} `json:"from,omitempty"`
	To    interface{} `json:"to,omitempty"`
}

// Path renders the change location, e.g. "LEAVE/11" or "LEAVE/11.status".
func (c *Change) Path() string {
	if c.Field == "" {
		return c.Key
	}
	return c.Key + "." + c.Field
}

// Snapshots compares two snapshots keyed by entry. Entries are compared through their
// JSON form, so only exported fields take part. A nil snapshot is treated as empty.
// Changes are ordered by key then field; nil means nothing changed.
func Snapshots[V any](prev, next map[string]V) ([]*Change, error) {
	src, err := json.Marshal(orEmpty(prev))
	if err != nil {
		return nil, err
	}
	tgt, err := json.Marshal(orEmpty(next))
	if err != nil {
		return nil, err
	}

	patch, err := jsondiff.CompareJSON(src, tgt)
	if err != nil {
		return nil, err
	}

	var changes []*Change
	for _, op := range patch {
		segments := splitPointer(op.Path)
		if len(segments) == 0 {
			continue
		}
		changes = append(changes, &Change{
			Op:    op.Type,
			Key:   segments[0],
			Field: strings.Join(segments[1:], "."),
			From:  op.OldValue,
			To:    op.Value,
		})
	}

	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].Key != changes[j].Key {
			return changes[i].Key < changes[j].Key
		}
		return changes[i].Field < changes[j].Field
	})
	return changes, nil
}

func orEmpty[V any](m map[string]V) map[string]V {
	if m == nil {
		return map[string]V{}
	}
	return m
}

// entry keys such as "LEAVE/11" arrive escaped as "LEAVE~111"
var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

func splitPointer(ptr string) []string {
	if ptr == "" {
		return nil
	}
	segments := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	for i, s := range segments {
		segments[i] = pointerUnescaper.Replace(s)
	}
	return segments
}
