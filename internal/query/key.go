package query

import (
	"encoding/json"
	"fmt"
)

// Key addresses one cache entry: the resource name plus the serialized
// filter parameters. Two queries with identical keys share an entry.
type Key struct {
	Resource string
	Params   string
}

// NewKey builds a key for resource. params, when given, is serialized
// deterministically (struct field order / sorted map keys) so that
// equal filters always produce equal keys.
func NewKey(resource string, params ...any) Key {
	key := Key{Resource: resource}
	if len(params) == 0 {
		return key
	}
	if len(params) > 1 {
		panic("query.NewKey: at most one params value")
	}

	encoded, err := json.Marshal(params[0])
	if err != nil {
		// Filters are plain structs of strings and ints; this cannot
		// fail for any type used in this codebase.
		panic(fmt.Sprintf("query.NewKey: unserializable params: %v", err))
	}
	key.Params = string(encoded)
	return key
}

// DetailKey builds the single-entity key for one record, e.g.
// ("courses", 42). Mutations invalidate it alongside the list keys.
func DetailKey(resource string, id int) Key {
	return Key{Resource: resource, Params: fmt.Sprintf("id=%d", id)}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + ":" + k.Params
}
