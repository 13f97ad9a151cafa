package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetWithDefault returns an integer stored under key or def when the key is
// missing. Used for deploy-time configured values.
func GetWithDefault(ctx storage.Context, key interface{}, def int) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return def
}
