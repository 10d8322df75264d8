package store

import "github.com/mvault/mvault"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = mvault.ReadOnlyKVStore
type KVStore = mvault.KVStore
type SetDeleter = mvault.SetDeleter
type Batch = mvault.Batch
type CacheableKVStore = mvault.CacheableKVStore
type KVCacheWrap = mvault.KVCacheWrap
