package cache

import "time"

// Cache defines the interface for byte-payload cache backends
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	SetWithTTL(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Clear()
}
