package cachestore

import "strconv"

// Cache keys live in one place so the namespace cannot drift between
// resources. Collections use "<resource>:all", single items "<resource>:<id>".

// AllKey returns the cache key for a resource's full collection.
func AllKey(resource string) string {
	return resource + ":all"
}

// IDKey returns the cache key for a single record of a resource.
func IDKey(resource string, id int64) string {
	return resource + ":" + strconv.FormatInt(id, 10)
}
