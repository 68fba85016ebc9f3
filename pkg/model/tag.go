package model

// TagContents is the persisted record bound to a tag name.
//
// It pins a dataset version and caches the byte size of that version's
// manifest as observed when the tag was created. The size is a hint for
// readers planning a manifest fetch, it is not re-verified afterwards.
//
// The JSON field names are part of the on-storage format and must not change.
type TagContents struct {
	Version      uint64 `json:"version" yaml:"version"`
	ManifestSize uint64 `json:"manifestSize" yaml:"manifestSize"`
}

// TagSet is an immutable mapping from tag name to tag contents, representing
// all tags defined for one dataset root at a point in time.
//
// Mutating operations never update a TagSet in place: they return a fresh
// value, and the owning dataset handle replaces its current snapshot
// wholesale. Holders of an older TagSet keep seeing their own snapshot.
type TagSet map[string]TagContents

// With returns a copy of the set with an additional entry.
func (ts TagSet) With(name string, contents TagContents) TagSet {
	next := make(TagSet, len(ts)+1)
	for k, v := range ts {
		next[k] = v
	}
	next[name] = contents
	return next
}

// Without returns a copy of the set minus one entry.
func (ts TagSet) Without(name string) TagSet {
	next := make(TagSet, len(ts))
	for k, v := range ts {
		if k != name {
			next[k] = v
		}
	}
	return next
}
