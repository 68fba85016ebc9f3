// Package storage provides an interface to handle backend storage objects.
//
// Dataset metadata, such as version manifests and tag references, is kept as
// plain objects addressed by path on one of the supported backends:
//   - GCS (Google)
//   - S3 (AWS)
//   - local file system
//
// The Put operation supports an atomic create-if-absent mode
// (storage.NoOverWrite). Backends must implement that mode natively: it is
// the only primitive the rest of this module relies on for correctness under
// concurrent writers.
package storage
