// Package model describes the base objects manipulated by this module.
//
// The package exposes a model for dataset metadata.
//
// The object model is composed of:
//
//	Datasets:
//	  A dataset is an immutable, append-only collection of committed versions,
//	  rooted at a single path on an object store.
//
//	Versions:
//	  A version is a non-negative integer identifying one immutable committed
//	  manifest in a dataset's history. Versions are monotonic and never reused.
//
//	Manifests:
//	  A manifest is the serialized metadata object describing one version's
//	  contents. Manifests live under "_versions/" within the dataset root.
//
//	Tags:
//	  A name given to a dataset version, analogous to tags in git.
//	  Examples: latest, production. Tags live under "_refs/tags/" within the
//	  dataset root, one JSON object per tag.
package model
