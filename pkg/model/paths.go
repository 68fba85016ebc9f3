package model

import (
	"fmt"
	"strings"
)

const (
	refsDir     = "_refs"
	tagsDir     = "tags"
	versionsDir = "_versions"

	tagFileExtension      = ".json"
	manifestFileExtension = ".manifest"
)

func join(elems ...string) string {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		e = strings.Trim(e, "/")
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, "/")
}

// GetPathPrefixToTags yields the storage prefix under which all tag objects
// for a dataset root live, with a trailing slash.
func GetPathPrefixToTags(root string) string {
	return join(root, refsDir, tagsDir) + "/"
}

// GetPathToTag yields the storage path of one tag object.
func GetPathToTag(root, tag string) string {
	return GetPathPrefixToTags(root) + tag + tagFileExtension
}

// GetPathToManifest yields the storage path of the manifest for one
// committed dataset version.
func GetPathToManifest(root string, version uint64) string {
	return join(root, versionsDir) + "/" + fmt.Sprintf("%d", version) + manifestFileExtension
}

// TagNameFromPath parses the tag name out of a tag object path, as
// enumerated under GetPathPrefixToTags.
func TagNameFromPath(root, pth string) (string, error) {
	prefix := GetPathPrefixToTags(root)
	name := strings.TrimPrefix(pth, prefix)
	if name == pth || name == "" {
		return "", fmt.Errorf("path %q is not under the tags prefix %q", pth, prefix)
	}
	if !strings.HasSuffix(name, tagFileExtension) {
		return "", fmt.Errorf("path %q is not a tag object (expected extension %q)", pth, tagFileExtension)
	}
	return strings.TrimSuffix(name, tagFileExtension), nil
}
