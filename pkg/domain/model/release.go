package model

import (
	"mime"
	"path/filepath"
	"strings"
)

// ReleaseSpec is the fully resolved, validated input of a publish run. It is
// built once by the configuration layer before any remote call and never
// mutated afterwards.
type ReleaseSpec struct {
	Owner         string // Repository owner
	Repo          string // Repository name
	CommitSHA     string // Commit the tag and release refer to
	ReleaseName   string // Resolved release name
	TagName       string // Resolved tag name
	Message       string // Tag annotation message (optional)
	Body          string // Release body (optional; commit message used when empty)
	Draft         bool
	Prerelease    bool
	Files         []LocalFile // Assets to upload, in input order
	ReplaceAssets bool        // Delete every existing asset before uploading
	UpdateTag     bool        // Re-point the tag at CommitSHA after publishing
}

// LocalFile is a resolved asset source on the local filesystem.
type LocalFile struct {
	Path        string // Path the file was found at
	Name        string // Basename, used as the asset display name
	Size        int64  // Byte length at resolution time
	ContentType string // Inferred from the file extension
}

// PublishResult carries the observable outputs of a completed publish run.
type PublishResult struct {
	ReleaseID   int64
	ReleaseName string
	TagName     string
	Draft       bool
	Prerelease  bool
	TagCreated  bool     // false when an existing tag was reused
	Assets      []string // Uploaded asset names, in upload order
}

const fallbackName = "unknown-release"

// ResolveNames derives the release and tag names from raw inputs. An empty
// release name falls back to the ref with its leading refs/, heads/ or tags/
// segments stripped and remaining slashes replaced by dashes; an empty tag
// name falls back to the release name. The result is always non-empty.
func ResolveNames(releaseName, tagName, ref string) (string, string) {
	if releaseName == "" {
		releaseName = nameFromRef(ref)
	}
	if tagName == "" {
		tagName = releaseName
	}
	return releaseName, tagName
}

func nameFromRef(ref string) string {
	ref = strings.TrimPrefix(ref, "refs/")
	ref = strings.TrimPrefix(ref, "heads/")
	ref = strings.TrimPrefix(ref, "tags/")
	if name := strings.ReplaceAll(ref, "/", "-"); name != "" {
		return name
	}
	return fallbackName
}

// SplitFileList tokenizes a raw file list on spaces, commas, tabs and
// newlines. Empty tokens are dropped.
func SplitFileList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case ' ', ',', '\t', '\n', '\r':
			return true
		}
		return false
	})
}

// DefaultContentType is used for files with an unrecognized extension.
const DefaultContentType = "application/octet-stream"

// ContentTypeFor infers the upload content type from the file extension.
func ContentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return DefaultContentType
}
