package version

import (
	_ "embed"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- || echo dirty > dirty.txt; [ -f dirty.txt ] || echo clean > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// Info is the build's git metadata, reported by the version command and the health endpoint.
type Info struct {
	Commit string `json:"commit"`
	Branch string `json:"branch"`
	Tag    string `json:"tag"`
	Dirty  bool   `json:"dirty"`
}

var info = Info{
	Commit: strings.TrimSpace(commit),
	Branch: strings.TrimSpace(branch),
	Tag:    strings.TrimSpace(tag),
	Dirty:  strings.TrimSpace(dirty) == "dirty",
}

// GetGitInfo returns a copy of the build's git metadata.
func GetGitInfo() Info {
	return info
}

// Short renders the tag and abbreviated commit, e.g. "v1.2.0 (3f9c2ab, dirty)".
func (i Info) Short() string {
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	s := i.Tag + " (" + commit
	if i.Dirty {
		s += ", dirty"
	}
	return s + ")"
}
