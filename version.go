package overlay

import (
	"fmt"
)

// Library version components.
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// Version represents the library version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast checks if the version is at least the given major, minor, patch.
func (v Version) AtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// LibraryVersion returns the version of the overlay library.
func LibraryVersion() Version {
	return Version{Major: VersionMajor, Minor: VersionMinor, Patch: VersionPatch}
}

// VersionString returns the library version as a string.
func VersionString() string {
	return LibraryVersion().String()
}
