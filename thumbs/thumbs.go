// Package thumbs intercepts the host application's thumbnail lifecycle
// events and mirrors them onto the active remote storage engine. When no
// remote engine is enabled every event is left unhandled, so the host's
// local-disk handling proceeds untouched.
package thumbs

import "fmt"

// Item identifies the owner of a set of thumbnails: the host's per-type
// image directory and the record id within it.
type Item struct {
	Dir string
	ID  string
}

// DefaultID is the reserved item id whose pre-rendered files serve as the
// default thumbnails for new items.
const DefaultID = "new"

// Size is one configured thumbnail dimension.
type Size struct {
	Name   string
	Width  int
	Height int
}

// Sizes maps an image directory to its configured sizes, ordered smallest
// first. The first entry backs the default-thumbnail check.
type Sizes map[string][]Size

// Smallest returns the first configured size for dir.
func (s Sizes) Smallest(dir string) (Size, bool) {
	sizes := s[dir]
	if len(sizes) == 0 {
		return Size{}, false
	}
	return sizes[0], true
}

// Path returns the relative object key for an item's thumbnail at the given
// size and extension. It does not guarantee the object exists.
func Path(item Item, size, ext string) string {
	return fmt.Sprintf("%s/%s%s.%s", item.Dir, item.ID, size, ext)
}
