package thumbs

import (
	"context"
	"errors"
	"io"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	mediastore "github.com/seanbradley/mediacore-aws"
)

// defaultThumbMetaKey tags objects copied from the pre-rendered defaults.
const defaultThumbMetaKey = "is_default_thumb"

// extFilter captures the leading alphanumeric run of a lowercased extension.
// Thumbnails fetched from some providers carry an extra query string that is
// stripped off here.
var extFilter = regexp.MustCompile(`^\.([a-z0-9]+)`)

// EngineSource yields the active remote storage engine, if any. Typically a
// *mediastore.RequestCache so the lookup is memoized per request.
type EngineSource interface {
	ActiveRemote() mediastore.RemoteEngine
}

// Resizer renders a source image at a target size as JPEG bytes. The host
// application supplies the implementation; pixel logic lives there.
type Resizer interface {
	ResizeJPEG(src io.Reader, width, height int) (io.Reader, error)
}

// LocalCache locates the host's pre-rendered default thumbnail files.
type LocalCache interface {
	Open(relPath string) (io.ReadCloser, error)
}

// DirCache is a LocalCache reading from the host's image cache directory.
type DirCache struct {
	Root string
}

func (c DirCache) Open(relPath string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(c.Root, "images", filepath.FromSlash(relPath)))
}

// Mirror redirects thumbnail lifecycle events to the active remote storage
// engine. With no remote engine enabled every event is unhandled and control
// falls through the chain toward the host's local handling.
type Mirror struct {
	engines EngineSource
	sizes   Sizes
	resizer Resizer
	cache   LocalCache
}

// NewMirror creates a remote-mirroring handler.
func NewMirror(engines EngineSource, sizes Sizes, resizer Resizer, cache LocalCache) *Mirror {
	return &Mirror{
		engines: engines,
		sizes:   sizes,
		resizer: resizer,
		cache:   cache,
	}
}

// ThumbPath resolves the relative object key for an item's thumbnail. With
// CheckExists set, an absent object resolves to the empty string.
func (m *Mirror) ThumbPath(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
	engine := m.engines.ActiveRemote()
	if engine == nil {
		return "", false, nil
	}

	ext := opts.Ext
	if ext == "" {
		ext = "jpg"
	}
	path := Path(item, size, ext)

	if opts.CheckExists {
		exists, err := m.exists(ctx, engine, path)
		if err != nil {
			return "", true, err
		}
		if !exists {
			return "", true, nil
		}
	}
	return path, true, nil
}

// ThumbURL resolves the fully qualified URL for an item's thumbnail by
// prefixing the engine's base URL to the resolved path.
func (m *Mirror) ThumbURL(ctx context.Context, item Item, size string, opts PathOptions) (string, bool, error) {
	engine := m.engines.ActiveRemote()
	if engine == nil {
		return "", false, nil
	}

	path := Path(item, size, "jpg")
	if opts.CheckExists {
		exists, err := m.exists(ctx, engine, path)
		if err != nil {
			return "", true, err
		}
		if !exists {
			return "", true, nil
		}
	}
	return engine.BucketURL() + path, true, nil
}

// CreateThumbs renders every configured size from the open source image and
// uploads each rendered JPEG, plus a backup copy of the original under the
// orig key. It owns src once the event is taken and closes it on every exit
// path.
func (m *Mirror) CreateThumbs(ctx context.Context, item Item, src io.ReadSeekCloser, filename string) (bool, error) {
	engine := m.engines.ActiveRemote()
	if engine == nil {
		return false, nil
	}
	defer src.Close()

	store, err := engine.ObjectStore(ctx)
	if err != nil {
		return true, err
	}

	for _, size := range m.sizes[item.Dir] {
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return true, err
		}
		thumb, err := m.resizer.ResizeJPEG(src, size.Width, size.Height)
		if err != nil {
			return true, err
		}
		if err := store.Put(ctx, Path(item, size.Name, "jpg"), thumb, "image/jpeg", nil); err != nil {
			return true, err
		}
	}

	// Back up the original image, ensuring there are no odd chars in the
	// extension. An unrecognizable extension skips the backup.
	match := extFilter.FindStringSubmatch(strings.ToLower(filepath.Ext(filename)))
	if match == nil {
		log.Debug().Str("filename", filename).Msg("skipping original backup for unrecognized extension")
		return true, nil
	}
	backupExt := match[1]
	backupPath := Path(item, "orig", backupExt)

	contentType := mime.TypeByExtension("." + backupExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return true, err
	}
	if err := store.Put(ctx, backupPath, src, contentType, nil); err != nil {
		return true, err
	}
	return true, nil
}

// CreateDefaultThumbs copies the pre-rendered default thumbnail files from
// the local cache into the object store under the item's own key, tagging
// each object as a default.
func (m *Mirror) CreateDefaultThumbs(ctx context.Context, item Item) (bool, error) {
	engine := m.engines.ActiveRemote()
	if engine == nil {
		return false, nil
	}

	store, err := engine.ObjectStore(ctx)
	if err != nil {
		return true, err
	}

	for _, size := range m.sizes[item.Dir] {
		src, err := m.cache.Open(Path(Item{Dir: item.Dir, ID: DefaultID}, size.Name, "jpg"))
		if err != nil {
			return true, err
		}

		err = store.Put(ctx, Path(item, size.Name, "jpg"), src, "image/jpeg",
			map[string]string{defaultThumbMetaKey: "1"})
		src.Close()
		if err != nil {
			return true, err
		}
	}
	return true, nil
}

// DeleteThumbs removes every stored size for the item, verifying each
// removal. Sizes that were never uploaded are skipped.
func (m *Mirror) DeleteThumbs(ctx context.Context, item Item) (bool, error) {
	engine := m.engines.ActiveRemote()
	if engine == nil {
		return false, nil
	}

	store, err := engine.ObjectStore(ctx)
	if err != nil {
		return true, err
	}

	for _, size := range m.sizes[item.Dir] {
		path := Path(item, size.Name, "jpg")
		exists, err := store.Exists(ctx, path)
		if err != nil {
			return true, err
		}
		if !exists {
			continue
		}
		if err := store.Delete(ctx, path); err != nil {
			return true, err
		}
	}
	return true, nil
}

// HasDefaultThumbs reports whether the item's thumbnails are still the
// defaults: true exactly when the smallest size's object carries the default
// tag with value "1".
func (m *Mirror) HasDefaultThumbs(ctx context.Context, item Item) (bool, bool, error) {
	engine := m.engines.ActiveRemote()
	if engine == nil {
		return false, false, nil
	}

	smallest, ok := m.sizes.Smallest(item.Dir)
	if !ok {
		return false, true, nil
	}

	store, err := engine.ObjectStore(ctx)
	if err != nil {
		return false, true, err
	}

	metadata, err := store.Metadata(ctx, Path(item, smallest.Name, "jpg"))
	if err != nil {
		if errors.Is(err, mediastore.ErrNotFound) {
			return false, true, nil
		}
		return false, true, err
	}
	return metadata[defaultThumbMetaKey] == "1", true, nil
}

func (m *Mirror) exists(ctx context.Context, engine mediastore.RemoteEngine, path string) (bool, error) {
	store, err := engine.ObjectStore(ctx)
	if err != nil {
		return false, err
	}
	return store.Exists(ctx, path)
}

var _ Handler = (*Mirror)(nil)
