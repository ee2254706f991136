package engine

import (
	"bufio"
	"fmt"
	"io/fs"
	"strings"

	"github.com/atbot/runner/internal/core"
)

// Asset is a loaded rune-art image.
type Asset struct {
	Key    string
	Sprite *core.Sprite
	Color  core.Color
}

// missingAsset is drawn for keys that were never loaded.
var missingAsset = &Asset{Key: "missing", Sprite: core.NewSprite("?"), Color: core.ColorBrightRed}

type pendingAsset struct {
	key  string
	path string
}

// Loader loads image assets by key from a filesystem, one per call, and
// signals completion once.
//
// Asset files are plain rune art. An optional first line of the form
// "#! color=<name>" sets the colour the art is drawn in.
type Loader struct {
	fsys       fs.FS
	pending    []pendingAsset
	assets     map[string]*Asset
	total      int
	onComplete func()
	completed  bool
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:   fsys,
		assets: make(map[string]*Asset),
	}
}

// Image queues an asset for loading.
func (l *Loader) Image(key, path string) {
	l.pending = append(l.pending, pendingAsset{key: key, path: path})
	l.total++
}

// OnComplete sets the function called once every queued asset was processed.
func (l *Loader) OnComplete(fn func()) {
	l.onComplete = fn
}

// LoadNext loads the next queued asset. When the queue runs dry the
// completion callback fires, exactly once. A failed asset is still counted
// as processed and is replaced by a placeholder; the error is returned so
// the caller can report it.
func (l *Loader) LoadNext() error {
	var err error
	if len(l.pending) > 0 {
		next := l.pending[0]
		l.pending = l.pending[1:]

		asset, loadErr := l.load(next)
		if loadErr != nil {
			err = loadErr
			asset = &Asset{Key: next.key, Sprite: missingAsset.Sprite, Color: missingAsset.Color}
		}
		l.assets[next.key] = asset
	}

	if len(l.pending) == 0 && !l.completed {
		l.completed = true
		if l.onComplete != nil {
			l.onComplete()
		}
	}
	return err
}

// Progress returns how many queued assets were processed out of the total.
func (l *Loader) Progress() (loaded, total int) {
	return l.total - len(l.pending), l.total
}

// Done reports whether loading has completed.
func (l *Loader) Done() bool {
	return l.completed
}

// Get returns a loaded asset, or a placeholder for unknown keys.
func (l *Loader) Get(key string) *Asset {
	if a, ok := l.assets[key]; ok {
		return a
	}
	return missingAsset
}

func (l *Loader) load(p pendingAsset) (*Asset, error) {
	data, err := fs.ReadFile(l.fsys, p.path)
	if err != nil {
		return nil, fmt.Errorf("engine: cannot load asset %q: %w", p.key, err)
	}
	return ParseAsset(p.key, string(data))
}

// ParseAsset decodes rune art with an optional colour header.
func ParseAsset(key, text string) (*Asset, error) {
	asset := &Asset{Key: key}

	sc := bufio.NewScanner(strings.NewReader(text))
	var body []string
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			if header, ok := strings.CutPrefix(line, "#!"); ok {
				for _, field := range strings.Fields(header) {
					name, value, _ := strings.Cut(field, "=")
					if name == "color" {
						c, known := core.ParseColor(value)
						if !known {
							return nil, fmt.Errorf("engine: asset %q: unknown color %q", key, value)
						}
						asset.Color = c
					}
				}
				continue
			}
		}
		body = append(body, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("engine: asset %q: %w", key, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("engine: asset %q is empty", key)
	}

	asset.Sprite = core.NewSprite(strings.Join(body, "\n"))
	return asset, nil
}
