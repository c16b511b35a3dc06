package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels/formats"
)

//go:embed data/portfolio.yaml data/tiled/*.tmx
var dataFS embed.FS

// Built-in pack directories inside the embedded filesystem.
const (
	BuiltinDir = "data"
	TiledDir   = "data/tiled"
)

// Pack sources accepted by Open.
const (
	SourceBuiltin = "builtin"
	SourceTiled   = "tiled"
)

// Loader loads level packs from a filesystem.
type Loader struct {
	FS fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root)}
}

// Builtin returns the embedded YAML portfolio pack.
func Builtin() (*Pack, error) {
	return NewLoader(dataFS).LoadPack(BuiltinDir)
}

// Tiled returns the embedded Tiled pack.
func Tiled() (*Pack, error) {
	return NewLoader(dataFS).LoadPack(TiledDir)
}

// MustBuiltin returns the embedded YAML pack and panics if it is broken.
func MustBuiltin() *Pack {
	p, err := Builtin()
	if err != nil {
		panic(err)
	}
	return p
}

// Open resolves a pack from a custom directory or a built-in source name.
// A non-empty dir wins over source.
func Open(dir, source string) (*Pack, error) {
	if dir != "" {
		return NewDirLoader(dir).LoadPack(".")
	}
	switch source {
	case "", SourceBuiltin:
		return Builtin()
	case SourceTiled:
		return Tiled()
	default:
		return nil, fmt.Errorf("levels: unknown pack %q (want %s or %s)", source, SourceBuiltin, SourceTiled)
	}
}

// LoadPack loads every level file directly inside dir and returns a
// validated pack. Files load in name order; if every level has a number they
// are ordered by it. Levels are renumbered from 1.
func (l *Loader) LoadPack(dir string) (*Pack, error) {
	entries, err := fs.ReadDir(l.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", dir, err)
	}

	pack := &Pack{Name: path.Base(dir)}
	if pack.Name == "." {
		pack.Name = "custom"
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(e.Name()))) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		packName, parsed, err := l.parseFile(path.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if packName != "" {
			pack.Name = packName
		}
		for _, pl := range parsed {
			lvl, err := convert(pl)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			pack.Levels = append(pack.Levels, lvl)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("levels: loading %s: %w", dir, errors.Join(errs...))
	}
	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPack, dir)
	}

	if err := renumber(pack); err != nil {
		return nil, err
	}
	if err := Validate(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

// parseFile routes to the correct parser by extension.
func (l *Loader) parseFile(p string) (string, []formats.Level, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		data, err := fs.ReadFile(l.FS, p)
		if err != nil {
			return "", nil, fmt.Errorf("reading file %s: %w", p, err)
		}
		name, lvls, err := formats.ParseYAML(data)
		if err != nil {
			return "", nil, fmt.Errorf("parsing file %s: %w", p, err)
		}
		return name, lvls, nil
	case ".tmx":
		lvl, err := formats.ParseTMX(l.FS, p)
		if err != nil {
			return "", nil, fmt.Errorf("parsing file %s: %w", p, err)
		}
		return "", []formats.Level{lvl}, nil
	default:
		return "", nil, fmt.Errorf("unsupported extension: %s", path.Ext(p))
	}
}

// renumber orders levels by number when every level has one, then assigns
// positions. Otherwise file order is kept.
func renumber(p *Pack) error {
	numbered := true
	for _, l := range p.Levels {
		if l.Number == 0 {
			numbered = false
			break
		}
	}
	if numbered {
		sort.SliceStable(p.Levels, func(i, j int) bool {
			return p.Levels[i].Number < p.Levels[j].Number
		})
	}

	seen := make(map[int]string, len(p.Levels))
	for i := range p.Levels {
		n := p.Levels[i].Number
		if n != 0 {
			if other, dup := seen[n]; dup {
				return fmt.Errorf("levels: %q and %q both claim number %d", other, p.Levels[i].Name, n)
			}
			seen[n] = p.Levels[i].Name
		}
		p.Levels[i].Number = i + 1
	}
	return nil
}

// convert turns a parsed level into a Level, resolving kinds and default points.
func convert(fl formats.Level) (Level, error) {
	lvl := Level{
		Number:      fl.Number,
		Name:        fl.Name,
		Description: fl.Description,
	}

	for _, p := range fl.Platforms {
		kind, err := ParsePlatformKind(p.Kind)
		if err != nil {
			return Level{}, fmt.Errorf("level %q: %w", fl.Name, err)
		}
		c := p.Color
		if c == "" {
			c = DefaultPlatformColor
		}
		lvl.Platforms = append(lvl.Platforms, PlatformSpec{X: p.X, Y: p.Y, W: p.W, H: p.H, Color: c, Kind: kind})
	}

	for _, c := range fl.Collectibles {
		kind, err := ParseCollectibleKind(c.Kind)
		if err != nil {
			return Level{}, fmt.Errorf("level %q: collectible %q: %w", fl.Name, c.Name, err)
		}
		spec := CollectibleSpec{X: c.X, Y: c.Y, Kind: kind, Points: c.Points, Icon: c.Icon, Name: c.Name}
		spec.Points = spec.Value()
		lvl.Collectibles = append(lvl.Collectibles, spec)
	}

	return lvl, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
