package formats

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from Tiled maps.
const (
	GroupMeta         = "meta"
	GroupPlatforms    = "platforms"
	GroupCollectibles = "collectibles"
)

// ParseTMX parses a Tiled map holding one level.
//
// The "meta" group holds one object whose name is the level name, with
// properties "level" (number) and "description". The "platforms" group holds
// rectangles with an optional "color" property. The "collectibles" group holds
// point objects named by their display name, with optional "points" and
// "icon" properties. In both groups the object class is the kind.
func ParseTMX(fsys fs.FS, path string) (Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", path, err)
	}

	var lvl Level
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupMeta:
			for _, o := range og.Objects {
				lvl.Name = o.Name
				lvl.Number = o.Properties.GetInt("level")
				lvl.Description = o.Properties.GetString("description")
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				lvl.Platforms = append(lvl.Platforms, Platform{
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Color: o.Properties.GetString("color"),
					Kind:  objectClass(o),
				})
			}
		case GroupCollectibles:
			for _, o := range og.Objects {
				lvl.Collectibles = append(lvl.Collectibles, Collectible{
					X:      o.X,
					Y:      o.Y,
					Kind:   objectClass(o),
					Points: o.Properties.GetInt("points"),
					Icon:   o.Properties.GetString("icon"),
					Name:   o.Name,
				})
			}
		}
	}

	return lvl, nil
}

// objectClass returns the Tiled class, falling back to the legacy type attribute.
func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}
