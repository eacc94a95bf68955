package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path"

	"github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/shared/leveldata"
	"github.com/automoto/chargebots/shared/sprites"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LayoutNone disables the spawn layout map.
const LayoutNone = "none"

// PlayerKey is the color keyed out of the player sprite.
var PlayerKey = color.RGBA{255, 255, 255, 255}

type spriteKey struct {
	path string
	w, h int
}

// SpriteLoader decodes each image once per requested size and hands out the
// cached *ebiten.Image afterwards.
type SpriteLoader struct {
	cache  map[spriteKey]*ebiten.Image
	byName map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache:  make(map[spriteKey]*ebiten.Image),
		byName: make(map[string]*ebiten.Image),
	}
}

var loader = NewSpriteLoader()

func decode(p string) (image.Image, error) {
	data, err := imageFS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}
	return img, nil
}

// Load returns the image at p scaled to w×h. A non-nil key color is made
// transparent before scaling.
func (l *SpriteLoader) Load(p string, w, h int, key color.Color) (*ebiten.Image, error) {
	k := spriteKey{path: p, w: w, h: h}
	if img, ok := l.cache[k]; ok {
		return img, nil
	}

	src, err := decode(p)
	if err != nil {
		return nil, err
	}
	if key != nil {
		src = sprites.ChromaKey(src, key)
	}
	img := ebiten.NewImageFromImage(sprites.Scale(src, w, h))
	l.cache[k] = img
	return img, nil
}

// MustLoad is Load that panics. Sprite files are embedded, so a failure here
// means the build is broken.
func (l *SpriteLoader) MustLoad(name, p string, w, h int, key color.Color) *ebiten.Image {
	img, err := l.Load(p, w, h, key)
	if err != nil {
		panic(fmt.Sprintf("Failed to load sprite %s: %v", name, err))
	}
	l.byName[name] = img
	return img
}

// Image returns a sprite registered by MustLoadSprites, or nil.
func (l *SpriteLoader) Image(name string) *ebiten.Image {
	return l.byName[name]
}

// BarKey is the sprite name of a charge bar level.
func BarKey(prefix string, level int) string {
	return fmt.Sprintf("%s%02d.png", prefix, level)
}

// MustLoadSprites registers every sprite the configuration refers to, scaled
// to the configured sizes.
func MustLoadSprites(c *config.Config) {
	p := c.Player
	loader.MustLoad(p.Sprite, path.Join("images", p.Sprite), p.Width, p.Height, PlayerKey)

	for k := config.RobotKind(0); k < config.RobotKindCount; k++ {
		rc := c.Robots.Kind(k)
		loader.MustLoad(rc.Sprite, path.Join("images", rc.Sprite), rc.Width, rc.Height, nil)
	}

	cb := c.ChargeBar
	for level := 0; level < cb.Levels; level++ {
		name := BarKey(cb.SpritePrefix, level)
		loader.MustLoad(name, path.Join("images", "bars", name), cb.Width, cb.Height, nil)
	}
}

// Image returns a sprite loaded by MustLoadSprites.
func Image(name string) *ebiten.Image {
	return loader.Image(name)
}

// LoadLayout reads an embedded spawn layout. An empty path or "none" returns
// a nil layout.
func LoadLayout(p string) (*leveldata.Layout, error) {
	if p == "" || p == LayoutNone {
		return nil, nil
	}
	return leveldata.LoadLayout(assetFS, p)
}
