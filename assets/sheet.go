package assets

import (
	"fmt"
	"image"
	"log"

	"github.com/automoto/starpuff/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteSheet is the shared atlas sliced into equal frames
type SpriteSheet struct {
	image       *ebiten.Image
	frameWidth  int
	frameHeight int
	columns     int
	frames      map[int]*ebiten.Image
}

var sheet *SpriteSheet

// LoadSpriteSheet reads the atlas from disk. The sheet is optional: when it is
// missing, Sheet returns nil and renderers draw placeholder shapes.
func LoadSpriteSheet(path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load sprite sheet %s: %w", path, err)
	}
	sheet = newSpriteSheet(img, config.SpriteSheetColumns, config.SpriteSheetRows)
	log.Printf("Loaded sprite sheet %s (%dx%d frames)", path, sheet.frameWidth, sheet.frameHeight)
	return nil
}

func newSpriteSheet(img *ebiten.Image, columns, rows int) *SpriteSheet {
	b := img.Bounds()
	return &SpriteSheet{
		image:       img,
		frameWidth:  b.Dx() / columns,
		frameHeight: b.Dy() / rows,
		columns:     columns,
		frames:      make(map[int]*ebiten.Image),
	}
}

// Sheet returns the loaded atlas or nil
func Sheet() *SpriteSheet {
	return sheet
}

// Frame returns a cached sub-image for a sheet index
func (s *SpriteSheet) Frame(index int) *ebiten.Image {
	if img, ok := s.frames[index]; ok {
		return img
	}
	col := index % s.columns
	row := index / s.columns
	x := col * s.frameWidth
	y := row * s.frameHeight
	img := s.image.SubImage(image.Rect(x, y, x+s.frameWidth, y+s.frameHeight)).(*ebiten.Image)
	s.frames[index] = img
	return img
}
