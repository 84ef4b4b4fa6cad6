// Package display renders the contents of video memory. The core has
// no PPU, so instead of a screen the display draws the tile data found
// in VRAM as a sheet, sampled at frame boundaries.
package display

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// TileCount is the number of tiles held in the tile data area.
	TileCount = 384
	// SheetColumns is the number of tiles per row of the sheet.
	SheetColumns = 16
	// SheetWidth and SheetHeight are the size of the sheet in pixels.
	SheetWidth  = SheetColumns * 8
	SheetHeight = TileCount / SheetColumns * 8

	tileSize = 16
)

// Palette represents a palette. A palette is an array of 4 RGB values,
// indexed by colour number.
type Palette [4][3]uint8

var (
	// Greyscale is the default greyscale palette.
	Greyscale = Palette{
		{0xFF, 0xFF, 0xFF},
		{0xCC, 0xCC, 0xCC},
		{0x77, 0x77, 0x77},
		{0x00, 0x00, 0x00},
	}
	// Green emulates the colours of the DMG LCD.
	Green = Palette{
		{0x9B, 0xBC, 0x0F},
		{0x8B, 0xAC, 0x0F},
		{0x30, 0x62, 0x30},
		{0x0F, 0x38, 0x0F},
	}
)

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades.
type Tile [8][8]uint8

// NewTile decodes a tile from its 16 bytes of 2bpp data. Each row is
// two bytes, the first holding the low bit of every pixel and the
// second the high bit.
func NewTile(b []uint8) Tile {
	t := Tile{}
	for tileY := 0; tileY < 8; tileY++ {
		lo, hi := b[tileY*2], b[tileY*2+1]
		for tileX := 0; tileX < 8; tileX++ {
			t[tileY][tileX] = (lo>>(7-tileX))&1 | ((hi>>(7-tileX))&1)<<1
		}
	}

	return t
}

// Draw draws the tile to img with its top left corner at x, y.
func (t Tile) Draw(img *image.RGBA, x, y int, pal Palette) {
	for tileY := 0; tileY < 8; tileY++ {
		for tileX := 0; tileX < 8; tileX++ {
			rgb := pal[t[tileY][tileX]&0x3]
			img.SetRGBA(x+tileX, y+tileY, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF})
		}
	}
}

// TileSheet draws every tile in vram to a SheetWidth x SheetHeight image.
func TileSheet(vram mmu.Window, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))
	data := make([]uint8, TileCount*tileSize)
	vram.CopyTo(data)

	for i := 0; i < TileCount; i++ {
		tile := NewTile(data[i*tileSize : (i+1)*tileSize])
		tile.Draw(img, i%SheetColumns*8, i/SheetColumns*8, pal)
	}
	return img
}

// Scale returns img scaled by factor, keeping hard pixel edges.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the tile sheet of vram, scaled by factor, as a PNG.
func WritePNG(w io.Writer, vram mmu.Window, pal Palette, factor int) error {
	return png.Encode(w, Scale(TileSheet(vram, pal), factor))
}

// TileAddress returns the address of the tile with the given index in
// the tile data area.
func TileAddress(index int) uint16 {
	return types.VRAMStart + uint16(index*tileSize)
}
