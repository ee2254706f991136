package engine

// TileSprite is a tiled layer whose texture is scrolled horizontally by
// advancing a position accumulator.
type TileSprite struct {
	Key       string
	PositionX float64 // texture offset in world units
}

// NewTileSprite creates a layer showing the given asset.
func NewTileSprite(key string) *TileSprite {
	return &TileSprite{Key: key}
}

// Scroll advances the texture offset.
func (t *TileSprite) Scroll(dx float64) {
	t.PositionX += dx
}
