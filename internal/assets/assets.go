// Package assets embeds the rune-art images the runner loads at boot.
package assets

import "embed"

//go:embed art/*.txt
var files embed.FS

// Entry names an asset by key and its path inside FS.
type Entry struct {
	Key  string
	Path string
}

// Keys used by the game.
const (
	Background    = "bg"
	Ground        = "ground"
	Obstacle      = "obstacle"
	Coin          = "coin"
	StartButton   = "startBtn"
	RestartButton = "restartBtn"
	Horse1        = "horse1"
	Horse2        = "horse2"
)

// Manifest lists every asset in load order.
var Manifest = []Entry{
	{Background, "art/bg.txt"},
	{Ground, "art/ground.txt"},
	{Obstacle, "art/obstacle.txt"},
	{Coin, "art/coin.txt"},
	{StartButton, "art/startBtn.txt"},
	{RestartButton, "art/restartBtn.txt"},
	{Horse1, "art/horse1.txt"},
	{Horse2, "art/horse2.txt"},
}

// FS returns the embedded asset files.
func FS() embed.FS {
	return files
}
