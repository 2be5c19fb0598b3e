// Package assets resolves category illustration images.
package assets

import (
	"os"
	"path/filepath"
)

// DefaultName is the fallback illustration, used when a category has no
// image of its own or its file is missing.
const DefaultName = "default"

// filenames maps illustration keys to image files under the assets dir.
var filenames = map[string]string{
	"food":      "food.png",
	"shopping":  "shopping.png",
	"travel":    "travel.png",
	"bills":     "bills.png",
	DefaultName: "default.png",
}

// Resolve returns the path of the illustration for key inside dir,
// falling back to the default image when the key is unknown or the
// specific file does not exist.
func Resolve(dir, key string) string {
	fname, ok := filenames[key]
	if !ok {
		fname = filenames[DefaultName]
	}

	path := filepath.Join(dir, fname)
	if _, err := os.Stat(path); err != nil {
		return filepath.Join(dir, filenames[DefaultName])
	}
	return path
}
