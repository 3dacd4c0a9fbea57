// Package media inventories the embedded media parts of a presentation
// package: images, audio and video stored under ppt/media/.
package media

import (
	"bytes"
	"image"
	"path"
	"sort"
	"strings"

	// Pixel dimensions come from decoding the image header; register the
	// formats that occur in real decks.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/opc"
)

const mediaPrefix = "ppt/media/"

// Inventory lists every media part in the package, sorted by part name.
// Image parts report pixel dimensions when the header decodes; audio,
// video and undecodable images report zero dimensions.
func Inventory(pkg *opc.Package) ([]model.MediaItem, error) {
	var items []model.MediaItem
	for _, part := range pkg.Parts() {
		if !strings.HasPrefix(part, mediaPrefix) {
			continue
		}
		size, _ := pkg.PartSize(part)
		item := model.MediaItem{
			PartName: part,
			Format:   formatFor(part),
			Bytes:    size,
		}
		if isImageFormat(item.Format) {
			data, err := pkg.ReadPart(part)
			if err != nil {
				return nil, err
			}
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
				item.Width = cfg.Width
				item.Height = cfg.Height
			}
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PartName < items[j].PartName })
	return items, nil
}

// Images filters an inventory down to image items.
func Images(items []model.MediaItem) []model.MediaItem {
	var out []model.MediaItem
	for _, item := range items {
		if isImageFormat(item.Format) {
			out = append(out, item)
		}
	}
	return out
}

func formatFor(part string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(part), "."))
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}

func isImageFormat(format string) bool {
	switch format {
	case "png", "jpg", "gif", "bmp", "tiff", "tif", "webp", "emf", "wmf":
		return true
	}
	return false
}
