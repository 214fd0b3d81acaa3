package micon

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// MasterName is the filename of the unscaled master image.
	MasterName = "AppIcon.png"
	// ManifestName is the filename of the icon-set manifest.
	ManifestName = "Contents.json"
	// macIdiom is the target device class of every ladder entry.
	macIdiom = "mac"
)

// IconRendition describes one entry of the macOS resolution ladder.
type IconRendition struct {
	// Size is the rendition dimension in pixels.
	Size int
	// Filename of the persisted rendition.
	Filename string
	// Scale is the display density factor, 1x or 2x.
	Scale string
	// Nominal is the logical point size, e.g. "16x16".
	Nominal string
}

// Ladder returns the fixed macOS app-icon resolution ladder.
// The manifest entries are derived from the same table, which keeps
// the emitter and the manifest writer in lockstep.
func Ladder() []IconRendition {
	return []IconRendition{
		{Size: 16, Filename: "icon_16x16.png", Scale: "1x", Nominal: "16x16"},
		{Size: 32, Filename: "icon_16x16@2x.png", Scale: "2x", Nominal: "16x16"},
		{Size: 32, Filename: "icon_32x32.png", Scale: "1x", Nominal: "32x32"},
		{Size: 64, Filename: "icon_32x32@2x.png", Scale: "2x", Nominal: "32x32"},
		{Size: 128, Filename: "icon_128x128.png", Scale: "1x", Nominal: "128x128"},
		{Size: 256, Filename: "icon_128x128@2x.png", Scale: "2x", Nominal: "128x128"},
		{Size: 256, Filename: "icon_256x256.png", Scale: "1x", Nominal: "256x256"},
		{Size: 512, Filename: "icon_256x256@2x.png", Scale: "2x", Nominal: "256x256"},
		{Size: 512, Filename: "icon_512x512.png", Scale: "1x", Nominal: "512x512"},
		{Size: 1024, Filename: "icon_512x512@2x.png", Scale: "2x", Nominal: "512x512"},
	}
}

// Export downsamples the master image into every ladder rendition and
// persists them into the destination directory together with the unscaled
// master and the Contents.json manifest. The directory is created when
// missing; filesystem errors are propagated, not recovered.
func Export(master *image.NRGBA, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create the output directory: %v", err)
	}

	for _, entry := range Ladder() {
		res := imaging.Resize(master, entry.Size, entry.Size, imaging.Lanczos)
		if err := imaging.Save(res, filepath.Join(dir, entry.Filename)); err != nil {
			return fmt.Errorf("could not save %s: %v", entry.Filename, err)
		}
	}

	if err := imaging.Save(master, filepath.Join(dir, MasterName)); err != nil {
		return fmt.Errorf("could not save the master image: %v", err)
	}

	return WriteManifest(dir)
}

type manifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type manifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type manifest struct {
	Images []manifestImage `json:"images"`
	Info   manifestInfo    `json:"info"`
}

// WriteManifest emits the Contents.json manifest enumerating every ladder
// rendition in order, one-to-one with the files written by Export.
func WriteManifest(dir string) error {
	m := manifest{
		Info: manifestInfo{Author: "xcode", Version: 1},
	}
	for _, entry := range Ladder() {
		m.Images = append(m.Images, manifestImage{
			Filename: entry.Filename,
			Idiom:    macIdiom,
			Scale:    entry.Scale,
			Size:     entry.Nominal,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestName), data, 0644)
}
