package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/mcpcontrol/micon"
	"github.com/mcpcontrol/micon/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┬┌─┐┌─┐┌┐┌
│││││  │ ││││
┴ ┴┴└─┘└─┘┘└┘

Procedural macOS app icon generator.
    Version: %s

`

// pipeName is the output name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", "AppIcon.appiconset", "Destination directory, '-' writes the master PNG to stdout")
	masterSize  = flag.Int("size", micon.DefaultSize, "Master icon dimension in pixels")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	r := &micon.Renderer{
		Size: *masterSize,
	}

	now := time.Now()
	img, err := r.Render()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to render the icon: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	// Check if the destination is a pipe name or a regular directory.
	if *destination == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatal(utils.DecorateText("`-` should be used with a pipe for stdout", utils.ErrorMessage))
		}
		if err := png.Encode(os.Stdout, img); err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to encode the master image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		return
	}

	if err := micon.Export(img, *destination); err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to export the icon set: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	for _, entry := range micon.Ladder() {
		fmt.Fprintf(os.Stderr, "Created %s (%dx%d)\n",
			utils.DecorateText(entry.Filename, utils.SuccessMessage), entry.Size, entry.Size)
	}
	fmt.Fprintf(os.Stderr, "Created %s (%dx%d)\n",
		utils.DecorateText(micon.MasterName, utils.SuccessMessage), r.Size, r.Size)
	fmt.Fprintf(os.Stderr, "Created %s\n",
		utils.DecorateText(micon.ManifestName, utils.SuccessMessage))

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}
