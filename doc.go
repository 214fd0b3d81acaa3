/*
Package micon procedurally renders the MCP Control application icon — a gradient
"M" glyph with a soft glow on a dark rounded-square background — and exports it
as a complete macOS .appiconset (every ladder resolution plus the Contents.json
manifest).

The package provides a command line interface. To check the supported commands type:

	$ micon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/mcpcontrol/micon"
	)

	func main() {
		r := &micon.Renderer{Size: micon.DefaultSize}

		img, err := r.Render()
		if err != nil {
			fmt.Printf("Error rendering the icon: %s", err.Error())
		}
		if err := micon.Export(img, "AppIcon.appiconset"); err != nil {
			fmt.Printf("Error exporting the icon set: %s", err.Error())
		}
	}
*/
package micon
