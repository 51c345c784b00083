package ebiten

import (
	"image/color"

	engine "moneymoves/pkg/engine/world"
)

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorPlayerRing      = color.RGBA{0, 255, 0, 255}     // Bright green
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorCorrect         = color.RGBA{100, 255, 150, 255}
	colorHeading         = color.RGBA{120, 220, 255, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 230}  // Semi-transparent dark
	colorPanelBorder     = color.RGBA{110, 90, 200, 255}
	colorLabelBackground = color.RGBA{15, 15, 26, 190}
	colorLabelText       = color.RGBA{245, 245, 255, 255}
	colorHintBackground  = color.RGBA{255, 244, 200, 245}
	colorHintText        = color.RGBA{40, 30, 10, 255}
	colorFocus           = color.RGBA{255, 220, 100, 255} // door and NPC highlight

	// Callout colors
	ColorCalloutSuccess = color.RGBA{100, 255, 150, 255}
	ColorCalloutDanger  = color.RGBA{255, 120, 120, 255}
)

// tileColors is the base fill and the detail color for each tile kind
var tileColors = map[engine.TileKind][2]color.RGBA{
	engine.Grass: {{74, 140, 72, 255}, {96, 168, 88, 255}},
	engine.Path:  {{196, 170, 120, 255}, {176, 150, 104, 255}},
	engine.Floor: {{206, 200, 188, 255}, {186, 180, 168, 255}},
	engine.Wood:  {{150, 104, 62, 255}, {120, 80, 46, 255}},
	engine.Door:  {{110, 70, 40, 255}, {230, 190, 80, 255}},
	engine.Wall:  {{90, 92, 110, 255}, {66, 68, 84, 255}},
}

// Tile size constraints, in screen pixels
const (
	minTileSize  = 12
	maxTileSize  = 144
	tileSizeStep = 4
	baseFontSize = 16.0
)

// Screen layout
const (
	hudHeight     = 64
	footerHeight  = 28
	panelMargin   = 24
	panelPadding  = 16
	panelMaxWidth = 820
)

// labelFontSize is in world pixels, so labels scale with zoom
const labelFontSize = 14.0

// gamepad stick threshold
const deadZone = 0.5
