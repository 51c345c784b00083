package entities

import "image/color"

// ThemeKind is the closed set of character looks
type ThemeKind int

const (
	// ThemePlain is a bare figure
	ThemePlain ThemeKind = iota
	// ThemeHat draws a coloured hat
	ThemeHat
	// ThemeEmoji draws an emoji accessory above the head
	ThemeEmoji
	// ThemeOutline draws a coloured suit outline
	ThemeOutline
)

// Theme describes how a character is drawn.
// Primary is used by ThemeHat and ThemeOutline, Accessory by ThemeEmoji.
type Theme struct {
	Kind      ThemeKind
	Skin      color.RGBA
	Shirt     color.RGBA
	Pants     color.RGBA
	Primary   color.RGBA
	Accessory string
}

var (
	defaultShirt = Hex(0x3b82f6)
	defaultPants = Hex(0x243447)
)

// WithClothes returns a copy of the theme wearing the given colours
func (t Theme) WithClothes(shirt, pants uint32) Theme {
	t.Shirt = Hex(shirt)
	t.Pants = Hex(pants)
	return t
}

// Hex converts 0xRRGGBB to an opaque colour
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// HatTheme is a figure wearing a coloured hat
func HatTheme(skin, hat uint32) Theme {
	return Theme{Kind: ThemeHat, Skin: Hex(skin), Shirt: defaultShirt, Pants: defaultPants, Primary: Hex(hat)}
}

// EmojiTheme is a figure with an emoji accessory
func EmojiTheme(skin uint32, emoji string) Theme {
	return Theme{Kind: ThemeEmoji, Skin: Hex(skin), Shirt: defaultShirt, Pants: defaultPants, Accessory: emoji}
}

// OutlineTheme is a figure in an outlined suit
func OutlineTheme(skin, outline uint32) Theme {
	return Theme{Kind: ThemeOutline, Skin: Hex(skin), Shirt: defaultShirt, Pants: defaultPants, Primary: Hex(outline)}
}

// PlayerTheme is the default look for the player
func PlayerTheme() Theme {
	return HatTheme(0xffe0bd, 0x111827).WithClothes(0x2563eb, 0x1f2937)
}

// HasAccessory reports whether the theme draws something above the head
func (t Theme) HasAccessory() bool {
	return t.Kind == ThemeHat || (t.Kind == ThemeEmoji && t.Accessory != "")
}
