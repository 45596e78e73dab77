package schema

import "github.com/opencode-ai/palette/internal/color"

// Identifiers for every themeable UI element, in schema order.
const (
	AppBackground             ID = "app-background"
	SurfaceBackground         ID = "surface-background"
	ElevatedSurfaceBackground ID = "elevated-surface-background"
	Border                    ID = "border"
	BorderVariant             ID = "border-variant"
	BorderFocused             ID = "border-focused"
	BorderTransparent         ID = "border-transparent"
	ElementBackground         ID = "element-background"
	ElementHover              ID = "element-hover"
	ElementActive             ID = "element-active"
	ElementSelected           ID = "element-selected"
	ElementDisabled           ID = "element-disabled"
	FilledElementBackground   ID = "filled-element-background"
	FilledElementHover        ID = "filled-element-hover"
	FilledElementActive       ID = "filled-element-active"
	GhostElementHover         ID = "ghost-element-hover"
	Text                      ID = "text"
	TextMuted                 ID = "text-muted"
	TextPlaceholder           ID = "text-placeholder"
	TextAccent                ID = "text-accent"
	Icon                      ID = "icon"
	IconMuted                 ID = "icon-muted"
	StatusError               ID = "status-error"
	StatusErrorBackground     ID = "status-error-background"
	StatusSuccess             ID = "status-success"
	StatusSuccessBackground   ID = "status-success-background"
	StatusWarning             ID = "status-warning"
	StatusWarningBackground   ID = "status-warning-background"
	StatusInfo                ID = "status-info"
	ScrollbarThumb            ID = "scrollbar-thumb"
	ScrollbarTrack            ID = "scrollbar-track"
	Brand                     ID = "brand"
)

// table is the single declarative source of themeable elements. Order here is
// schema order: listings, resolution output, and serialized documents all
// follow it.
var table = build(
	entry(AppBackground, "App Background",
		scale("gray", color.Solid, 1),
		"Topmost window background behind all panes."),
	entry(SurfaceBackground, "Surface Background",
		scale("gray", color.Solid, 2),
		"Background of panes, panels, and sheets."),
	entry(ElevatedSurfaceBackground, "Elevated Surface Background",
		scale("gray", color.Solid, 3),
		"Background of popovers, tooltips, and other floating surfaces."),
	entry(Border, "Border",
		scale("gray", color.Solid, 5),
		"Default border for panes and separators."),
	entry(BorderVariant, "Border Variant",
		scale("gray", color.Solid, 4),
		"Softer border used inside grouped controls."),
	entry(BorderFocused, "Border Focused",
		scale("blue", color.Solid, 7),
		"Border of the element holding keyboard focus."),
	entry(BorderTransparent, "Border Transparent",
		scale("gray", color.Transparent, 3),
		"Hairline border drawn over arbitrary content."),
	entry(ElementBackground, "Element Background",
		scale("gray", color.Solid, 3),
		"Resting background of interactive elements."),
	entry(ElementHover, "Element Hover",
		scale("gray", color.Transparent, 4),
		"Hover wash over interactive elements."),
	entry(ElementActive, "Element Active",
		scale("gray", color.Transparent, 5),
		"Pressed-state wash over interactive elements."),
	entry(ElementSelected, "Element Selected",
		scale("blue", color.Transparent, 4),
		"Background of the selected item in lists and menus."),
	entry(ElementDisabled, "Element Disabled",
		scale("gray", color.Transparent, 2),
		"Background of disabled interactive elements."),
	entry(FilledElementBackground, "Filled Element Background",
		scale("gray", color.Solid, 4),
		"Used for the background of filled elements, like buttons and checkboxes."),
	entry(FilledElementHover, "Filled Element Hover",
		scale("gray", color.Solid, 5),
		"Hover state of filled elements."),
	entry(FilledElementActive, "Filled Element Active",
		scale("gray", color.Solid, 6),
		"Pressed state of filled elements."),
	entry(GhostElementHover, "Ghost Element Hover",
		scale("gray", color.Transparent, 3),
		"Hover wash over borderless ghost elements."),
	entry(Text, "Text",
		scale("gray", color.Solid, 11),
		"Primary foreground text."),
	entry(TextMuted, "Text Muted",
		scale("gray", color.Solid, 9),
		"Secondary text such as captions and help lines."),
	entry(TextPlaceholder, "Text Placeholder",
		scale("gray", color.Solid, 7),
		"Placeholder text in empty inputs."),
	entry(TextAccent, "Text Accent",
		scale("blue", color.Solid, 9),
		"Links and other emphasized text."),
	entry(Icon, "Icon",
		scale("gray", color.Solid, 10),
		"Primary icon foreground."),
	entry(IconMuted, "Icon Muted",
		scale("gray", color.Solid, 8),
		"Secondary icon foreground."),
	entry(StatusError, "Status Error",
		scale("red", color.Solid, 9),
		"Foreground of error text and icons."),
	entry(StatusErrorBackground, "Status Error Background",
		scale("red", color.Transparent, 2),
		"Background tint behind error content."),
	entry(StatusSuccess, "Status Success",
		scale("green", color.Solid, 9),
		"Foreground of success text and icons."),
	entry(StatusSuccessBackground, "Status Success Background",
		scale("green", color.Transparent, 2),
		"Background tint behind success content."),
	entry(StatusWarning, "Status Warning",
		scale("yellow", color.Solid, 10),
		"Foreground of warning text and icons."),
	entry(StatusWarningBackground, "Status Warning Background",
		scale("yellow", color.Transparent, 2),
		"Background tint behind warning content."),
	entry(StatusInfo, "Status Info",
		scale("blue", color.Solid, 9),
		"Foreground of informational text and icons."),
	entry(ScrollbarThumb, "Scrollbar Thumb",
		scale("gray", color.Transparent, 5),
		"Draggable scrollbar thumb."),
	entry(ScrollbarTrack, "Scrollbar Track",
		scale("gray", color.Transparent, 1),
		"Scrollbar track behind the thumb."),
	entry(Brand, "Brand",
		static(0.72, 0.6, 0.55, 1),
		"Fixed brand mark color; never varies with the active ramp."),
)
