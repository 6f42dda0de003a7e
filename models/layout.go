package models

// Width is the horizontal extent of a section.
type Width string

const (
	WidthNarrow Width = "narrow"
	WidthMedium Width = "medium"
	WidthWide   Width = "wide"
	WidthFull   Width = "full"
)

// Columns is the column arrangement of a section.
type Columns string

const (
	Columns1               Columns = "1-column"
	Columns2               Columns = "2-column"
	Columns3               Columns = "3-column"
	ColumnsAsymmetricLeft  Columns = "asymmetric-left"
	ColumnsAsymmetricRight Columns = "asymmetric-right"
)

// ImagePosition is where the layout reserves room for an image.
type ImagePosition string

const (
	ImageNone       ImagePosition = "none"
	ImageAbove      ImagePosition = "above"
	ImageBelow      ImagePosition = "below"
	ImageLeft       ImagePosition = "left"
	ImageRight      ImagePosition = "right"
	ImageInline     ImagePosition = "inline"
	ImageBackground ImagePosition = "background"
)

// Spacing is vertical rhythm around a section.
type Spacing string

const (
	SpacingTight    Spacing = "tight"
	SpacingNormal   Spacing = "normal"
	SpacingGenerous Spacing = "generous"
	SpacingDramatic Spacing = "dramatic"
)

// Break is a page/flow break hint.
type Break string

const (
	BreakNone Break = "none"
	BreakSoft Break = "soft"
	BreakHard Break = "hard"
)

// TextAlign is the section's text alignment.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
)

// LayoutParameters are the structural decisions for one section.
type LayoutParameters struct {
	Width         Width         `json:"width" yaml:"width"`
	Columns       Columns       `json:"columns" yaml:"columns"`
	ImagePosition ImagePosition `json:"image_position" yaml:"image_position"`
	SpacingBefore Spacing       `json:"spacing_before" yaml:"spacing_before"`
	SpacingAfter  Spacing       `json:"spacing_after" yaml:"spacing_after"`
	BreakBefore   Break         `json:"break_before" yaml:"break_before"`
	BreakAfter    Break         `json:"break_after" yaml:"break_after"`
	AlignText     TextAlign     `json:"align_text" yaml:"align_text"`
}
