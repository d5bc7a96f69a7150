// Package types provides type definitions for structured data used throughout the outline-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// BBox is the bounding box of a text run in page coordinates.
// Y grows downward: Y0 is the top edge, so smaller Y0 means higher on the page.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// TextRun is a contiguous span of text sharing one font and style, as reported
// by the upstream PDF content layer. Runs are immutable once loaded.
type TextRun struct {
	Text     string  `json:"text"`
	Page     int     `json:"page" validate:"gte=0"`
	FontSize float64 `json:"font_size" validate:"gt=0"`
	IsBold   bool    `json:"is_bold"`
	FontName string  `json:"font_name"`
	BBox     BBox    `json:"bbox"`
}

// RunDump is the per-document input boundary: the ordered sequence of text
// runs produced by the external PDF parser, page-ascending.
type RunDump struct {
	Runs []TextRun `json:"runs" validate:"dive"`
}

// Validate validates every run in the dump using the validator.
func (d *RunDump) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// Line is one or more text runs sharing a visual baseline. It is the atomic
// unit for heading classification.
type Line struct {
	Text     string  // concatenated run text, whitespace-normalized
	Page     int
	FontSize float64 // dominant (largest) run size on the line
	IsBold   bool    // true if any constituent run is bold
	FontName string  // font of the dominant run
	X        float64 // left edge of the first run
	Y        float64 // top edge of the line's vertical band
}
