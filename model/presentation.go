package model

import (
	"fmt"
	"math"
	"time"
)

// Unit conversion constants for EMUs.
const (
	EMUPerInch    = 914400
	CMPerInch     = 2.54
	PointsPerInch = 72
)

// PresentationMetadata describes the presentation part: slide ordering,
// slide size, and master presence.
type PresentationMetadata struct {
	SlideCount       int        `json:"slide_count"`
	SlideSize        *SlideSize `json:"slide_size,omitempty"`
	SlideMasterIDs   []string   `json:"slide_master_ids"`
	SlideIDs         []SlideRef `json:"slide_ids"`
	HasNotesMaster   bool       `json:"has_notes_master"`
	HasHandoutMaster bool       `json:"has_handout_master"`
}

// SlideRef pairs a slide's numeric id with its relationship id, in
// presentation order.
type SlideRef struct {
	ID             string `json:"id"`
	RelationshipID string `json:"r_id"`
}

// SlideSize reports slide dimensions in EMUs plus derived conversions.
// Inches, centimeters and the aspect ratio are rounded to 2 decimal
// places; points to 1.
type SlideSize struct {
	Width        int64   `json:"width"`
	Height       int64   `json:"height"`
	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`
	WidthCM      float64 `json:"width_cm"`
	HeightCM     float64 `json:"height_cm"`
	WidthPoints  float64 `json:"width_points"`
	HeightPoints float64 `json:"height_points"`
	AspectRatio  float64 `json:"aspect_ratio"`
}

// NewSlideSize builds a SlideSize from EMU dimensions, computing all
// derived conversions.
func NewSlideSize(width, height int64) *SlideSize {
	wIn := float64(width) / EMUPerInch
	hIn := float64(height) / EMUPerInch
	s := &SlideSize{
		Width:        width,
		Height:       height,
		WidthInches:  round2(wIn),
		HeightInches: round2(hIn),
		WidthCM:      round2(wIn * CMPerInch),
		HeightCM:     round2(hIn * CMPerInch),
		WidthPoints:  round1(wIn * PointsPerInch),
		HeightPoints: round1(hIn * PointsPerInch),
	}
	if height != 0 {
		s.AspectRatio = round2(float64(width) / float64(height))
	}
	return s
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Section is a presentation-level grouping of slides. Slide membership is
// derived separately and not stored on the Section itself.
type Section struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// DocumentProperties holds package-level metadata from the core and
// extended (app) property parts.
type DocumentProperties struct {
	Title          string    `json:"title,omitempty"`
	Subject        string    `json:"subject,omitempty"`
	Creator        string    `json:"creator,omitempty"`
	Keywords       string    `json:"keywords,omitempty"`
	Description    string    `json:"description,omitempty"`
	LastModifiedBy string    `json:"last_modified_by,omitempty"`
	Revision       string    `json:"revision,omitempty"`
	Created        time.Time `json:"created,omitempty"`
	Modified       time.Time `json:"modified,omitempty"`
	Application    string    `json:"application,omitempty"`
	Company        string    `json:"company,omitempty"`
}

// MediaItem describes one media part in the package. Width and Height are
// pixel dimensions when the image format could be decoded, zero otherwise.
type MediaItem struct {
	PartName string `json:"part_name"`
	Format   string `json:"format,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Bytes    int64  `json:"bytes"`
}

// LayoutInfo describes a slide layout part: its display name and the
// placeholder roles it defines.
type LayoutInfo struct {
	PartName     string        `json:"part_name"`
	Name         string        `json:"name,omitempty"`
	Placeholders []Placeholder `json:"placeholders"`
}

func (s *SlideSize) String() string {
	return fmt.Sprintf("%dx%d EMU (%.2f\" x %.2f\", %.2f:1)",
		s.Width, s.Height, s.WidthInches, s.HeightInches, s.AspectRatio)
}
