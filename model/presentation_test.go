package model

import "testing"

func TestNewSlideSize(t *testing.T) {
	// Standard 16:9 deck: 12192000 x 6858000 EMU.
	s := NewSlideSize(12192000, 6858000)

	if s.WidthInches != 13.33 {
		t.Errorf("width inches: got %v, want 13.33", s.WidthInches)
	}
	if s.HeightInches != 7.5 {
		t.Errorf("height inches: got %v, want 7.5", s.HeightInches)
	}
	if s.WidthCM != 33.87 {
		t.Errorf("width cm: got %v, want 33.87", s.WidthCM)
	}
	if s.WidthPoints != 960.0 {
		t.Errorf("width points: got %v, want 960.0", s.WidthPoints)
	}
	if s.HeightPoints != 540.0 {
		t.Errorf("height points: got %v, want 540.0", s.HeightPoints)
	}
	if s.AspectRatio != 1.78 {
		t.Errorf("aspect ratio: got %v, want 1.78", s.AspectRatio)
	}
}

func TestNewSlideSizeZeroHeight(t *testing.T) {
	s := NewSlideSize(914400, 0)
	if s.AspectRatio != 0 {
		t.Errorf("aspect ratio with zero height: got %v, want 0", s.AspectRatio)
	}
}

func TestDeckSlideAccess(t *testing.T) {
	deck := NewDeck()
	deck.AddSlide(&SlideDocument{Title: "First"})
	deck.AddSlide(&SlideDocument{Title: "Second"})

	if deck.SlideCount() != 2 {
		t.Fatalf("expected 2 slides, got %d", deck.SlideCount())
	}
	if deck.Slide(1).Title != "First" || deck.Slide(2).Title != "Second" {
		t.Error("slides not returned in order")
	}
	if deck.Slide(1).SlideNumber != 1 || deck.Slide(2).SlideNumber != 2 {
		t.Error("slide numbers not assigned on AddSlide")
	}
	if deck.Slide(0) != nil || deck.Slide(3) != nil {
		t.Error("out-of-range Slide should return nil")
	}
}

func TestDeckExtractText(t *testing.T) {
	deck := NewDeck()
	deck.AddSlide(&SlideDocument{
		TextElements: []TextElement{{Text: "Hello"}, {Text: "World"}},
	})
	deck.AddSlide(&SlideDocument{
		TextElements: []TextElement{{Text: "Again"}},
	})

	got := deck.ExtractText()
	want := "Hello\nWorld\n\nAgain"
	if got != want {
		t.Errorf("text mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestObjectCountsTotal(t *testing.T) {
	c := ObjectCounts{Shapes: 2, Images: 1, Tables: 1, Groups: 1}
	if c.Total() != 5 {
		t.Errorf("total: got %d, want 5", c.Total())
	}
}
