package ooxml

import (
	"errors"
	"strings"
	"testing"
)

const slideDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld>
    <p:spTree>
      <p:sp>
        <p:txBody>
          <a:p><a:r><a:t>Hello</a:t></a:r></a:p>
          <a:p><a:r><a:t>World</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>
      <p:sp>
        <p:txBody>
          <a:p><a:r><a:t>Second shape</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>
    </p:spTree>
  </p:cSld>
</p:sld>`

func TestParseAndFind(t *testing.T) {
	r := NewReader()
	root, err := r.Parse([]byte(slideDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tree := r.FindFirst(root, "p:cSld/p:spTree")
	if tree == nil {
		t.Fatal("expected to find p:cSld/p:spTree")
	}

	shapes := r.FindAll(tree, "p:sp")
	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(shapes))
	}

	texts := r.FindAll(shapes[0], "//a:t")
	if len(texts) != 2 {
		t.Fatalf("expected 2 text nodes in first shape, got %d", len(texts))
	}
	if texts[0].TrimmedText() != "Hello" || texts[1].TrimmedText() != "World" {
		t.Errorf("unexpected texts: %q, %q", texts[0].Text, texts[1].Text)
	}

	if got := r.FindFirst(root, "//a:t"); got == nil || got.TrimmedText() != "Hello" {
		t.Error("deep FindFirst should return the first a:t in document order")
	}
	if r.FindFirst(root, "p:cSld/p:missing") != nil {
		t.Error("FindFirst on absent path should return nil")
	}
}

func TestParseMalformed(t *testing.T) {
	r := NewReader()
	for _, bad := range []string{"", "<a><b></a>", "not xml at all", "<a/><b/>"} {
		if _, err := r.Parse([]byte(bad)); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Parse(%q): expected ErrMalformedInput, got %v", bad, err)
		}
	}
}

func TestUnknownPrefixPanics(t *testing.T) {
	r := NewReader()
	root, err := r.Parse([]byte(slideDoc))
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("unknown prefix should panic")
		}
	}()
	r.FindFirst(root, "zz:nothing")
}

func TestAttrAccess(t *testing.T) {
	r := NewReader()
	doc := `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
	             xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
	  <p:sldId id="256" r:id="rId2"/>
	</p:sld>`
	root, err := r.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	id := r.FindFirst(root, "p:sldId")
	if id == nil {
		t.Fatal("missing p:sldId")
	}
	if v, ok := id.Attr("id"); !ok || v != "256" {
		t.Errorf("id attr: got %q, %v", v, ok)
	}
	if v, ok := id.AttrNS(NSDocRelation, "id"); !ok || v != "rId2" {
		t.Errorf("r:id attr: got %q, %v", v, ok)
	}
	if _, ok := id.Attr("absent"); ok {
		t.Error("absent attr should not be found")
	}
	if got := id.AttrDefault("type", "body"); got != "body" {
		t.Errorf("AttrDefault: got %q", got)
	}
}

// Streaming mode must yield the same query results as whole-tree parsing
// for queries confined to the requested targets.
func TestParseTargetsEquivalence(t *testing.T) {
	// Inflate the document past a tiny threshold with filler shapes.
	var filler strings.Builder
	filler.WriteString(`<p:extra>`)
	for i := 0; i < 50; i++ {
		filler.WriteString(`<p:junk attr="x">padding text</p:junk>`)
	}
	filler.WriteString(`</p:extra>`)
	doc := strings.Replace(slideDoc, "</p:cSld>", filler.String()+"</p:cSld>", 1)

	whole := NewReader()
	streaming := NewReader().WithThreshold(64)

	wholeRoot, err := whole.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	streamRoot, err := streaming.ParseTargets([]byte(doc), "p:spTree")
	if err != nil {
		t.Fatal(err)
	}

	wholeTexts := whole.FindAll(wholeRoot, "//a:t")
	streamTexts := streaming.FindAll(streamRoot, "//a:t")
	if len(wholeTexts) != len(streamTexts) {
		t.Fatalf("text count mismatch: whole %d, streaming %d", len(wholeTexts), len(streamTexts))
	}
	for i := range wholeTexts {
		if wholeTexts[i].Text != streamTexts[i].Text {
			t.Errorf("text %d mismatch: %q vs %q", i, wholeTexts[i].Text, streamTexts[i].Text)
		}
	}

	// Non-target sibling subtrees are released in streaming mode.
	if streaming.FindFirst(streamRoot, "p:cSld/p:extra") != nil {
		t.Error("non-target subtree should have been discarded in streaming mode")
	}
	if whole.FindFirst(wholeRoot, "p:cSld/p:extra") == nil {
		t.Error("whole-tree parse should retain all subtrees")
	}
}

func TestParseTargetsBelowThresholdKeepsAll(t *testing.T) {
	r := NewReader() // default 1 MiB threshold, doc is tiny
	root, err := r.ParseTargets([]byte(slideDoc), "p:spTree")
	if err != nil {
		t.Fatal(err)
	}
	if r.FindFirst(root, "p:cSld") == nil {
		t.Error("below the threshold the full tree should be returned")
	}
}
