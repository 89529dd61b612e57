// Package deck reads slide text out of .pptx files. A .pptx is a zip
// archive; each slide lives at ppt/slides/slideN.xml and its visible text
// sits in <a:t> elements nested under shape, text-body, paragraph and run
// elements. Only that nesting is modelled here; layout, styling and
// non-text shapes are ignored.
package deck

import (
	"archive/zip"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Deck is an ordered sequence of slides from one presentation.
type Deck struct {
	Slides []Slide
}

// Slide holds the shapes of one presentation page.
type Slide struct {
	Shapes []Shape
}

// Shape is a visual element; TextFrame is nil for shapes that carry no text
// (pictures, connectors, media frames).
type Shape struct {
	TextFrame *TextFrame
}

// TextFrame groups the paragraphs of a text-bearing shape.
type TextFrame struct {
	Paragraphs []Paragraph
}

// Paragraph is an ordered list of text runs.
type Paragraph struct {
	Runs []string
}

// Text concatenates every run of every paragraph of every text-bearing
// shape, each run trimmed, joined by single spaces in shape/paragraph/run
// order. Shapes without a text frame are skipped. Returns "" for a slide
// with no text.
func (s Slide) Text() string {
	var runs []string
	for _, shape := range s.Shapes {
		if shape.TextFrame == nil {
			continue
		}
		for _, para := range shape.TextFrame.Paragraphs {
			for _, run := range para.Runs {
				runs = append(runs, strings.TrimSpace(run))
			}
		}
	}
	return strings.Join(runs, " ")
}

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Open reads a .pptx file and returns its slides in presentation order.
func Open(path string) (*Deck, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open presentation: %w", err)
	}
	defer r.Close()
	return read(&r.Reader)
}

type slideEntry struct {
	num  int
	file *zip.File
}

func read(r *zip.Reader) (*Deck, error) {
	var entries []slideEntry
	for _, f := range r.File {
		m := slideNameRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, slideEntry{num: num, file: f})
	}
	// slide10.xml must sort after slide2.xml, so order numerically.
	sort.Slice(entries, func(i, j int) bool { return entries[i].num < entries[j].num })

	deck := &Deck{}
	for _, e := range entries {
		rc, err := e.file.Open()
		if err != nil {
			return nil, fmt.Errorf("open slide %d: %w", e.num, err)
		}
		slide, err := parseSlide(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse slide %d: %w", e.num, err)
		}
		deck.Slides = append(deck.Slides, slide)
	}
	return deck, nil
}
