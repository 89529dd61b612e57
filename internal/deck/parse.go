package deck

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// parseSlide walks the slide XML token stream and rebuilds the
// shape → text frame → paragraph → run structure. Element names are matched
// by local name: <p:sp> is a shape, <p:txBody> its text frame, <a:p> a
// paragraph, <a:r> a run and <a:t> the run's text.
func parseSlide(r io.Reader) (Slide, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		slide     Slide
		shape     *Shape
		paragraph *Paragraph
		run       strings.Builder
		inRun     bool
		inText    bool
	)

	flushShape := func() {
		if shape != nil {
			slide.Shapes = append(slide.Shapes, *shape)
			shape = nil
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Slide{}, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "sp":
				flushShape()
				shape = &Shape{}
			case "pic", "graphicFrame", "cxnSp":
				// Text-less shape kinds still count as shapes on the slide.
				flushShape()
				slide.Shapes = append(slide.Shapes, Shape{})
			case "txBody":
				if shape != nil {
					shape.TextFrame = &TextFrame{}
				}
			case "p":
				if shape != nil && shape.TextFrame != nil {
					paragraph = &Paragraph{}
				}
			case "r":
				if paragraph != nil {
					inRun = true
					run.Reset()
				}
			case "t":
				if inRun {
					inText = true
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "sp":
				flushShape()
			case "p":
				if paragraph != nil && shape != nil && shape.TextFrame != nil {
					shape.TextFrame.Paragraphs = append(shape.TextFrame.Paragraphs, *paragraph)
					paragraph = nil
				}
			case "r":
				if inRun {
					paragraph.Runs = append(paragraph.Runs, run.String())
					inRun = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				run.Write(el)
			}
		}
	}
	flushShape()
	return slide, nil
}
