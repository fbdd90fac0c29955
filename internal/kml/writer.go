// Package kml writes tour tracks as KML documents.
package kml

import (
	"encoding/xml"
	"io"

	"github.com/tdewolff/minify/v2"
	minxml "github.com/tdewolff/minify/v2/xml"
)

// Namespace is the KML 2.2 namespace.
const Namespace = "http://www.opengis.net/kml/2.2"

// MediaType is the registered KML media type.
const MediaType = "application/vnd.google-earth.kml+xml"

// Writer emits nested elements. Every element opened through Element is
// closed when its body returns, including on error.
type Writer struct {
	out io.Writer
	enc *xml.Encoder
}

// NewWriter returns a Writer indenting with two spaces.
func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return &Writer{out: w, enc: enc}
}

// Header writes the XML declaration. It must precede any element.
func (w *Writer) Header() error {
	_, err := io.WriteString(w.out, xml.Header)
	return err
}

// Element writes <name attrs...>, runs body, then writes </name>.
func (w *Writer) Element(name string, attrs []xml.Attr, body func() error) (err error) {
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}
	defer func() {
		if cerr := w.enc.EncodeToken(start.End()); err == nil {
			err = cerr
		}
	}()

	if body == nil {
		return nil
	}

	return body()
}

// Leaf writes <name>text</name>.
func (w *Writer) Leaf(name, text string) error {
	return w.Element(name, nil, func() error { return w.Text(text) })
}

// Text writes escaped character data.
func (w *Writer) Text(s string) error {
	return w.enc.EncodeToken(xml.CharData(s))
}

// Flush flushes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.enc.Flush()
}

// Attr is a shorthand for a single unqualified attribute.
func Attr(name, value string) []xml.Attr {
	return []xml.Attr{{Name: xml.Name{Local: name}, Value: value}}
}

// Minifier returns a writer that minifies KML written to it into w.
// The caller must Close it to flush the output.
func Minifier(w io.Writer) io.WriteCloser {
	m := minify.New()
	m.AddFunc(MediaType, minxml.Minify)

	return m.Writer(MediaType, w)
}
