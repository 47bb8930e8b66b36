package input

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

const wordprocessingmlNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// ExtractDocxText extracts paragraph text from a DOCX file's bytes,
// one line per paragraph. Empty paragraphs become blank lines, which
// the parser uses as block separators.
func ExtractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Reason: "input is not a valid docx archive", Err: err}
	}

	doc, err := zr.Open("word/document.xml")
	if err != nil {
		return "", &DecodeError{Reason: "docx archive has no word/document.xml", Err: err}
	}
	defer doc.Close()

	lines, err := paragraphText(doc)
	if err != nil {
		return "", &DecodeError{Reason: "malformed word/document.xml", Err: err}
	}
	return strings.Join(lines, "\n"), nil
}

// paragraphText walks the document XML and collects the concatenated
// text runs of each w:p paragraph.
func paragraphText(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var lines []string
	var paragraph strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingmlNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				inParagraph = true
				paragraph.Reset()
			case "t":
				inText = inParagraph
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingmlNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				if inParagraph {
					lines = append(lines, strings.TrimSpace(paragraph.String()))
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}
	return lines, nil
}
