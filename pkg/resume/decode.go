package resume

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	reXMLTag     = regexp.MustCompile(`<[^>]+>`)
	reHorizSpace = regexp.MustCompile(`[ \t\f\v]+`)
	reBlankLines = regexp.MustCompile(`\n{3,}`)
)

// DefaultMaxBytes: лимит размера загружаемого файла по умолчанию (15MB).
const DefaultMaxBytes = 15 << 20

// Decoder extracts plain text from uploaded resumes.
type Decoder struct {
	maxBytes int64
}

// NewDecoder returns a Decoder refusing inputs over maxBytes.
// A non-positive limit disables the check.
func NewDecoder(maxBytes int64) *Decoder {
	return &Decoder{maxBytes: maxBytes}
}

// Decode picks a format by mime type, file extension and finally by
// sniffing the content, then extracts its text.
func (d *Decoder) Decode(filename, mimeType string, data []byte) (string, error) {
	if d.maxBytes > 0 && int64(len(data)) > d.maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, d.maxBytes)
	}
	kind, err := DetectKind(filename, mimeType, data)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindPDF:
		return extractTextFromPDF(data)
	case KindDOCX:
		return extractTextFromDocx(data)
	}
	return plainText(data), nil
}

// DetectKind follows the client's hints first: a mime type mentioning pdf
// or word, or a .pdf/.docx name. Otherwise the bytes decide, and anything
// that does not sniff as text is rejected.
func DetectKind(filename, mimeType string, data []byte) (Kind, error) {
	ct := strings.ToLower(mimeType)
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case strings.Contains(ct, "pdf") || ext == ".pdf":
		return KindPDF, nil
	case strings.Contains(ct, "word") || ext == ".docx":
		return KindDOCX, nil
	}

	m := mimetype.Detect(data)
	switch {
	case m.Is(mimePDF):
		return KindPDF, nil
	case m.Is(mimeDOCX):
		return KindDOCX, nil
	}
	for p := m; p != nil; p = p.Parent() {
		if p.Is("text/plain") {
			return KindText, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, m.String())
}

func extractTextFromPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrCorrupt, r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrCorrupt, err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrCorrupt, err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrCorrupt, err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrCorrupt, err)
	}
	defer doc.Close()
	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens word/document.xml: paragraphs and breaks become
// newlines and every other tag disappears.
func docxXMLToText(xml string) string {
	r := strings.NewReplacer(
		"</w:p>", "\n",
		"<w:p/>", "\n",
		"<w:br/>", "\n",
		"<w:tab/>", "\t",
	)
	txt := reXMLTag.ReplaceAllString(r.Replace(xml), "")
	return normalizeWhitespace(html.UnescapeString(txt))
}

func plainText(data []byte) string {
	s := string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	s = strings.ToValidUTF8(s, "\ufffd")
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// normalizeWhitespace collapses horizontal runs and trims every line but
// keeps single blank lines, which mark paragraph breaks for the extractor.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reHorizSpace.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = reBlankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}
