package resume

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrTooLarge          = errors.New("file too large")
	// ErrCorrupt means the format was recognised but the document could not be read.
	ErrCorrupt = errors.New("could not read document")
)

// Kind обозначает формат загруженного резюме.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindText Kind = "text"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Ext returns the canonical file extension for k, with the leading dot.
func (k Kind) Ext() string {
	switch k {
	case KindPDF:
		return ".pdf"
	case KindDOCX:
		return ".docx"
	}
	return ".txt"
}

// ContentType returns the mime type objects of kind k are stored with.
func (k Kind) ContentType() string {
	switch k {
	case KindPDF:
		return mimePDF
	case KindDOCX:
		return mimeDOCX
	}
	return "text/plain; charset=utf-8"
}
