// Package document inspects local files before they are uploaded.
package document

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	pcerrors "github.com/zhubert/pdfchat/internal/errors"
	"github.com/zhubert/pdfchat/internal/logger"
)

// PDFMediaType is the only media type the backend accepts
const PDFMediaType = "application/pdf"

// sniffLen is how many bytes http.DetectContentType looks at
const sniffLen = 512

// Document describes a local file chosen for upload
type Document struct {
	Path      string // Absolute or user-supplied path
	Name      string // Base name sent as the multipart file name
	MediaType string // MIME type without parameters
	Size      int64
	Pages     int // Page count, 0 when the file is not a readable PDF
}

// IsPDF reports whether the media type is exactly the PDF media type
func (d Document) IsPDF() bool {
	return d.MediaType == PDFMediaType
}

// Open opens the document's file for reading
func (d Document) Open() (*os.File, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, pcerrors.FileOpenFailed(d.Path, err)
	}
	return f, nil
}

// Inspect stats the file at path and determines its media type. The type
// comes from the extension when it is registered and from the content
// otherwise. Page counting only runs for PDFs and never fails the call.
func Inspect(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, pcerrors.FileOpenFailed(path, err)
	}
	if info.IsDir() {
		return Document{}, pcerrors.E(pcerrors.Op("document.Inspect"), pcerrors.KindInvalid, path+" is a directory")
	}

	doc := Document{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
	}

	doc.MediaType = typeByExtension(path)
	if doc.MediaType == "" {
		doc.MediaType, err = sniff(path)
		if err != nil {
			return Document{}, err
		}
	}

	if doc.IsPDF() {
		doc.Pages = CountPages(path)
	}

	logger.WithComponent("document").Debug("inspected file",
		"name", doc.Name, "type", doc.MediaType, "size", doc.Size, "pages", doc.Pages)
	return doc, nil
}

func typeByExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	return stripParams(mime.TypeByExtension(ext))
}

func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", pcerrors.FileOpenFailed(path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", pcerrors.FileOpenFailed(path, err)
	}
	return stripParams(http.DetectContentType(buf[:n])), nil
}

// stripParams drops parameters such as "; charset=utf-8"
func stripParams(mediaType string) string {
	if mediaType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return mediaType
	}
	return mt
}

// CountPages returns the number of pages in the PDF at path, or 0 if the file
// cannot be parsed. The parser can panic on malformed input, so the panic is
// contained here.
func CountPages(path string) (pages int) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithComponent("document").Warn("pdf parser panicked", "path", path, "panic", r)
			pages = 0
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		logger.WithComponent("document").Debug("not a readable pdf", "path", path, "error", err)
		return 0
	}
	defer f.Close()
	return reader.NumPage()
}
