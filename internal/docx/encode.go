package docx

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/jonathan/cv-generator/internal/types"
)

// xmlHeader opens every part. standalone="yes" is what word processors
// emit for OOXML parts.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/fontTable.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable" Target="fontTable.xml"/>` +
	`</Relationships>`

// EncodeError represents a failure assembling the OOXML package.
type EncodeError struct {
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx encode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("docx encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Encode assembles the block stream into DOCX bytes. Output is
// deterministic for identical inputs: part order is fixed and zip entry
// timestamps are zeroed, so rendering the same record twice produces
// byte-identical files.
func Encode(blocks []rendering.Block, cfg *types.RenderConfig) ([]byte, error) {
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", buildDocumentXML(blocks, cfg)},
		{"word/styles.xml", buildStylesXML(cfg)},
		{"word/fontTable.xml", buildFontTableXML(cfg)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		header := &zip.FileHeader{
			Name:   part.name,
			Method: zip.Deflate,
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, &EncodeError{Message: fmt.Sprintf("failed to create package part %s", part.name), Cause: err}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, &EncodeError{Message: fmt.Sprintf("failed to write package part %s", part.name), Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &EncodeError{Message: "failed to finalize package", Cause: err}
	}
	return buf.Bytes(), nil
}

// ExtractDocumentXML returns the word/document.xml part of an encoded
// package. It backs the tests that assert on the raw character stream
// (the same view a text-extraction pass sees).
func ExtractDocumentXML(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &EncodeError{Message: "failed to open package", Cause: err}
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &EncodeError{Message: "failed to open document part", Cause: err}
		}
		defer rc.Close()
		var sb bytes.Buffer
		if _, err := sb.ReadFrom(rc); err != nil {
			return "", &EncodeError{Message: "failed to read document part", Cause: err}
		}
		return sb.String(), nil
	}
	return "", &EncodeError{Message: "package has no word/document.xml part"}
}
