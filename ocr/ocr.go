//go:build ocr

// Package ocr provides the optional Tesseract binding for reading scanned
// statement images.
//
// This package wraps the Tesseract OCR engine via gosseract and requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-spa
//
// Recognition defaults to Spanish, the language of the statement family.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/estado/ingest"
	"github.com/tsawler/estado/model"
)

// DefaultLanguage is the Tesseract language pack used unless SetLanguage
// overrides it.
const DefaultLanguage = "spa"

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
	langs  string
}

// New creates a new OCR client configured for Spanish recognition.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(DefaultLanguage); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	return &Client{client: client, langs: DefaultLanguage}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeImageFile performs OCR on the image file at path.
func (c *Client) RecognizeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return c.RecognizeImage(data)
}

// RecognizeToDocument performs OCR on image data and returns a structured
// document. Block geometry comes from Tesseract's hOCR output; when no page
// structure comes back, the plain recognized text becomes a single block on
// a page sized from the image dimensions (PNG, JPEG, and WebP are decoded
// natively).
func (c *Client) RecognizeToDocument(imageData []byte) (*model.Document, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	doc := c.structuredDocument()
	if doc == nil {
		text, err := c.client.Text()
		if err != nil {
			return nil, fmt.Errorf("OCR failed: %w", err)
		}
		doc = model.NewDocument()
		page := model.NewPage(imageSize(imageData))
		if text = strings.TrimSpace(text); text != "" {
			page.AddBlock(model.TextBlock{
				Text: text,
				BBox: model.NewBBox(0, 0, page.Width, page.Height),
			})
		}
		doc.AddPage(page)
	}

	doc.Engine = "tesseract"
	if doc.Metadata.Language == "" {
		doc.Metadata.Language = c.langs
	}
	return doc, nil
}

// structuredDocument builds a document from Tesseract's hOCR output.
// Returns nil when Tesseract reports no page structure.
func (c *Client) structuredDocument() *model.Document {
	hocr, err := c.client.HOCRText()
	if err != nil {
		return nil
	}
	doc, err := ingest.FromHOCR(strings.NewReader(hocr))
	if err != nil {
		return nil
	}
	return doc
}

// imageSize decodes just the image dimensions. Undecodable formats yield
// zeros, which the page constructor replaces with defaults.
func imageSize(imageData []byte) (width, height float64) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0
	}
	return float64(cfg.Width), float64(cfg.Height)
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "spa+eng").
func (c *Client) SetLanguage(lang string) error {
	if err := c.client.SetLanguage(lang); err != nil {
		return err
	}
	c.langs = lang
	return nil
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
