// Package model provides the shared data model for extracted bank-statement
// content.
//
// This package defines the user-facing data structures every extraction stage
// produces or consumes. Upstream OCR/layout collaborators produce a [Document]
// of positioned [TextBlock] values; the extraction pipeline turns that into an
// ordered [SummaryRecord]; the merge stage wraps the record in a
// [MergedDocument] for serialization.
//
// # Document Structure
//
// The [Document] type represents one statement with metadata and pages:
//
//	doc := model.NewDocument()
//	doc.AddPage(page)
//
// Each [Page] carries dimensions and the list of [TextBlock] values the OCR
// layer produced for it. Blocks are immutable once produced; no pipeline
// stage mutates its input.
//
// # Coordinates
//
// All geometry uses the raster OCR convention: origin at the top-left corner
// of the page, Y increasing downward, units in points. This deliberately
// differs from the PDF user-space convention (bottom-left origin) because the
// library consumes OCR output, not PDF content streams.
//
// # Summary Records
//
// A [SummaryRecord] is an insertion-ordered mapping from field-group name to
// payload. The order is the externally observed document order and is
// preserved exactly through every transformation stage, including JSON
// marshaling. The canonical group sequence is defined by the Group*
// constants and [CanonicalGroupOrder].
//
// # Geometry
//
// The [BBox] type is a corner-form bounding box with intersection, union,
// and containment calculations used by spatial candidate selection and row
// reconstruction.
package model
