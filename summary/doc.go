// Package summary assembles the ordered account-summary record for one
// statement document.
//
// # Composition
//
// A [Composer] runs one extractor per field group against the document's
// pages: customer and page headers, branch contact fields, balance figures,
// financial information, behavior indicators, other products, movement
// totals, pending holds, and the closing summary table. Groups that find
// nothing are omitted entirely rather than included as empty placeholders,
// so presence of a key is itself meaningful.
//
// Groups are recorded in the canonical order of [model.CanonicalGroupOrder],
// with a transactions placeholder marking where merged transaction detail
// belongs. No group extractor fails on malformed text; a damaged section
// yields absence and the remaining groups still extract.
//
// # Vocabulary
//
// All label vocabulary, boilerplate markers, and currency conventions come
// from a [profile.Profile], so the composer itself stays free of hardcoded
// bank knowledge beyond the statement family's section headings.
package summary
