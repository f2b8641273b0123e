package grid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Grid is the transaction-grid document an external table extractor produces
// for a statement: ledger rows grouped by page plus aggregate counts.
type Grid struct {
	SourceFile   string `json:"source_file"`
	DocumentType string `json:"document_type"`
	TotalPages   int    `json:"total_pages"`
	TotalRows    int    `json:"total_rows"`
	Sessions     int    `json:"sessions"`
	Pages        []Page `json:"pages"`
}

// Page holds the ledger rows attributed to one page of the source grid.
// Page indices are zero based; extractors that flatten all rows onto a
// single logical page use index 0.
type Page struct {
	Page int   `json:"page"`
	Rows []Row `json:"rows"`
}

// Row is a single ledger movement. The named columns cover the standard
// grid schema; columns this library does not know about are kept in Extra
// and survive re-encoding. Monetary columns arrive as either JSON numbers
// or formatted strings depending on the producer, so they are typed any.
type Row struct {
	FechaOper         string
	FechaLiq          string
	Descripcion       string
	Referencia        string
	Cargos            any
	Abonos            any
	SaldoOperacion    any
	SaldoLiquidacion  any
	FechaOperComplete string
	Extra             map[string]any

	// raw is the original encoding of a decoded row. Re-encoding emits it
	// unchanged so loaded grids round-trip without loss.
	raw json.RawMessage
}

// RowCount reports the actual number of rows across all pages, regardless
// of what the aggregate TotalRows field claims.
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, p := range g.Pages {
		n += len(p.Rows)
	}
	return n
}

// knownColumns are the schema columns lifted out of a decoded row. Anything
// else lands in Extra.
var knownColumns = map[string]bool{
	"fecha_oper":          true,
	"fecha_liq":           true,
	"descripcion":         true,
	"referencia":          true,
	"cargos":              true,
	"abonos":              true,
	"saldo_operacion":     true,
	"saldo_liquidacion":   true,
	"fecha_oper_complete": true,
}

// UnmarshalJSON decodes a ledger row, keeping the original bytes so the row
// re-encodes verbatim.
func (r *Row) UnmarshalJSON(data []byte) error {
	var cols map[string]any
	if err := json.Unmarshal(data, &cols); err != nil {
		return fmt.Errorf("decoding grid row: %w", err)
	}

	*r = Row{raw: append(json.RawMessage(nil), data...)}
	r.FechaOper = stringColumn(cols, "fecha_oper")
	r.FechaLiq = stringColumn(cols, "fecha_liq")
	r.Descripcion = stringColumn(cols, "descripcion")
	r.Referencia = stringColumn(cols, "referencia")
	r.FechaOperComplete = stringColumn(cols, "fecha_oper_complete")
	r.Cargos = cols["cargos"]
	r.Abonos = cols["abonos"]
	r.SaldoOperacion = cols["saldo_operacion"]
	r.SaldoLiquidacion = cols["saldo_liquidacion"]

	for k, v := range cols {
		if knownColumns[k] {
			continue
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[k] = v
	}
	return nil
}

// MarshalJSON re-emits a decoded row byte for byte. Rows built in code are
// encoded in ledger column order with zero-valued columns omitted and Extra
// columns appended in sorted order.
func (r Row) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, val any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encoding grid row column %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	ordered := []struct {
		key string
		val any
	}{
		{"fecha_oper", r.FechaOper},
		{"fecha_liq", r.FechaLiq},
		{"descripcion", r.Descripcion},
		{"referencia", r.Referencia},
		{"cargos", r.Cargos},
		{"abonos", r.Abonos},
		{"saldo_operacion", r.SaldoOperacion},
		{"saldo_liquidacion", r.SaldoLiquidacion},
		{"fecha_oper_complete", r.FechaOperComplete},
	}
	for _, col := range ordered {
		if s, ok := col.val.(string); ok && s == "" {
			continue
		}
		if col.val == nil {
			continue
		}
		if err := write(col.key, col.val); err != nil {
			return nil, err
		}
	}

	extras := make([]string, 0, len(r.Extra))
	for k := range r.Extra {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	for _, k := range extras {
		if err := write(k, r.Extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func stringColumn(cols map[string]any, key string) string {
	if s, ok := cols[key].(string); ok {
		return s
	}
	return ""
}
