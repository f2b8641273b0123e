package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Canonical field-group names. These are fixed domain-language identifiers
// and must remain stable across versions for downstream compatibility.
const (
	GroupCustomerInfo    = "customer_info"
	GroupPagesInfo       = "pages_info"
	GroupBranchInfo      = "branch_info"
	GroupInitialBalance  = "initial_balance"
	GroupDeposits        = "deposits"
	GroupWithdrawals     = "withdrawals"
	GroupFinalBalance    = "final_balance"
	GroupFinancialInfo   = "informacion_financiera"
	GroupBehavior        = "comportamiento"
	GroupOtherProducts   = "otros_productos"
	GroupTransactions    = "transactions" // internal placeholder, removed on merge
	GroupTransactionGrid = "transaction_details"
	GroupMovementTotals  = "total_movimientos"
	GroupPendingHolds    = "apartados_vigentes"
	GroupSummaryTable    = "cuadro_resumen"
)

// CanonicalGroupOrder returns the fixed sequence summary groups appear in.
// The transactions placeholder marks where merged transaction details land.
func CanonicalGroupOrder() []string {
	return []string{
		GroupCustomerInfo,
		GroupPagesInfo,
		GroupBranchInfo,
		GroupInitialBalance,
		GroupDeposits,
		GroupWithdrawals,
		GroupFinalBalance,
		GroupFinancialInfo,
		GroupBehavior,
		GroupOtherProducts,
		GroupTransactions,
		GroupMovementTotals,
		GroupPendingHolds,
		GroupSummaryTable,
	}
}

// SummaryRecord is an insertion-ordered mapping from field-group name to
// payload (scalar map, row list, or nested mapping). Order is semantically
// significant: it is the externally observed document order, and JSON
// marshaling emits keys in exactly this order.
type SummaryRecord struct {
	keys   []string
	values map[string]any
}

// NewSummaryRecord creates an empty record
func NewSummaryRecord() *SummaryRecord {
	return &SummaryRecord{
		keys:   make([]string, 0),
		values: make(map[string]any),
	}
}

// Set stores a value under key. A new key is appended at the end; an
// existing key keeps its position and only the value is replaced.
func (r *SummaryRecord) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key
func (r *SummaryRecord) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present
func (r *SummaryRecord) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
// It reports whether the key was present.
func (r *SummaryRecord) Delete(key string) bool {
	if _, ok := r.values[key]; !ok {
		return false
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order
func (r *SummaryRecord) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of keys
func (r *SummaryRecord) Len() int {
	return len(r.keys)
}

// Index returns the position of key in the order, or -1 if absent
func (r *SummaryRecord) Index(key string) int {
	for i, k := range r.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// InsertAt places a new key at position i, shifting later keys down.
// Positions are clamped to [0, Len]. If the key already exists, only its
// value is replaced and its position is unchanged.
func (r *SummaryRecord) InsertAt(i int, key string, value any) {
	if _, ok := r.values[key]; ok {
		r.values[key] = value
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(r.keys) {
		i = len(r.keys)
	}
	r.keys = append(r.keys, "")
	copy(r.keys[i+1:], r.keys[i:])
	r.keys[i] = key
	r.values[key] = value
}

// InsertBefore places a new key immediately before an existing key.
// It reports whether the anchor key was found.
func (r *SummaryRecord) InsertBefore(before, key string, value any) bool {
	i := r.Index(before)
	if i < 0 {
		return false
	}
	r.InsertAt(i, key, value)
	return true
}

// Clone returns a copy with its own key order. Values are shared.
func (r *SummaryRecord) Clone() *SummaryRecord {
	clone := &SummaryRecord{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]any, len(r.values)),
	}
	copy(clone.keys, r.keys)
	for k, v := range r.values {
		clone.values[k] = v
	}
	return clone
}

// MarshalJSON emits the record as a JSON object with keys in insertion order
func (r *SummaryRecord) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal group %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object preserving its key order
func (r *SummaryRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("summary record: expected object, got %v", tok)
	}
	r.keys = r.keys[:0]
	r.values = make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("summary record: expected key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("summary record: group %q: %w", key, err)
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("summary record: group %q: %w", key, err)
		}
		r.Set(key, value)
	}
	_, err = dec.Token() // closing brace
	return err
}
