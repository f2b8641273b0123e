package model

// LabeledField is one extracted label/value pair. The value never contains
// the raw token of another recognized label.
type LabeledField struct {
	Key   string
	Value string
}
