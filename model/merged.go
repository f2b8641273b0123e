package model

// MergedDocument is the final artifact: document metadata plus the ordered
// account summary. It contains at most one transaction representation
// (the transaction_details group), never the internal placeholder list.
type MergedDocument struct {
	Metadata       Metadata       `json:"metadata"`
	StructuredData StructuredData `json:"structured_data"`
}

// StructuredData wraps the account summary for serialization
type StructuredData struct {
	AccountSummary *SummaryRecord `json:"account_summary"`
}
