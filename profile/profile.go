package profile

// Label is one recognized field label with its canonical name and the
// variants it appears as in source documents. Matching is case and
// diacritic insensitive, so variants only need to cover genuinely
// different spellings.
//
// ValuePattern optionally restricts the captured value: a regular
// expression matched at the start of the captured span, keeping only what
// it matches. A label whose pattern matches nothing is treated as absent.
type Label struct {
	Canonical    string   `yaml:"canonical"`
	Variants     []string `yaml:"variants"`
	ValuePattern string   `yaml:"value_pattern"`
}

// Tokens returns every token that identifies this label: the canonical
// form plus all variants.
func (l Label) Tokens() []string {
	tokens := make([]string, 0, len(l.Variants)+1)
	tokens = append(tokens, l.Canonical)
	tokens = append(tokens, l.Variants...)
	return tokens
}

// CurrencyFormat describes how the statement family formats money
type CurrencyFormat struct {
	Symbol       string `yaml:"symbol"`
	ThousandsSep string `yaml:"thousands_separator"`
	DecimalSep   string `yaml:"decimal_separator"`
}

// Profile describes one bank's statement family: its vocabulary, markers,
// and conventions. Profiles are value types; extraction never mutates them.
type Profile struct {
	Key          string `yaml:"key"`
	Name         string `yaml:"name"`
	DocumentType string `yaml:"document_type"`
	Language     string `yaml:"language"`

	// BranchLabels is the ordered label set the boundary extractor slices
	// between. Order here is the output order of extracted branch fields.
	BranchLabels []Label `yaml:"branch_labels"`

	// Boilerplate markers exclude a block from spatial candidate selection
	// regardless of position.
	Boilerplate []string `yaml:"boilerplate"`

	// HeaderPrefixes are labeled header lines that are never part of an
	// identity/address block.
	HeaderPrefixes []string `yaml:"header_prefixes"`

	// Detection keyword lists, scored by Detect.
	SkipKeywords        []string            `yaml:"skip_keywords"`
	HeaderKeywords      []string            `yaml:"header_keywords"`
	TransactionKeywords map[string][]string `yaml:"transaction_keywords"`

	Currency CurrencyFormat `yaml:"currency"`
}

// Default returns the built-in BBVA México statement profile
func Default() Profile {
	return Profile{
		Key:          "bbva_mexico",
		Name:         "BBVA",
		DocumentType: "bank_statement",
		Language:     "es",
		BranchLabels: []Label{
			{Canonical: "SUCURSAL"},
			{Canonical: "DIRECCION", Variants: []string{"Dirección"}},
			{Canonical: "PLAZA"},
			// Phone values keep only dialable characters
			{Canonical: "TELEFONO", Variants: []string{"Teléfono"}, ValuePattern: `[+0-9\s()-]+`},
		},
		Boilerplate: []string{
			"BBVA",
			"BANCO BBVA",
			"Estado de Cuenta",
		},
		HeaderPrefixes: []string{
			"Periodo",
			"Fecha de Corte",
			"No. de Cuenta",
			"No. de Cliente",
			"R.F.C",
			"No. Cuenta CLABE",
			"PAGINA",
		},
		SkipKeywords: []string{
			"estado de cuenta",
			"sucursal",
			"periodo",
			"fecha de corte",
			"saldo",
		},
		HeaderKeywords: []string{
			"no. de cuenta",
			"no. cuenta clabe",
			"total de movimientos",
		},
		TransactionKeywords: map[string][]string{
			"deposits":    {"abonos", "depósitos", "depositos"},
			"withdrawals": {"cargos", "retiros"},
			"balance":     {"saldo", "liquidación", "operación"},
		},
		Currency: CurrencyFormat{
			Symbol:       "$",
			ThousandsSep: ",",
			DecimalSep:   ".",
		},
	}
}
