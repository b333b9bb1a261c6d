package model

// Record is the canonical form every data source is normalized into.
type Record struct {
	ID    int    // 0-based position in the source file (pre-filter; gaps allowed)
	Text  string // free text, whitespace-trimmed
	Label string // sentiment label from the source's fixed vocabulary
}

// RecordSet is an ordered sequence of records. Order follows source
// iteration and carries no meaning beyond reproducibility.
type RecordSet []Record
