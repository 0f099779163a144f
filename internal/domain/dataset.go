package domain

// AnomalyKind classifies non-fatal input problems collected during a run.
type AnomalyKind string

const (
	AnomalyOrphanTranslation AnomalyKind = "orphan_translation"
	AnomalyEmptyDataset      AnomalyKind = "empty_dataset"
	AnomalyZeroItems         AnomalyKind = "zero_items"
)

// Anomaly references a 1-indexed display row of the input file.
type Anomaly struct {
	Kind  AnomalyKind `json:"kind"`
	Row   int         `json:"row"`
	Value string      `json:"value"`
}

// Dataset is the final ordered output: one column list valid for every record.
// Every record carries every column; absent values are empty strings.
type Dataset struct {
	Columns []string  `json:"columns"`
	Records []*Record `json:"records"`
}

// Summary reports what one transformation run did.
type Summary struct {
	RunID                   string    `json:"run_id"`
	TotalRows               int       `json:"total_rows"`
	Items                   int       `json:"items"`
	ArabicTranslationsFound int       `json:"arabic_translations_found"`
	AutoGeneratedIDs        int       `json:"auto_generated_ids"`
	AlreadyArabic           int       `json:"already_arabic"`
	Translated              int       `json:"translated"`
	FailedBatches           int       `json:"failed_batches"`
	ImagesResolved          int       `json:"images_resolved"`
	CaloriesEstimated       int       `json:"calories_estimated"`
	Currencies              []string  `json:"currencies"`
	Anomalies               []Anomaly `json:"anomalies"`
	ZeroItems               bool      `json:"zero_items"`
}
