package types

// ConversionConfig holds settings for turning a PDF into per-page text.
type ConversionConfig struct {
	// PdftotextPath is the pdftotext binary to invoke (default "pdftotext").
	PdftotextPath string `json:"pdftotext_path" yaml:"pdftotext_path"`
}

// ValidationConfig holds thresholds for the validation pass.
type ValidationConfig struct {
	// MinStrength is the lower bound of the acceptable strength range
	// in MPa, inclusive (default 20.0).
	MinStrength float64 `json:"min_strength" yaml:"min_strength"`

	// MaxStrength is the upper bound of the acceptable strength range
	// in MPa, inclusive (default 100.0).
	MaxStrength float64 `json:"max_strength" yaml:"max_strength"`
}

// OutputFormat selects the tabular output format.
type OutputFormat string

const (
	OutputXLSX OutputFormat = "xlsx"
	OutputCSV  OutputFormat = "csv"
)

// OutputConfig holds settings for the spreadsheet/CSV writers.
type OutputConfig struct {
	// Format selects the output writer: xlsx or csv.
	Format OutputFormat `json:"format" yaml:"format"`

	// RawSheet is the name of the sheet holding all records (default "Raw").
	RawSheet string `json:"raw_sheet" yaml:"raw_sheet"`

	// PairColumns lists the identity columns merged two rows at a time
	// on the per-type sheets (default A, B, D, E).
	PairColumns []string `json:"pair_columns" yaml:"pair_columns"`

	// LocationColumn is the pour-location column merged by value runs
	// (default G).
	LocationColumn string `json:"location_column" yaml:"location_column"`
}

// StoreConfig holds settings for the local run archive.
type StoreConfig struct {
	// Enabled turns on persistence of extraction runs.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DBPath is the SQLite database file (default "cubereport.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Validation ValidationConfig `json:"validation" yaml:"validation"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}
