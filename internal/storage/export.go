package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/escapetime/internal/orbit"
	"github.com/san-kum/escapetime/internal/trace"
)

type ExportRecord struct {
	Step  int    `json:"step"`
	Re    string `json:"z_real"`
	Im    string `json:"z_imag"`
	HexRe string `json:"hex_real"`
	HexIm string `json:"hex_imag"`
}

type ExportData struct {
	Run     RunMetadata    `json:"run"`
	Records []ExportRecord `json:"records"`
}

// ExportJSON writes a run and its records. Components are strings so that
// inf and nan survive the encoding.
func ExportJSON(w io.Writer, meta *RunMetadata, records []orbit.Record) error {
	data := ExportData{
		Run:     *meta,
		Records: make([]ExportRecord, len(records)),
	}

	for i, r := range records {
		data.Records[i] = ExportRecord{
			Step:  r.Step,
			Re:    trace.FormatDecimal(r.Re),
			Im:    trace.FormatDecimal(r.Im),
			HexRe: r.HexRe(),
			HexIm: r.HexIm(),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
