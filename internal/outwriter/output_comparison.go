package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteComparisonResults outputs the long-format raw-metric comparison,
// dispatching based on the output format configured. Every row is an
// (industry, metric, value) triple independent of the active weights.
func WriteComparisonResults(values []schema.MetricValue, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, values)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVComparison(w, values, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, values, fmtFloat)
		}, "Wrote table")
	}
}

// writeComparisonTable renders the triples as a grouped table.
func writeComparisonTable(w io.Writer, values []schema.MetricValue, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Industry", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, v := range values {
		data = append(data, []string{
			string(v.Metric),
			v.Industry,
			fmtFloat(v.Value),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVComparison writes the triples in CSV format.
func writeCSVComparison(w io.Writer, values []schema.MetricValue, fmtFloat func(float64) string) error {
	header := []string{"metric", "industry", "value"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, v := range values {
			rec := []string{string(v.Metric), v.Industry, fmtFloat(v.Value)}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
