package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"
)

// weightTerm describes how one factor enters the index formula.
type weightTerm struct {
	Key       schema.MetricKey `json:"metric"`
	Weight    float64          `json:"weight"`
	Transform string           `json:"transform"`
}

// weightsRenderModel is the processed view of the active weight vector.
type weightsRenderModel struct {
	Title   string       `json:"title"`
	Terms   []weightTerm `json:"terms"`
	Formula string       `json:"formula"`
}

// WriteWeightsResult outputs the active normalized weight vector and the
// index formula, dispatching based on the output format configured.
func WriteWeightsResult(weights schema.WeightVector, cfg *contract.Config) error {
	model := buildWeightsRenderModel(weights)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWeights(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightsText(w, model)
		}, "Wrote text")
	}
}

// buildWeightsRenderModel constructs the render model with all processed data.
func buildWeightsRenderModel(weights schema.WeightVector) *weightsRenderModel {
	terms := []weightTerm{
		{schema.MetricAdoption, weights.Adoption, "linear"},
		{schema.MetricEfficiency, weights.Efficiency, "linear"},
		{schema.MetricRevenue, weights.Revenue, "linear"},
		{schema.MetricMarket, weights.Market, "ln"},
		{schema.MetricGrowth, weights.Growth, "exp(x/100)"},
	}

	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		operand := string(t.Key)
		switch t.Transform {
		case "ln":
			operand = fmt.Sprintf("ln(%s)", t.Key)
		case "exp(x/100)":
			operand = fmt.Sprintf("exp(%s/100)", t.Key)
		}
		parts = append(parts, fmt.Sprintf("%.2f*%s", t.Weight, operand))
	}

	return &weightsRenderModel{
		Title:   "AIDGI Weight Distribution",
		Terms:   terms,
		Formula: strings.Join(parts, " + "),
	}
}

// writeWeightsText displays the weights in human-readable text format.
func writeWeightsText(w io.Writer, model *weightsRenderModel) error {
	if _, err := fmt.Fprintf(w, "%s\n", model.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(model.Title))); err != nil {
		return err
	}
	for _, t := range model.Terms {
		if _, err := fmt.Fprintf(w, "  %-23s %.4f  (%s)\n", t.Key, t.Weight, t.Transform); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nFormula: AIDGI = %s\n", model.Formula); err != nil {
		return err
	}
	return nil
}

// writeCSVWeights writes the weight terms in CSV format.
func writeCSVWeights(w io.Writer, model *weightsRenderModel) error {
	header := []string{"metric", "weight", "transform"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, t := range model.Terms {
			rec := []string{string(t.Key), fmt.Sprintf("%.4f", t.Weight), t.Transform}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
