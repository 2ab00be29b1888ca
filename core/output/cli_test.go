// Package output_test - Rendering tests
package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"moving-cost/core/catalog"
	"moving-cost/core/inventory"
	"moving-cost/core/output"
	"moving-cost/core/pricing"
	"moving-cost/core/rates"
)

func testEstimate(t *testing.T) *pricing.Estimate {
	t.Helper()
	resolver := catalog.NewResolver(catalog.Standard())
	engine := pricing.NewEngine(rates.Default(), inventory.NewAggregator(resolver), "USD")

	date, _ := time.Parse("2006-01-02", "2025-09-15")
	est, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"sofa": 1, "box medium": 10},
		DistanceMiles: 12,
		MoveDate:      date,
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	return est
}

func TestCLIFormatterRender(t *testing.T) {
	est := testEstimate(t)

	var buf bytes.Buffer
	formatter := &output.CLIFormatter{ShowDetails: true}
	if err := formatter.Render(&buf, est); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"MOVING ESTIMATE",
		"TOTAL",
		est.TotalCost.StringFixed(2),
		"sofa_three_seat",
		"box_medium",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIFormatterWithoutDetails(t *testing.T) {
	est := testEstimate(t)

	var buf bytes.Buffer
	formatter := &output.CLIFormatter{ShowDetails: false}
	if err := formatter.Render(&buf, est); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(buf.String(), "box_medium") {
		t.Error("item breakdown should be hidden without details")
	}
}

func TestJSONFormatterRender(t *testing.T) {
	est := testEstimate(t)

	var buf bytes.Buffer
	formatter := &output.JSONFormatter{}
	if err := formatter.Render(&buf, est); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["total_cost"]; !ok {
		t.Error("JSON output missing total_cost")
	}
}

func TestNewFormatter(t *testing.T) {
	if _, err := output.NewFormatter("cli", true); err != nil {
		t.Errorf("cli formatter: %v", err)
	}
	if _, err := output.NewFormatter("json", false); err != nil {
		t.Errorf("json formatter: %v", err)
	}
	if _, err := output.NewFormatter("yaml", false); err == nil {
		t.Error("unknown format should fail")
	}
}
