package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	compSet := &ComparisonSet{
		BaseScenarioName: "baseline",
		ConfigPath:       "/path/to/scenarios.yaml",
		BaseResult: &ComparisonResult{
			ScenarioName: "baseline",
			BuyNetWorth:  decimal.NewFromInt(500000),
			RentNetWorth: decimal.NewFromInt(420000),
			Difference:   decimal.NewFromInt(80000),
			Verdict:      VerdictBuy,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:         "baseline_rates_up_1",
				Description:          "Mortgage rate one point higher",
				BuyNetWorth:          decimal.NewFromInt(380000),
				RentNetWorth:         decimal.NewFromInt(450000),
				Difference:           decimal.NewFromInt(-70000),
				Verdict:              VerdictRent,
				DifferenceFromBase:   decimal.NewFromInt(-150000),
				BuyNetWorthFromBase:  decimal.NewFromInt(-120000),
				RentNetWorthFromBase: decimal.NewFromInt(30000),
				VerdictFlipped:       true,
			},
		},
		Recommendations: []string{
			"Favors Renting: baseline_rates_up_1 shifts the outcome $150000 toward renting versus the base scenario",
		},
	}

	result := formatter.Format(compSet)

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	// Check that key elements are present
	if !strings.Contains(result, "BUY VS RENT SCENARIO COMPARISON") {
		t.Error("Expected header in output")
	}

	if !strings.Contains(result, "Base Scenario: baseline") {
		t.Error("Expected base scenario name in output")
	}

	if !strings.Contains(result, "Configuration: /path/to/scenarios.yaml") {
		t.Error("Expected config path in output")
	}

	if !strings.Contains(result, "baseline (base)") {
		t.Error("Expected base marker in table")
	}

	if !strings.Contains(result, "baseline_rates_up_1") {
		t.Error("Expected alternative scenario in table")
	}

	if !strings.Contains(result, "$500.0K") {
		t.Error("Expected abbreviated buy net worth in table")
	}

	if !strings.Contains(result, "-$70.0K") {
		t.Error("Expected signed negative difference in table")
	}

	if !strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Expected comparison section")
	}

	if !strings.Contains(result, "-$150.0K toward renting") {
		t.Error("Expected outcome shift direction")
	}

	if !strings.Contains(result, "flips to rent") {
		t.Error("Expected verdict flip note")
	}

	if !strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("Expected recommendations section")
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}

	compSet := &ComparisonSet{
		BaseScenarioName: "baseline",
		BaseResult: &ComparisonResult{
			ScenarioName: "baseline",
			BuyNetWorth:  decimal.NewFromInt(500000),
			RentNetWorth: decimal.NewFromInt(420000),
			Difference:   decimal.NewFromInt(80000),
			Verdict:      VerdictBuy,
		},
		AlternativeResults: []ComparisonResult{},
		Recommendations:    []string{},
	}

	result := formatter.Format(compSet)

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	// Should still have header and base scenario
	if !strings.Contains(result, "BUY VS RENT SCENARIO COMPARISON") {
		t.Error("Expected header in output")
	}

	if !strings.Contains(result, "baseline (base)") {
		t.Error("Expected base scenario in table")
	}

	// Should not have delta sections for an empty set
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Should not have comparison section without alternatives")
	}

	if strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("Should not have recommendations section without recommendations")
	}
}

func TestTableFormatter_formatRow(t *testing.T) {
	formatter := &TableFormatter{}

	result := &ComparisonResult{
		ScenarioName: "city",
		BuyNetWorth:  decimal.NewFromInt(610000),
		RentNetWorth: decimal.NewFromInt(640000),
		Difference:   decimal.NewFromInt(-30000),
		Verdict:      VerdictRent,
	}

	baseRow := formatter.formatRow(result, 25, 14, true)
	if !strings.Contains(baseRow, "city (base)") {
		t.Errorf("Expected base marker in row, got %q", baseRow)
	}

	altRow := formatter.formatRow(result, 25, 14, false)
	if strings.Contains(altRow, "(base)") {
		t.Errorf("Should not mark alternative rows as base, got %q", altRow)
	}
	if !strings.Contains(altRow, "rent") {
		t.Errorf("Expected verdict in row, got %q", altRow)
	}
}

func TestTableFormatter_formatDecimal(t *testing.T) {
	formatter := &TableFormatter{}

	tests := []struct {
		value    decimal.Decimal
		expected string
	}{
		{decimal.NewFromInt(1500000), "1.50M"},
		{decimal.NewFromInt(2000000), "2.00M"},
		{decimal.NewFromInt(80000), "80.0K"},
		{decimal.NewFromInt(1000), "1.0K"},
		{decimal.NewFromInt(999), "999"},
		{decimal.NewFromInt(500), "500"},
		{decimal.Zero, "0"},
	}

	for _, test := range tests {
		got := formatter.formatDecimal(test.value)
		if got != test.expected {
			t.Errorf("formatDecimal(%s): expected %s, got %s", test.value, test.expected, got)
		}
	}
}

func TestTableFormatter_formatSigned(t *testing.T) {
	formatter := &TableFormatter{}

	if got := formatter.formatSigned(decimal.NewFromInt(80000)); got != "$80.0K" {
		t.Errorf("Expected $80.0K, got %s", got)
	}
	if got := formatter.formatSigned(decimal.NewFromInt(-70000)); got != "-$70.0K" {
		t.Errorf("Expected -$70.0K, got %s", got)
	}
	if got := formatter.formatSigned(decimal.NewFromInt(500)); got != "$500" {
		t.Errorf("Expected $500, got %s", got)
	}
}

func TestTableFormatter_truncate(t *testing.T) {
	formatter := &TableFormatter{}

	short := formatter.truncate("baseline", 25)
	if short != "baseline" {
		t.Errorf("Expected unchanged name, got %s", short)
	}

	long := formatter.truncate("a_very_long_scenario_name_indeed", 25)
	if len(long) != 25 {
		t.Errorf("Expected truncation to 25 characters, got %d", len(long))
	}
	if !strings.HasSuffix(long, "...") {
		t.Errorf("Expected ellipsis suffix, got %s", long)
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}

	compSet := &ComparisonSet{
		BaseScenarioName: "baseline",
		BaseResult: &ComparisonResult{
			ScenarioName: "baseline",
			Difference:   decimal.NewFromInt(80000),
			Verdict:      VerdictBuy,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:       "baseline_rates_up_1",
				DifferenceFromBase: decimal.NewFromInt(-150000),
			},
			{
				ScenarioName:       "baseline_rent_spike",
				DifferenceFromBase: decimal.NewFromInt(45000),
			},
		},
	}

	result := formatter.FormatCompact(compSet)

	if !strings.Contains(result, "Base: baseline (buy)") {
		t.Errorf("Expected base summary, got %s", result)
	}
	if !strings.Contains(result, "baseline_rates_up_1: -$150.0K") {
		t.Errorf("Expected negative shift, got %s", result)
	}
	if !strings.Contains(result, "baseline_rent_spike: +$45.0K") {
		t.Errorf("Expected positive shift, got %s", result)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	compSet := &ComparisonSet{
		BaseScenarioName: "baseline",
		BaseResult: &ComparisonResult{
			ScenarioName:   "baseline",
			BuyNetWorth:    decimal.NewFromInt(500000),
			RentNetWorth:   decimal.NewFromInt(420000),
			Difference:     decimal.NewFromInt(80000),
			AvgBuyMonthly:  decimal.NewFromInt(2800),
			AvgRentMonthly: decimal.NewFromInt(2100),
			Verdict:        VerdictBuy,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:       "baseline_rates_up_1",
				BuyNetWorth:        decimal.NewFromInt(380000),
				RentNetWorth:       decimal.NewFromInt(450000),
				Difference:         decimal.NewFromInt(-70000),
				Verdict:            VerdictRent,
				DifferenceFromBase: decimal.NewFromInt(-150000),
				VerdictFlipped:     true,
			},
		},
	}

	result, err := formatter.Format(compSet)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(result)).ReadAll()
	if err != nil {
		t.Fatalf("Expected parseable CSV, got: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}

	if records[0][0] != "Scenario" {
		t.Errorf("Expected Scenario header, got %s", records[0][0])
	}
	if records[1][1] != "base" {
		t.Errorf("Expected base row type, got %s", records[1][1])
	}
	if records[1][2] != "500000.00" {
		t.Errorf("Expected buy net worth 500000.00, got %s", records[1][2])
	}
	if records[2][1] != "alternative" {
		t.Errorf("Expected alternative row type, got %s", records[2][1])
	}
	if records[2][8] != "-150000.00" {
		t.Errorf("Expected difference from base -150000.00, got %s", records[2][8])
	}
	if records[2][9] != "true" {
		t.Errorf("Expected verdict flipped true, got %s", records[2][9])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{}

	compSet := &ComparisonSet{
		BaseScenarioName: "baseline",
		BaseResult: &ComparisonResult{
			ScenarioName: "baseline",
			BuyNetWorth:  decimal.NewFromInt(500000),
			RentNetWorth: decimal.NewFromInt(420000),
			Difference:   decimal.NewFromInt(80000),
			Verdict:      VerdictBuy,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:       "baseline_rates_up_1",
				Difference:         decimal.NewFromInt(-70000),
				Verdict:            VerdictRent,
				DifferenceFromBase: decimal.NewFromInt(-150000),
				VerdictFlipped:     true,
			},
		},
		Recommendations: []string{
			"Favors Renting: baseline_rates_up_1 shifts the outcome $150000 toward renting versus the base scenario",
		},
	}

	result, err := formatter.Format(compSet)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded ComparisonSet
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got: %v", err)
	}

	if decoded.BaseScenarioName != "baseline" {
		t.Errorf("Expected round-tripped base name, got %s", decoded.BaseScenarioName)
	}
	if len(decoded.AlternativeResults) != 1 {
		t.Errorf("Expected 1 alternative after round trip, got %d", len(decoded.AlternativeResults))
	}
	if !decoded.AlternativeResults[0].VerdictFlipped {
		t.Error("Expected verdict flip to survive the round trip")
	}

	if !strings.Contains(result, "\"baseScenarioName\"") {
		t.Error("Expected baseScenarioName field in JSON")
	}
	if strings.Contains(result, "\n") {
		t.Error("Compact output should not contain newlines")
	}
}

func TestJSONFormatter_Format_Pretty(t *testing.T) {
	formatter := &JSONFormatter{Pretty: true}

	compSet := &ComparisonSet{
		BaseScenarioName: "baseline",
		BaseResult: &ComparisonResult{
			ScenarioName: "baseline",
			Verdict:      VerdictBuy,
		},
	}

	result, err := formatter.Format(compSet)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(result, "\n  ") {
		t.Error("Expected indented output in pretty mode")
	}
}
