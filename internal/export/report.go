package export

import (
	"encoding/json"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// ReportData carries everything the printable report shows.
type ReportData struct {
	GeneratedAt time.Time
	Currency    string
	Baseline    model.Baseline
	Inputs      model.ScenarioInputs
	Base        model.ForecastResult
	Current     model.ForecastResult
	Scenarios   []model.Scenario
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"months": func(v float64) string {
		if math.IsInf(v, 1) {
			return "∞"
		}
		return num(v)
	},
	"num": num,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Runway Forecast Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #999; padding: 4px 10px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
.meta { color: #666; font-size: 0.85em; }
</style>
</head>
<body>
<h1>Runway Forecast Report</h1>
<p class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
<table>
<tr><th>Metric</th><th>Base Case</th><th>Current Scenario</th></tr>
<tr><td>Runway (months)</td><td>{{months .Base.Runway}}</td><td>{{months .Current.Runway}}</td></tr>
<tr><td>Monthly Burn ({{.Currency}})</td><td>{{num .Base.Burn}}</td><td>{{num .Current.Burn}}</td></tr>
<tr><td>Bank Balance ({{.Currency}})</td><td colspan="2">{{num .Baseline.BankBalance}}</td></tr>
<tr><td>Monthly Spend ({{.Currency}})</td><td>0</td><td>{{num .Inputs.MonthlySpend}}</td></tr>
<tr><td>One-time Spend ({{.Currency}})</td><td>0</td><td>{{num .Inputs.OneTimeSpend}}</td></tr>
<tr><td>Price Change (%)</td><td>0</td><td>{{num .Inputs.PriceChange}}</td></tr>
</table>
{{if .Scenarios}}
<h2>Saved Scenarios</h2>
<table>
<tr><th>Name</th><th>Runway (months)</th><th>Monthly Burn ({{.Currency}})</th></tr>
{{range .Scenarios}}
<tr><td>{{.Name}}</td><td>{{months .Runway}}</td><td>{{num .Burn}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

// WriteHTML renders the printable report. The caller opens it in a browser
// and uses print-to-PDF; no PDF is produced directly.
func WriteHTML(w io.Writer, data ReportData) error {
	return reportTmpl.Execute(w, data)
}

// jsonReport mirrors ReportData with stable field names for machine use.
type jsonReport struct {
	GeneratedAt time.Time            `json:"generatedAt"`
	Currency    string               `json:"currency"`
	Baseline    model.Baseline       `json:"baseline"`
	Inputs      model.ScenarioInputs `json:"inputs"`
	Base        model.ForecastResult `json:"base"`
	Current     model.ForecastResult `json:"current"`
	Scenarios   []model.Scenario     `json:"scenarios,omitempty"`
}

// WriteJSON writes the report as indented JSON. Infinite runway is encoded
// as -1 since JSON has no Inf literal.
func WriteJSON(w io.Writer, data ReportData) error {
	r := jsonReport{
		GeneratedAt: data.GeneratedAt,
		Currency:    data.Currency,
		Baseline:    data.Baseline,
		Inputs:      data.Inputs,
		Base:        sanitize(data.Base),
		Current:     sanitize(data.Current),
		Scenarios:   make([]model.Scenario, len(data.Scenarios)),
	}
	for i, s := range data.Scenarios {
		if math.IsInf(s.Runway, 1) {
			s.Runway = -1
		}
		r.Scenarios[i] = s
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// sanitize clamps infinite runway to -1 so the result marshals.
func sanitize(r model.ForecastResult) model.ForecastResult {
	if math.IsInf(r.Runway, 1) {
		r.Runway = -1
	}
	return r
}
