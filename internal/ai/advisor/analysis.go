package advisor

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Report is the structured resume analysis returned to clients.
type Report struct {
	Score       Score         `json:"score"`
	Analysis    Analysis      `json:"analysis"`
	Keywords    *KeywordMatch `json:"keywords,omitempty"`
	Suggestions []string      `json:"suggestions"`
}

type Score struct {
	Overall  Points `json:"overall"`
	Content  Points `json:"content"`
	Keywords Points `json:"keywords"`
	Format   Points `json:"format"`
}

type Analysis struct {
	ATSCompatibility  []string `json:"atsCompatibility"`
	GrammarIssues     []string `json:"grammarIssues"`
	SentimentFeedback []string `json:"sentimentFeedback"`
}

// KeywordMatch is only present when the analysis ran against a job description.
type KeywordMatch struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// Points is a 0-100 score. Models sometimes quote numbers or write "85/100",
// so the leading number of a string is used. Anything else decodes to 0.
type Points float64

var leadingNumber = regexp.MustCompile(`^-?\d+(\.\d+)?`)

func (p *Points) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Points(n)
		return nil
	}

	*p = 0
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if n, err := strconv.ParseFloat(leadingNumber.FindString(strings.TrimSpace(s)), 64); err == nil {
		*p = Points(n)
	}
	return nil
}

// notes is a list of feedback lines. Non-string items keep their JSON text and
// a lone string becomes a single line.
type notes []string

func (n *notes) UnmarshalJSON(data []byte) error {
	if !isPresent(data) {
		*n = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*n = notes{single}
		return nil
	}

	lines, ok := decodeArray(string(data))
	if !ok {
		*n = nil
		return nil
	}
	*n = lines
	return nil
}

// wireReport is the shape the model is asked for. Sections that do not match
// it are left empty instead of failing the whole reply.
type wireReport struct {
	Score       json.RawMessage `json:"score"`
	Analysis    json.RawMessage `json:"analysis"`
	Keywords    json.RawMessage `json:"keywords"`
	Suggestions notes           `json:"suggestions"`
}

type wireAnalysis struct {
	ATSCompatibility  notes `json:"atsCompatibility"`
	GrammarIssues     notes `json:"grammarIssues"`
	SentimentFeedback notes `json:"sentimentFeedback"`
}

type wireKeywords struct {
	Found   notes `json:"found"`
	Missing notes `json:"missing"`
}

// FallbackReport is returned whenever the model reply cannot be read.
func FallbackReport() *Report {
	return &Report{
		Score: Score{Overall: 70, Content: 70, Keywords: 70, Format: 70},
		Analysis: Analysis{
			ATSCompatibility:  []string{"Could not analyze ATS compatibility"},
			GrammarIssues:     []string{"Could not analyze grammar"},
			SentimentFeedback: []string{"Could not analyze sentiment"},
		},
		Suggestions: []string{"Could not generate suggestions"},
	}
}

type reportStrategy func(reply string) (*Report, bool)

var reportStrategies = []reportStrategy{
	decodeReport,
	fencedReport,
	func(string) (*Report, bool) { return FallbackReport(), true },
}

// ParseReport turns a model reply into a report, degrading to FallbackReport.
func ParseReport(reply string) *Report {
	for _, strategy := range reportStrategies {
		if report, ok := strategy(reply); ok {
			return report
		}
	}
	return FallbackReport()
}

func decodeReport(reply string) (*Report, bool) {
	trimmed := bytes.TrimSpace([]byte(reply))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var wire wireReport
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, false
	}

	report := &Report{Suggestions: wire.Suggestions}
	decodeSection(wire.Score, &report.Score)

	var analysis wireAnalysis
	decodeSection(wire.Analysis, &analysis)
	report.Analysis = Analysis{
		ATSCompatibility:  analysis.ATSCompatibility,
		GrammarIssues:     analysis.GrammarIssues,
		SentimentFeedback: analysis.SentimentFeedback,
	}

	if isPresent(wire.Keywords) {
		var keywords wireKeywords
		decodeSection(wire.Keywords, &keywords)
		report.Keywords = &KeywordMatch{Found: keywords.Found, Missing: keywords.Missing}
	}

	report.normalize()
	return report, true
}

// decodeSection fills v from raw when raw is an object of the expected shape.
func decodeSection(raw json.RawMessage, v any) {
	if !isPresent(raw) {
		return
	}
	_ = json.Unmarshal(raw, v)
}

func isPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// fencedReport handles replies wrapped in a ```json ... ``` block.
func fencedReport(reply string) (*Report, bool) {
	body := strings.TrimSpace(reply)
	if !strings.HasPrefix(body, "```") {
		return nil, false
	}
	body = strings.TrimPrefix(body, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		return nil, false
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return decodeReport(body)
}

// normalize replaces missing lists with empty ones so they render as [].
func (r *Report) normalize() {
	if r.Analysis.ATSCompatibility == nil {
		r.Analysis.ATSCompatibility = []string{}
	}
	if r.Analysis.GrammarIssues == nil {
		r.Analysis.GrammarIssues = []string{}
	}
	if r.Analysis.SentimentFeedback == nil {
		r.Analysis.SentimentFeedback = []string{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	if r.Keywords != nil {
		if r.Keywords.Found == nil {
			r.Keywords.Found = []string{}
		}
		if r.Keywords.Missing == nil {
			r.Keywords.Missing = []string{}
		}
	}
}
