package advisor

import (
	"encoding/json"
	"regexp"
	"strings"
)

// keywordStrategy returns ok=false to hand the reply to the next strategy.
type keywordStrategy func(reply string) ([]string, bool)

var (
	bracketSpan     = regexp.MustCompile(`(?s)\[.*\]`)
	keywordSplitter = regexp.MustCompile(`[,\n]`)
)

var keywordStrategies = []keywordStrategy{
	wholeReplyArray,
	bracketedArray,
	splitTokens,
}

// ParseKeywords turns a model reply into a keyword list. It never fails.
func ParseKeywords(reply string) []string {
	for _, strategy := range keywordStrategies {
		if keywords, ok := strategy(reply); ok {
			return keywords
		}
	}
	return []string{}
}

// wholeReplyArray settles any reply that is valid JSON. A value other than an
// array carries no keywords.
func wholeReplyArray(reply string) ([]string, bool) {
	if !json.Valid([]byte(reply)) {
		return nil, false
	}
	if keywords, ok := decodeArray(reply); ok {
		return keywords, true
	}
	return []string{}, true
}

func bracketedArray(reply string) ([]string, bool) {
	span := bracketSpan.FindString(reply)
	if span == "" {
		return nil, false
	}
	return decodeArray(span)
}

func splitTokens(reply string) ([]string, bool) {
	keywords := []string{}
	for _, word := range keywordSplitter.Split(reply, -1) {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		keywords = append(keywords, strings.Trim(word, `"'[]`))
	}
	return keywords, true
}

func decodeArray(s string) ([]string, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err != nil || items == nil {
		return nil, false
	}

	keywords := make([]string, 0, len(items))
	for _, item := range items {
		var str string
		if err := json.Unmarshal(item, &str); err == nil {
			keywords = append(keywords, str)
			continue
		}
		keywords = append(keywords, string(item))
	}
	return keywords, true
}
