package receipt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"Grocery-Tracker/domain"
)

const extractionPrompt = `You are given the raw OCR text of a grocery receipt.
List every distinct grocery item bought. Merge duplicates into one entry.
Prefix each name with a single fitting food emoji, for example "🥛 Milk".
For each item estimate how many whole days from today until it spoils.

Respond ONLY with a JSON array, no prose and no markdown, where each element is
{"name": string, "perishInDays": integer}

Receipt text:
%s`

// BuildExtractionPrompt wraps normalized receipt text in the extraction
// instructions.
func BuildExtractionPrompt(receiptText string) string {
	return fmt.Sprintf(extractionPrompt, receiptText)
}

// ParseExtraction reads the model's answer. The payload must be a JSON array
// of objects each carrying a non-empty "name"; anything else is rejected as a
// whole. A missing or non-numeric "perishInDays" counts as zero.
func ParseExtraction(response string) ([]domain.ExtractedEntry, error) {
	payload := stripCodeFence(response)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrExtractionParse)
	}

	var raw []map[string]json.RawMessage
	dec := json.NewDecoder(strings.NewReader(payload))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after array", domain.ErrExtractionParse)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an array", domain.ErrExtractionParse)
	}

	entries := make([]domain.ExtractedEntry, 0, len(raw))
	for i, obj := range raw {
		if obj == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", domain.ErrExtractionParse, i)
		}

		var name string
		if err := json.Unmarshal(obj["name"], &name); err != nil || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: element %d has no name", domain.ErrExtractionParse, i)
		}

		entries = append(entries, domain.ExtractedEntry{
			Name:         strings.TrimSpace(name),
			PerishInDays: perishDays(obj["perishInDays"]),
		})
	}
	return entries, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence, on one line or
// several.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimLeft(strings.TrimPrefix(s, "```"), " \t")
	// drop the info string ("json", "JSON", ...)
	s = strings.TrimLeftFunc(s, isInfoRune)
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isInfoRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func perishDays(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return numberToDays(string(n))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return numberToDays(strings.TrimSpace(s))
	}
	return 0
}

// numberToDays reads an integer or truncates a decimal. Anything outside
// ±domain.MaxPerishInDays is unusable and becomes 0.
func numberToDays(s string) int {
	if i, err := strconv.Atoi(s); err == nil {
		if i > domain.MaxPerishInDays || i < -domain.MaxPerishInDays {
			return 0
		}
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f > domain.MaxPerishInDays || f < -domain.MaxPerishInDays {
		return 0
	}
	return int(f)
}
