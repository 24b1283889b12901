// Package triage decides whether a free-text health query describes an
// emergency, using a fixed bilingual keyword list.
package triage

import "strings"

var emergencyKeywords = []string{
	"emergency", "urgent", "critical", "heart attack", "stroke", "bleeding",
	"unconscious", "seizure", "choking", "poison", "burn", "fracture",
	"breathing", "chest pain", "severe", "acute", "trauma", "accident",
	"अत्यावश्यक", "आपातकाल", "दिल का दौरा", "स्ट्रोक", "खून बहना",
	"बेहोशी", "दौरा", "दम घुटना", "जहर", "जलना", "फ्रैक्चर",
	"सांस लेने में", "छाती में दर्द", "गंभीर", "तीव्र", "चोट", "दुर्घटना",
}

// IsEmergency reports whether any emergency keyword occurs as a substring of
// the lowercased text. There is no tokenization, so compound words
// containing a keyword ("accidental") also match.
func IsEmergency(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
