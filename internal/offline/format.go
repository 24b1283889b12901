package offline

import (
	"fmt"
	"strings"

	"arogya-mitr/internal/dataset"
)

func bulleted(items []dataset.Text, lang dataset.Language) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "• "+it.In(lang))
	}
	return strings.Join(lines, "\n")
}

// FormatGeneralInfo renders a disease record into the multi-paragraph
// general-information template, closed with the educational disclaimer.
func FormatGeneralInfo(d dataset.Disease, lang dataset.Language) string {
	if lang.Hindi() {
		return fmt.Sprintf(`%s के बारे में जानकारी:

लक्षण:
%s

बचाव:
%s

उपचार:
%s

%s`, d.Name.HI, bulleted(d.Symptoms, lang), bulleted(d.Prevention, lang), bulleted(d.Treatment, lang), disclaimerHI)
	}
	return fmt.Sprintf(`Information about %s:

Symptoms:
%s

Prevention:
%s

Treatment:
%s

%s`, d.Name.EN, bulleted(d.Symptoms, lang), bulleted(d.Prevention, lang), bulleted(d.Treatment, lang), disclaimerEN)
}

// FormatEmergencyInfo renders the four emergency protocol fields into the
// fixed four-line format. The bracketed labels stay in English in both
// language variants.
func FormatEmergencyInfo(d dataset.Disease, lang dataset.Language) string {
	e := d.Emergency
	return fmt.Sprintf("[Immediate Action] → %s\n[What NOT to Do] → %s\n[Red Flags] → %s\n[Emergency Help] → %s",
		e.ImmediateAction.In(lang), e.WhatNotToDo.In(lang), e.RedFlags.In(lang), e.EmergencyHelp.In(lang))
}

// ailmentCategories maps the fixed shortlist of common, non-serious ailments
// to a medicine category. Anything outside this map gets the decline
// sentence, regardless of what the dataset contains.
var ailmentCategories = map[string]string{
	"fever":           "infectious",
	"cough":           "respiratory",
	"cold":            "respiratory",
	"sore throat":     "respiratory",
	"headache":        "pain",
	"body pain":       "pain",
	"muscle pain":     "pain",
	"joint pain":      "pain",
	"stomach pain":    "digestive",
	"indigestion":     "digestive",
	"constipation":    "digestive",
	"diarrhea":        "digestive",
	"nausea":          "digestive",
	"skin irritation": "skin",
	"sleep issues":    "sleep",
	"stress":          "sleep",

	"बुखार":              "infectious",
	"खांसी":              "respiratory",
	"सर्दी":              "respiratory",
	"गले में खराश":       "respiratory",
	"सिरदर्द":            "pain",
	"बदन दर्द":           "pain",
	"मांसपेशियों में दर्द": "pain",
	"जोड़ों का दर्द":      "pain",
	"पेट दर्द":           "digestive",
	"अपच":                "digestive",
	"कब्ज":               "digestive",
	"दस्त":               "digestive",
	"जी मिचलाना":         "digestive",
	"त्वचा में जलन":      "skin",
	"नींद न आना":         "sleep",
	"तनाव":               "sleep",
}

// AilmentCategory resolves an ailment name through the shortlist. The lookup
// is case-insensitive on the trimmed name.
func AilmentCategory(ailment string) (string, bool) {
	cat, ok := ailmentCategories[strings.ToLower(strings.TrimSpace(ailment))]
	return cat, ok
}

// FormatMedicineInfo renders medicine suggestions for an ailment. Unknown
// ailments yield the decline sentence; a known category with no bundled
// medicines yields the no-suggestions sentence.
func FormatMedicineInfo(ailment string, meds []dataset.Medicine, known bool, lang dataset.Language) string {
	if !known {
		if lang.Hindi() {
			return declineHI
		}
		return declineEN
	}
	if len(meds) == 0 {
		if lang.Hindi() {
			return noSuggestionsHI
		}
		return noSuggestionsEN
	}

	var b strings.Builder
	if lang.Hindi() {
		b.WriteString("**सुझाई गई दवाएं**\n")
		for _, m := range meds {
			fmt.Fprintf(&b, "• %s – %s – %s\n", m.Name.HI, m.Dosage.HI, m.Timing.HI)
		}
		b.WriteString("\n**ध्यान दें**\n")
		b.WriteString("• ये सुझाव केवल अस्थायी राहत के लिए हैं\n")
		b.WriteString("• दवा लेने से पहले लेबल पढ़ें\n")
		b.WriteString("• बताई गई खुराक से अधिक न लें\n")
		b.WriteString("\n**डॉक्टर से कब मिलें**\n")
		b.WriteString("• लक्षण 3 दिन से अधिक रहें\n")
		b.WriteString("• तेज बुखार, तेज दर्द या सांस की तकलीफ हो")
		return b.String()
	}
	b.WriteString("**Suggested Medicines**\n")
	for _, m := range meds {
		fmt.Fprintf(&b, "• %s – %s – %s\n", m.Name.EN, m.Dosage.EN, m.Timing.EN)
	}
	b.WriteString("\n**Notes**\n")
	b.WriteString("• These suggestions are for temporary relief only\n")
	b.WriteString("• Read medicine labels before taking\n")
	b.WriteString("• Do not exceed the stated dose\n")
	b.WriteString("\n**When to See a Doctor**\n")
	b.WriteString("• If symptoms persist beyond 3 days\n")
	b.WriteString("• If high fever, severe pain, or breathing difficulty develops")
	return b.String()
}
