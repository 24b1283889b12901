package dataset

import "fmt"

// Language selects which variant of a bilingual text is rendered. The UI
// supports a wider set of language codes, but bundled content exists in
// English and Hindi only; every other code falls back to English.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
)

func (l Language) Hindi() bool { return l == LangHindi }

// LanguageFor maps any UI language code onto a bundled content language.
// Only Hindi has its own copy; everything else reads the English one.
func LanguageFor(code string) Language {
	if code == string(LangHindi) {
		return LangHindi
	}
	return LangEnglish
}

// Text is a string present in both bundled languages. A record with either
// variant missing is invalid.
type Text struct {
	EN string `json:"en"`
	HI string `json:"hi"`
}

func (t Text) In(lang Language) string {
	if lang.Hindi() {
		return t.HI
	}
	return t.EN
}

func (t Text) validate(field string) error {
	if t.EN == "" || t.HI == "" {
		return fmt.Errorf("%s: both language variants are required", field)
	}
	return nil
}

// EmergencyProtocol holds the four labeled fields rendered by the fixed
// emergency response format.
type EmergencyProtocol struct {
	ImmediateAction Text `json:"immediate_action"`
	WhatNotToDo     Text `json:"what_not_to_do"`
	RedFlags        Text `json:"red_flags"`
	EmergencyHelp   Text `json:"emergency_help"`
}

func (p EmergencyProtocol) validate() error {
	if err := p.ImmediateAction.validate("emergency.immediate_action"); err != nil {
		return err
	}
	if err := p.WhatNotToDo.validate("emergency.what_not_to_do"); err != nil {
		return err
	}
	if err := p.RedFlags.validate("emergency.red_flags"); err != nil {
		return err
	}
	return p.EmergencyHelp.validate("emergency.emergency_help")
}

// Disease is a static record of the bundled table. Loaded once at startup,
// immutable thereafter.
type Disease struct {
	ID         string            `json:"id"`
	Name       Text              `json:"name"`
	Category   string            `json:"category"`
	Symptoms   []Text            `json:"symptoms"`
	Prevention []Text            `json:"prevention"`
	Treatment  []Text            `json:"treatment"`
	Emergency  EmergencyProtocol `json:"emergency"`
}

func (d Disease) validate() error {
	if d.ID == "" {
		return fmt.Errorf("disease with empty id")
	}
	if err := d.Name.validate("name"); err != nil {
		return fmt.Errorf("disease %s: %w", d.ID, err)
	}
	if d.Category == "" {
		return fmt.Errorf("disease %s: category is required", d.ID)
	}
	for name, list := range map[string][]Text{
		"symptoms":   d.Symptoms,
		"prevention": d.Prevention,
		"treatment":  d.Treatment,
	} {
		if len(list) == 0 {
			return fmt.Errorf("disease %s: %s must not be empty", d.ID, name)
		}
		for i, item := range list {
			if err := item.validate(fmt.Sprintf("%s[%d]", name, i)); err != nil {
				return fmt.Errorf("disease %s: %w", d.ID, err)
			}
		}
	}
	if err := d.Emergency.validate(); err != nil {
		return fmt.Errorf("disease %s: %w", d.ID, err)
	}
	return nil
}

// Medicine is a static over-the-counter suggestion record. Its category
// shares the disease category domain.
type Medicine struct {
	ID       string `json:"id"`
	Name     Text   `json:"name"`
	Dosage   Text   `json:"dosage"`
	Timing   Text   `json:"timing"`
	Category string `json:"category"`
}

func (m Medicine) validate() error {
	if m.ID == "" {
		return fmt.Errorf("medicine with empty id")
	}
	if err := m.Name.validate("name"); err != nil {
		return fmt.Errorf("medicine %s: %w", m.ID, err)
	}
	if err := m.Dosage.validate("dosage"); err != nil {
		return fmt.Errorf("medicine %s: %w", m.ID, err)
	}
	if err := m.Timing.validate("timing"); err != nil {
		return fmt.Errorf("medicine %s: %w", m.ID, err)
	}
	if m.Category == "" {
		return fmt.Errorf("medicine %s: category is required", m.ID)
	}
	return nil
}
