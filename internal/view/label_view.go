// Package view builds the language-resolved presentation of a label: the
// core and additional field rows shown on the page, and the flattened
// utterance read aloud by the speech engine.
package view

import (
	"strings"

	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/i18n"
)

// Row is a single title/value line on the rendered label.
type Row struct {
	Title string
	Value string
}

// LabelView is a Label resolved against one selected language.
type LabelView struct {
	Label *domain.Label

	// Languages is the selectable set; Selected is always a member of it.
	Languages []string
	Selected  string
	Countries []string

	Core       []Row
	Additional []Row
}

// Build resolves the label against the requested display locale. The
// selected language is the requested one when the label offers it, else the
// closest available match, else the first entry of the normalized set.
func Build(label *domain.Label, requested string) *LabelView {
	langs := label.LanguageSet()
	selected := i18n.MatchDisplayLocale(requested, langs)

	v := &LabelView{
		Label:     label,
		Languages: langs,
		Selected:  selected,
		Countries: i18n.Countries(langs),
	}
	v.Core = coreRows(label, selected)
	v.Additional = additionalRows(label, selected)
	return v
}

func coreRows(label *domain.Label, lang string) []Row {
	rows := []Row{
		{Title: i18n.T(lang, i18n.KeyTrialID), Value: label.TrialIdentifier},
	}
	if label.SponsorName != "" {
		rows = append(rows, Row{Title: i18n.T(lang, i18n.KeySponsorName), Value: label.SponsorName})
	}
	rows = append(rows,
		Row{Title: i18n.T(lang, i18n.KeyProtocolNumber), Value: label.ProtocolNumber},
		Row{Title: i18n.T(lang, i18n.KeyProductName), Value: label.ProductName},
		Row{Title: i18n.T(lang, i18n.KeyIdentifierCode), Value: label.IdentifierCode},
		Row{Title: i18n.T(lang, i18n.KeyBatchNumber), Value: label.BatchNumber},
		Row{Title: i18n.T(lang, i18n.KeyExpiryDate), Value: expiry(label, lang)},
	)
	if label.KitNumber != "" {
		rows = append(rows, Row{Title: i18n.T(lang, i18n.KeyKitNumber), Value: label.KitNumber})
	}
	return rows
}

func additionalRows(label *domain.Label, lang string) []Row {
	cats := label.FieldCategories()
	rows := make([]Row, 0, len(cats))
	for _, cat := range cats {
		rows = append(rows, Row{
			Title: i18n.CategoryTitle(lang, cat),
			Value: label.CustomField(cat, lang),
		})
	}
	return rows
}

func expiry(label *domain.Label, lang string) string {
	if label.ExpiryDate == "" {
		return domain.Placeholder
	}
	return i18n.FormatDate(label.ExpiryDate, lang)
}

// AdditionalTitle is the localized heading above the custom field rows.
func (v *LabelView) AdditionalTitle() string {
	return i18n.T(v.Selected, i18n.KeyAdditionalInfo)
}

// SpeechText flattens the label into the utterance for read-aloud: protocol,
// product, batch, expiry, then every custom field, each as "Title: value."
func SpeechText(label *domain.Label, lang string) string {
	parts := []Row{
		{Title: i18n.T(lang, i18n.KeyProtocolNumber), Value: label.ProtocolNumber},
		{Title: i18n.T(lang, i18n.KeyProductName), Value: label.ProductName},
		{Title: i18n.T(lang, i18n.KeyBatchNumber), Value: label.BatchNumber},
		{Title: i18n.T(lang, i18n.KeyExpiryDate), Value: expiry(label, lang)},
	}
	parts = append(parts, additionalRows(label, lang)...)

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Title)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString(". ")
	}
	return strings.TrimSpace(b.String())
}
