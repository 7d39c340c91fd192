package domain

import (
	"sort"
	"strings"
)

// DefaultLanguage is assumed whenever a label declares no languages at all.
const DefaultLanguage = "en"

// Placeholder is rendered in place of a translation that a label does not
// carry for the selected language. Absence of a translation is valid.
const Placeholder = "—"

// LabelMetadata records provenance; it is not shown prominently in the UI.
type LabelMetadata struct {
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

// Label is the record describing one physical clinical-trial product label,
// as exchanged with the upstream label API.
//
// A label is addressable either by its globally unique identifier code or by
// the (sponsor, trial, batch-or-kit) triple; at least one complete lookup
// path is present on every stored label.
type Label struct {
	LabelType       string `json:"labelType"`
	SponsorName     string `json:"sponsorName"`
	TemplateVersion int    `json:"templateVersion"`
	TrialIdentifier string `json:"trialIdentifier"`
	ProtocolNumber  string `json:"protocolNumber"`
	ProductName     string `json:"productName"`
	IdentifierCode  string `json:"identifierCode"`
	BatchNumber     string `json:"batchNumber"`
	ExpiryDate      string `json:"expiryDate"`
	KitNumber       string `json:"kitNumber,omitempty"`

	// CustomFields maps a field category ("dosage", "warning", ...) to its
	// localized texts, keyed by language tag. A language selectable on the
	// label may be missing from any sub-map.
	CustomFields map[string]map[string]string `json:"customFields"`

	// Languages lists the language tags the label content is available in.
	// May contain duplicates or be empty as delivered by the backend; use
	// LanguageSet for the normalized view.
	Languages []string `json:"languages"`

	Metadata LabelMetadata `json:"metadata"`
}

// LanguageSet returns the selectable languages for this label: deduplicated
// and sorted. An empty or missing language list normalizes to ["en"].
func (l *Label) LanguageSet() []string {
	if len(l.Languages) == 0 {
		return []string{DefaultLanguage}
	}

	seen := make(map[string]struct{}, len(l.Languages))
	out := make([]string, 0, len(l.Languages))
	for _, tag := range l.Languages {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return []string{DefaultLanguage}
	}

	sort.Strings(out)
	return out
}

// CustomField returns the localized text for the given category and language,
// or the placeholder when the translation is absent.
func (l *Label) CustomField(category, lang string) string {
	translations, ok := l.CustomFields[category]
	if !ok {
		return Placeholder
	}
	val, ok := translations[lang]
	if !ok || val == "" {
		return Placeholder
	}
	return val
}

// FieldCategories returns the custom field category names in a stable order.
func (l *Label) FieldCategories() []string {
	cats := make([]string, 0, len(l.CustomFields))
	for cat := range l.CustomFields {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
