// Package i18n holds the translation strings for label field titles, the
// locale-aware date formatting used on rendered labels, and the mapping
// between language tags and the country tokens shown by the flag selector.
package i18n

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Translation keys used by the renderer.
const (
	KeyTrialID        = "trialID"
	KeySponsorName    = "sponsorName"
	KeyProtocolNumber = "protocolNumber"
	KeyProductName    = "productName"
	KeyIdentifierCode = "identifierCode"
	KeyBatchNumber    = "batchNumber"
	KeyExpiryDate     = "expiryDate"
	KeyKitNumber      = "kitNumber"
	KeyAdditionalInfo = "additionalInformation"
)

var translations = map[string]map[string]string{
	"en": {
		KeyTrialID:         "Trial ID",
		KeySponsorName:     "Sponsor Name",
		KeyProtocolNumber:  "Protocol Number",
		KeyProductName:     "Product Name",
		KeyIdentifierCode:  "Identifier Code",
		KeyBatchNumber:     "Batch Number",
		KeyExpiryDate:      "Expiry Date",
		KeyKitNumber:       "Kit Number",
		KeyAdditionalInfo:  "Additional Information",
		"dosage":           "Dosage",
		"manufacturing":    "Manufacturing",
		"warning":          "Warning",
		"adverseReactions": "Adverse Reactions",
	},
	"es": {
		KeyTrialID:         "ID del ensayo",
		KeySponsorName:     "Nombre del promotor",
		KeyProtocolNumber:  "Número de protocolo",
		KeyProductName:     "Nombre del producto",
		KeyIdentifierCode:  "Código identificador",
		KeyBatchNumber:     "Número de lote",
		KeyExpiryDate:      "Fecha de caducidad",
		KeyKitNumber:       "Número de kit",
		KeyAdditionalInfo:  "Información adicional",
		"dosage":           "Dosis",
		"manufacturing":    "Fabricación",
		"warning":          "Advertencia",
		"adverseReactions": "Reacciones adversas",
	},
	"fr": {
		KeyTrialID:         "ID de l'essai",
		KeySponsorName:     "Nom du promoteur",
		KeyProtocolNumber:  "Numéro de protocole",
		KeyProductName:     "Nom du produit",
		KeyIdentifierCode:  "Code identifiant",
		KeyBatchNumber:     "Numéro de lot",
		KeyExpiryDate:      "Date de péremption",
		KeyKitNumber:       "Numéro de kit",
		KeyAdditionalInfo:  "Informations complémentaires",
		"dosage":           "Posologie",
		"manufacturing":    "Fabrication",
		"warning":          "Avertissement",
		"adverseReactions": "Effets indésirables",
	},
	"de": {
		KeyTrialID:         "Studien-ID",
		KeySponsorName:     "Sponsor",
		KeyProtocolNumber:  "Protokollnummer",
		KeyProductName:     "Produktname",
		KeyIdentifierCode:  "Kennzeichnungscode",
		KeyBatchNumber:     "Chargennummer",
		KeyExpiryDate:      "Verfallsdatum",
		KeyKitNumber:       "Kit-Nummer",
		KeyAdditionalInfo:  "Zusätzliche Informationen",
		"dosage":           "Dosierung",
		"manufacturing":    "Herstellung",
		"warning":          "Warnhinweis",
		"adverseReactions": "Nebenwirkungen",
	},
	"ja": {
		KeyTrialID:         "試験ID",
		KeySponsorName:     "治験依頼者名",
		KeyProtocolNumber:  "プロトコル番号",
		KeyProductName:     "製品名",
		KeyIdentifierCode:  "識別コード",
		KeyBatchNumber:     "ロット番号",
		KeyExpiryDate:      "使用期限",
		KeyKitNumber:       "キット番号",
		KeyAdditionalInfo:  "追加情報",
		"dosage":           "用量",
		"manufacturing":    "製造",
		"warning":          "警告",
		"adverseReactions": "副作用",
	},
	"hi": {
		KeyTrialID:         "परीक्षण आईडी",
		KeySponsorName:     "प्रायोजक का नाम",
		KeyProtocolNumber:  "प्रोटोकॉल संख्या",
		KeyProductName:     "उत्पाद का नाम",
		KeyIdentifierCode:  "पहचान कोड",
		KeyBatchNumber:     "बैच संख्या",
		KeyExpiryDate:      "समाप्ति तिथि",
		KeyKitNumber:       "किट संख्या",
		KeyAdditionalInfo:  "अतिरिक्त जानकारी",
		"dosage":           "खुराक",
		"manufacturing":    "निर्माण",
		"warning":          "चेतावनी",
		"adverseReactions": "प्रतिकूल प्रतिक्रियाएँ",
	},
	"fi": {
		KeyTrialID:         "Tutkimustunnus",
		KeySponsorName:     "Toimeksiantajan nimi",
		KeyProtocolNumber:  "Protokollanumero",
		KeyProductName:     "Valmisteen nimi",
		KeyIdentifierCode:  "Tunnistekoodi",
		KeyBatchNumber:     "Eränumero",
		KeyExpiryDate:      "Viimeinen käyttöpäivä",
		KeyKitNumber:       "Pakkausnumero",
		KeyAdditionalInfo:  "Lisätiedot",
		"dosage":           "Annostus",
		"manufacturing":    "Valmistus",
		"warning":          "Varoitus",
		"adverseReactions": "Haittavaikutukset",
	},
}

// baseOf reduces a tag like "es-ES" to its base language "es".
func baseOf(tag string) string {
	if t, err := language.Parse(tag); err == nil {
		base, _ := t.Base()
		return base.String()
	}
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return strings.ToLower(tag[:i])
	}
	return strings.ToLower(tag)
}

// T returns the translation for key in the given language, falling back to
// the base language, then English, then the key itself.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if table, ok := translations[baseOf(lang)]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations["en"][key]; ok {
		return s
	}
	return key
}

// CategoryTitle localizes a custom field category name, title-casing unknown
// categories instead of showing the raw key.
func CategoryTitle(lang, category string) string {
	title := T(lang, category)
	if title != category {
		return title
	}
	if category == "" {
		return category
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

var mondayLocales = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"es": monday.LocaleEsES,
	"fr": monday.LocaleFrFR,
	"de": monday.LocaleDeDE,
	"ja": monday.LocaleJaJP,
	"fi": monday.LocaleFiFI,
}

var dateLayouts = map[string]string{
	"en": "January 2, 2006",
	"es": "2 de January de 2006",
	"fr": "2 January 2006",
	"de": "2. January 2006",
	"ja": "2006年1月2日",
	"fi": "2. January 2006",
}

// FormatDate renders an ISO date string with the language's date
// conventions, in UTC. Unparseable input and unknown languages degrade to
// the English convention; an empty date yields "".
func FormatDate(isoDate, lang string) string {
	if isoDate == "" {
		return ""
	}

	t, err := time.ParseInLocation("2006-01-02", isoDate, time.UTC)
	if err != nil {
		parsed, rfcErr := time.Parse(time.RFC3339, isoDate)
		if rfcErr != nil {
			return isoDate
		}
		t = parsed.UTC()
	}

	base := baseOf(lang)
	locale, ok := mondayLocales[base]
	if !ok {
		base, locale = "en", monday.LocaleEnUS
	}
	layout, ok := dateLayouts[base]
	if !ok {
		layout = dateLayouts["en"]
	}
	return monday.Format(t, layout, locale)
}
