// Package i18n translates the handful of strings dayclock displays in
// generated output
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	UnnamedSession = "Unnamed Session"
	DayChartTitle  = "24-Hour Activity"
	AMChartTitle   = "00:00 - 12:00"
	PMChartTitle   = "12:00 - 24:00"
	Legend         = "Legend"
	Idle           = "Idle"
	NoChartData    = "No session information available to display charts."
	Overview       = "Activity Overview"
)

var supported = []language.Tag{
	language.English,
	language.Persian,
}

var matcher = language.NewMatcher(supported)

var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	en := map[string]string{
		UnnamedSession: "Unnamed Session",
		DayChartTitle:  "24-Hour Activity",
		AMChartTitle:   "00:00 - 12:00",
		PMChartTitle:   "12:00 - 24:00",
		Legend:         "Legend",
		Idle:           "Idle",
		NoChartData:    "No session information available to display charts.",
		Overview:       "Activity Overview",
	}

	fa := map[string]string{
		UnnamedSession: "جلسه بدون نام",
		DayChartTitle:  "فعالیت ۲۴ ساعته",
		AMChartTitle:   "۰۰:۰۰ - ۱۲:۰۰",
		PMChartTitle:   "۱۲:۰۰ - ۲۴:۰۰",
		Legend:         "راهنما",
		Idle:           "بیکار",
		NoChartData:    "اطلاعاتی برای نمایش نمودار وجود ندارد.",
		Overview:       "نمای کلی فعالیت",
	}

	for k, v := range en {
		_ = b.SetString(language.English, k, v)
	}

	for k, v := range fa {
		_ = b.SetString(language.Persian, k, v)
	}

	return b
}

// Supported reports whether lang names a language with a translation.
func Supported(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}

	_, _, confidence := matcher.Match(tag)

	return confidence >= language.High
}

// Translator looks up messages for one language.
type Translator struct {
	printer *message.Printer
	tag     language.Tag
}

// New returns a translator for lang, falling back to English for unknown or
// malformed tags.
func New(lang string) *Translator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	_, index, _ := matcher.Match(tag)
	tag = supported[index]

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// T returns the translation of key.
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Lang returns the BCP 47 tag in use.
func (t *Translator) Lang() string {
	return t.tag.String()
}

// RTL reports whether the language is written right to left.
func (t *Translator) RTL() bool {
	return t.tag == language.Persian
}
