// Package locale formats instants the way a browser's toLocaleString does for
// a handful of supported locales.
package locale

import (
	"time"

	"golang.org/x/text/language"
)

// layouts lists the supported locales. The first entry is the fallback.
var layouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.Russian, "02.01.2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Ukrainian, "02.01.2006, 15:04:05"},
	{language.Kazakh, "02.01.2006, 15:04:05"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(layouts))
	for i, l := range layouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Formatter renders instants in one locale and time zone.
type Formatter struct {
	tag    language.Tag
	layout string
	loc    *time.Location
}

// New returns a Formatter for the closest supported match of the BCP 47 tag.
// Unknown or malformed tags fall back to en-US. A nil location means UTC.
func New(tag string, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}

	requested, err := language.Parse(tag)
	if err != nil {
		requested = language.Und
	}

	_, idx, confidence := matcher.Match(requested)
	if confidence == language.No {
		idx = 0
	}

	return &Formatter{
		tag:    layouts[idx].tag,
		layout: layouts[idx].layout,
		loc:    loc,
	}
}

// Tag reports the locale actually used.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// FormatTime renders t in the formatter's zone and locale layout.
func (f *Formatter) FormatTime(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}
