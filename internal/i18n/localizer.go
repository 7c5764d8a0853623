// Package i18n renders workflow message keys in the configured language.
package i18n

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages with a complete catalog; the first is the fallback
var Supported = []language.Tag{language.English, language.French, language.Russian}

var (
	matcher = language.NewMatcher(Supported)

	buildOnce sync.Once
	builder   *catalog.Builder
)

func messageCatalog() *catalog.Builder {
	buildOnce.Do(func() {
		builder = catalog.NewBuilder(catalog.Fallback(language.English))
		for tag, msgs := range messages {
			for key, msg := range msgs {
				// SetString only fails on malformed tags, which the map cannot hold
				_ = builder.SetString(tag, key, msg)
			}
		}
	})
	return builder
}

// Localizer renders message keys for one language
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the best supported match of locale (e.g. "fr", "ru-RU")
func New(locale string) *Localizer {
	_, idx := language.MatchStrings(matcher, locale)
	tag := Supported[idx]
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messageCatalog())),
	}
}

// Default returns the English localizer
func Default() *Localizer {
	return New("en")
}

// Tag returns the language messages are rendered in
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Localize renders key with args. Unknown keys render as the key itself.
func (l *Localizer) Localize(key string, args ...any) string {
	if _, ok := messages[language.English][key]; !ok {
		return key
	}
	return l.printer.Sprintf(key, args...)
}

// Localize renders key for locale in one call
func Localize(key, locale string, args ...any) string {
	return New(locale).Localize(key, args...)
}
