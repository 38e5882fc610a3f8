// Package i18n serves the user-facing strings of the terminal front-end from
// embedded YAML message files, one per language (locales/<lang>.yaml).
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator looks messages up for one language, falling back to English.
type Translator struct {
	localizer *i18n.Localizer
}

// New loads every embedded locale and returns a Translator for lang
// (a BCP 47 tag such as "en" or "ru"; unknown tags fall back to English).
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", f.Name(), err)
		}
	}

	return &Translator{localizer: i18n.NewLocalizer(bundle, lang, "en")}, nil
}

// T translates id. An unknown id is returned unchanged.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf translates id, filling its template from data.
func (t *Translator) Tf(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}
