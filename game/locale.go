package game

import (
	"fmt"
	"log"
	"strings"

	"codeberg.org/tslocum/gotext"
	"golang.org/x/text/language"
)

const localeDomain = "bgboard"

// ParseLocale parses a locale as found in LANG (de_DE.UTF-8) or a BCP 47
// tag (de-DE).
func ParseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	switch locale {
	case "", "C", "POSIX":
		return language.Und, fmt.Errorf("no locale set")
	}
	return language.Parse(strings.ReplaceAll(locale, "_", "-"))
}

// localeName returns the gettext name of tag, for example de_DE.
func localeName(tag language.Tag) string {
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence == language.Exact {
		return base.String() + "_" + region.String()
	}
	return base.String()
}

// LoadLocale configures translations from dir. When forceLanguage is nil
// the system locale is used. Without a translation directory the built-in
// English strings are kept.
func LoadLocale(dir string, forceLanguage *language.Tag) string {
	var tag language.Tag
	if forceLanguage != nil {
		tag = *forceLanguage
	} else {
		locale, err := GetLocale()
		if err == nil {
			tag, err = ParseLocale(locale)
		}
		if err != nil {
			tag = language.AmericanEnglish
		}
	}

	name := localeName(tag)
	if dir == "" {
		return name
	}
	gotext.Configure(dir, name, localeDomain)
	log.Printf("Loaded locale %s from %s", name, dir)
	return name
}
