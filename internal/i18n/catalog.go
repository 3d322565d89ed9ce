// Package i18n loads the localized strings shown to players and exposes them
// through golang.org/x/text/message printers.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale
type Bundle struct {
	locales map[string]map[string]string
	tags    []language.Tag
	names   []string
	builder *catalog.Builder
	matcher language.Matcher
}

// LoadEmbedded loads the catalogs compiled into the binary
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	locales := map[string]map[string]string{}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}

		if err := addFile(locales, p, file); err != nil {
			return nil, err
		}
	}

	base, ok := locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// Fill gaps from the base locale so every printer knows every key
	for _, messages := range locales {
		for key, value := range base {
			if _, exists := messages[key]; !exists {
				messages[key] = value
			}
		}
	}

	return newBundle(locales)
}

func addFile(locales map[string]map[string]string, p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}

	namespace := strings.TrimSpace(file.Namespace)
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, namespace, namespaceFromPath)
	}

	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	messages, ok := locales[locale]
	if !ok {
		messages = map[string]string{}
		locales[locale] = messages
	}

	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}

	return nil
}

func newBundle(locales map[string]map[string]string) (*Bundle, error) {
	names := make([]string, 0, len(locales))
	for locale := range locales {
		names = append(names, locale)
	}
	sort.Strings(names)

	// The base locale goes first so the matcher falls back to it
	sort.SliceStable(names, func(i, j int) bool {
		return names[i] == BaseLocale && names[j] != BaseLocale
	})

	builder := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	tags := make([]language.Tag, 0, len(names))

	for _, locale := range names {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags = append(tags, tag)

		for key, value := range locales[locale] {
			if err := builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}

	return &Bundle{
		locales: locales,
		tags:    tags,
		names:   names,
		builder: builder,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Locales returns the available locale identifiers, base locale first
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Match returns the supported locale closest to the requested one
func (b *Bundle) Match(locale string) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return BaseLocale
	}
	_, index, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return b.names[index]
}

// Printer returns a printer for the closest supported locale
func (b *Bundle) Printer(locale string) *message.Printer {
	matched := b.Match(locale)
	return message.NewPrinter(language.MustParse(matched), message.Catalog(b.builder))
}

// Message returns the raw catalog string for key, falling back to the base locale
func (b *Bundle) Message(locale, key string) (string, bool) {
	value, ok := b.locales[b.Match(locale)][key]
	return value, ok
}

// Answers splits a comma separated answer list such as "y,yes" into lowercase words
func (b *Bundle) Answers(locale, key string) []string {
	value, ok := b.Message(locale, key)
	if !ok {
		return nil
	}

	var out []string
	for _, word := range strings.Split(value, ",") {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			out = append(out, word)
		}
	}
	return out
}
