// File: messages.go
// Title: Diagnostic Message Catalog
// Description: Renders diagnostic messages from the locale catalogs that are
//              embedded in the binary. English is the default and fallback;
//              Marathi and a bilingual Marathi/English catalog are bundled.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation
// - 2026-10-08 v0.1.1: Keyword arguments render in the catalog's script

package diag

import (
	"embed"
	"sync"

	"github.com/msto63/bhasha/foundation/bhasha/token"
	bherror "github.com/msto63/bhasha/foundation/core/error"
	"github.com/msto63/bhasha/foundation/core/i18n"
	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
)

// DefaultLocale is the locale used when none is requested
const DefaultLocale = "en"

//go:embed locales
var catalogFS embed.FS

var (
	catalogOnce sync.Once
	catalog     *i18n.Manager
	catalogErr  error
)

func loadCatalog() (*i18n.Manager, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = i18n.New(i18n.Options{
			DefaultLocale: DefaultLocale,
			FS:            catalogFS,
			LocalesDir:    "locales",
		})
	})
	return catalog, catalogErr
}

// Messages renders diagnostics in one locale. It is immutable and safe for
// concurrent use.
type Messages struct {
	tr *i18n.Manager
}

// NewMessages returns the renderer for locale. An empty locale selects the
// default.
func NewMessages(locale string) (*Messages, error) {
	base, err := loadCatalog()
	if err != nil {
		return nil, bherror.Wrap(err, "failed to load diagnostic catalog").
			WithOperation("diag.NewMessages")
	}

	if bhstringx.IsBlank(locale) {
		return &Messages{tr: base}, nil
	}

	tr, err := base.WithLocale(locale)
	if err != nil {
		return nil, err
	}
	return &Messages{tr: tr}, nil
}

// DefaultMessages returns the English renderer. The catalog is compiled into
// the binary, so failing to load it is a build defect.
func DefaultMessages() *Messages {
	m, err := NewMessages("")
	if err != nil {
		panic(err)
	}
	return m
}

// Locales lists the bundled locales
func Locales() []string {
	base, err := loadCatalog()
	if err != nil {
		return nil
	}
	return base.GetAvailableLocales()
}

// Locale returns the locale messages are rendered in
func (m *Messages) Locale() string {
	return m.tr.GetCurrentLocale()
}

// T renders a catalog message
func (m *Messages) T(key string, args map[string]interface{}) string {
	return m.tr.T(key, args)
}

// Plural renders the form of key matching count
func (m *Messages) Plural(key string, count int, args map[string]interface{}) string {
	if args == nil {
		args = map[string]interface{}{}
	}
	if _, ok := args["Count"]; !ok {
		args["Count"] = count
	}
	return m.tr.Plural(key, count, args)
}

// Title renders the display name of kind
func (m *Messages) Title(kind Kind) string {
	return m.tr.T(kind.TitleKey())
}

// New creates a diagnostic spanning [start, end) with a rendered message
func (m *Messages) New(kind Kind, start, end token.Position, key string, args map[string]interface{}) *Error {
	return &Error{
		Kind:   kind,
		Start:  start,
		End:    end,
		Key:    key,
		Args:   args,
		Title:  m.Title(kind),
		Detail: m.T(key, args),
	}
}

// Localize re-renders err in this locale
func (m *Messages) Localize(err *Error) *Error {
	if err == nil {
		return nil
	}
	out := *err
	out.Title = m.Title(err.Kind)
	out.Detail = m.T(err.Key, err.Args)
	return &out
}

// KeywordArgs returns template arguments naming kw in both scripts
func KeywordArgs(kw token.Keyword) map[string]interface{} {
	return map[string]interface{}{
		"Latin":  kw.Latin(),
		"Native": kw.Native(),
	}
}
