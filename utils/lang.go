package utils

import (
	"os"
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const (
	MessageMarkerStart  = "marker_start"
	MessageMarkerEffect = "marker_effect"
	MessageMarkerEnd    = "marker_end"
	MessageHoverPeriod  = "hover_period"
	MessageHoverOpenEnd = "hover_open_end"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

var germanMessages = []*i18n.Message{
	{ID: MessageMarkerStart, Other: "Beginn"},
	{ID: MessageMarkerEffect, Other: "mögl. Effekt"},
	{ID: MessageMarkerEnd, Other: "vorauss. Ende"},
	{ID: MessageHoverPeriod, Other: "Vom {{.Start}} bis vorauss. {{.End}}"},
	{ID: MessageHoverOpenEnd, Other: "Ab {{.Start}}"},
}

var englishMessages = []*i18n.Message{
	{ID: MessageMarkerStart, Other: "Start"},
	{ID: MessageMarkerEffect, Other: "possible effect"},
	{ID: MessageMarkerEnd, Other: "expected end"},
	{ID: MessageHoverPeriod, Other: "From {{.Start}} until expected {{.End}}"},
	{ID: MessageHoverOpenEnd, Other: "From {{.Start}}"},
}

// InitI18NBundle builds the message bundle from the built-in German and
// English messages. Message files found in dir override them.
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.German)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	if err := b.AddMessages(language.German, germanMessages...); err != nil {
		return err
	}
	if err := b.AddMessages(language.English, englishMessages...); err != nil {
		return err
	}

	if dir != "" {
		for _, name := range []string{"de.yaml", "en.yaml"} {
			file := path.Join(dir, name)
			if _, err := os.Stat(file); err != nil {
				continue
			}
			if _, err := b.LoadMessageFile(file); err != nil {
				return err
			}
		}
	}

	bundle = b
	return nil
}

// NewLocalizer returns a localizer for the given languages, falling back to
// German.
func NewLocalizer(langs ...string) *i18n.Localizer {
	bundleOnce.Do(func() {
		if bundle == nil {
			if err := InitI18NBundle(""); err != nil {
				panic(err)
			}
		}
	})
	return i18n.NewLocalizer(bundle, langs...)
}
