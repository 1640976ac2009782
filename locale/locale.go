package locale

import (
	"embed"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/covid-map/schema"
)

//go:embed i18n/*.yaml
var messageFiles embed.FS

var log = logrus.WithField("prefix", "locale")

var supported = []language.Tag{
	language.English,
	language.MustParse("zh-TW"),
}

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
	matcher    = language.NewMatcher(supported)
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
		for _, name := range []string{"en.yaml", "zh_tw.yaml"} {
			data, err := messageFiles.ReadFile("i18n/" + name)
			if err != nil {
				log.WithField("file", name).Panic(err)
			}
			if _, err := b.ParseMessageFileBytes(data, name); err != nil {
				log.WithField("file", name).Panic(err)
			}
		}
		bundle = b
	})
	return bundle
}

// Match picks the supported language for a lang query or an Accept-Language header,
// falling back to English
func Match(langs ...string) language.Tag {
	_, index := language.MatchStrings(matcher, langs...)
	if index < 0 || index >= len(supported) {
		return supported[0]
	}
	return supported[index]
}

// Localizer renders the display card texts in one language
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
	printer   *message.Printer
}

func NewLocalizer(tag language.Tag) *Localizer {
	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(loadBundle(), tag.String()),
		printer:   message.NewPrinter(tag),
	}
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// BandName is the display name of a band, the band itself when it has no translation
func (l *Localizer) BandName(band string) string {
	name, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: "band." + band})
	if err != nil {
		return band
	}
	return name
}

// Caption is the one line summary of a marker, e.g. "King, Washington: 1,234 confirmed, 12 deaths"
func (l *Localizer) Caption(m schema.Marker) string {
	caption, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "marker.caption",
		TemplateData: map[string]interface{}{
			"Place":     place(m),
			"Confirmed": l.printer.Sprintf("%d", m.Confirmed),
			"Deaths":    l.printer.Sprintf("%d", m.Deaths),
		},
	})
	if err != nil {
		log.WithFields(logrus.Fields{"lang": l.tag.String(), "error": err}).Warn("localize caption")
		return ""
	}
	return caption
}

// Captioned returns a copy of the markers with captions set
func (l *Localizer) Captioned(markers []schema.Marker) []schema.Marker {
	result := make([]schema.Marker, len(markers))
	for i, m := range markers {
		m.Caption = l.Caption(m)
		result[i] = m
	}
	return result
}

func place(m schema.Marker) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{m.Subtitle, m.Title} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
