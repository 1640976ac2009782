package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/bitmark-inc/covid-map/schema"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match("en"))
	assert.Equal(t, language.English, Match(""))
	assert.Equal(t, language.English, Match("fr-FR"))
	assert.Equal(t, language.MustParse("zh-TW"), Match("zh-TW"))
	assert.Equal(t, language.MustParse("zh-TW"), Match("", "zh-TW,zh;q=0.9,en;q=0.8"))
}

func TestCaption(t *testing.T) {
	m := schema.Marker{
		Band:      "county",
		Title:     "Washington",
		Subtitle:  "King",
		Confirmed: 1234567,
		Deaths:    12,
	}

	l := NewLocalizer(language.English)
	assert.Equal(t, "King, Washington: 1,234,567 confirmed, 12 deaths", l.Caption(m))

	l = NewLocalizer(language.MustParse("zh-TW"))
	assert.Equal(t, "King, Washington：確診 1,234,567 例，死亡 12 例", l.Caption(m))
}

func TestCaptionWithoutTitle(t *testing.T) {
	l := NewLocalizer(language.English)
	assert.Equal(t, "US: 0 confirmed, 0 deaths", l.Caption(schema.Marker{Band: "nation", Subtitle: "US"}))
}

func TestCaptioned(t *testing.T) {
	markers := []schema.Marker{
		{Band: "nation", Subtitle: "US", Confirmed: 180, Deaths: 16},
		{Band: "nation", Subtitle: "Canada", Confirmed: 180, Deaths: 18},
	}

	result := NewLocalizer(language.English).Captioned(markers)
	assert.Len(t, result, 2)
	assert.Equal(t, "US: 180 confirmed, 16 deaths", result[0].Caption)
	assert.Equal(t, "Canada: 180 confirmed, 18 deaths", result[1].Caption)
	assert.Empty(t, markers[0].Caption, "input should not be modified")

	assert.NotNil(t, NewLocalizer(language.English).Captioned([]schema.Marker{}))
}

func TestBandName(t *testing.T) {
	assert.Equal(t, "Nation", NewLocalizer(language.English).BandName("nation"))
	assert.Equal(t, "郡縣", NewLocalizer(language.MustParse("zh-TW")).BandName("county"))
	assert.Equal(t, "unknown", NewLocalizer(language.English).BandName("unknown"))
}
