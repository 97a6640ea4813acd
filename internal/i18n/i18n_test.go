package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_English(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Locale())
	assert.Equal(t, "API Key", tr.T("field.apiKey.title"))
	assert.Equal(t, "API Key is a required field", tr.T("violation.missing", "API Key"))
}

func TestTranslator_FallsBackToEnglishText(t *testing.T) {
	tr, err := New("zh")
	require.NoError(t, err)

	assert.Equal(t, "zh", tr.Locale())
	assert.Equal(t, "API 密钥", tr.T("field.apiKey.title"))
	// not in the zh catalog
	assert.Equal(t, "Name of the Azure OpenAI resource.", tr.T("field.resourceName.description"))
}

func TestTranslator_UnsupportedLocale(t *testing.T) {
	tr, err := New("xx")
	require.NoError(t, err)
	assert.Equal(t, "en", tr.Locale())
}

func TestTranslator_UnknownKey(t *testing.T) {
	tr, err := New("de")
	require.NoError(t, err)
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
}

func TestCatalogs_EveryKeyHasEnglishText(t *testing.T) {
	for locale, catalog := range catalogs {
		for key := range catalog {
			_, ok := catalogs[DefaultLocale][key]
			assert.Truef(t, ok, "%s key %q missing from the English catalog", locale, key)
		}
	}
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"en", "de", "zh"}, Supported())
}
