package zalo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const canonical = "zpsid=abc; zpw_sek=def"

func TestNormalizeCookieShapes(t *testing.T) {
	shapes := map[string]string{
		"raw":           `"zpsid=abc; zpw_sek=def"`,
		"pairs":         `[{"name":"zpsid","value":"abc"},{"name":"zpw_sek","value":"def"}]`,
		"key/val":       `[{"key":"zpsid","val":"abc"},{"key":"zpw_sek","val":"def"}]`,
		"wrapped":       `{"url":"https://chat.zalo.me","cookies":[{"name":"zpsid","value":"abc"},{"name":"zpw_sek","value":"def"}]}`,
		"json string":   `"[{\"name\":\"zpsid\",\"value\":\"abc\"},{\"name\":\"zpw_sek\",\"value\":\"def\"}]"`,
		"flat object":   `{"zpsid":"abc","zpw_sek":"def"}`,
		"padded raw":    `"  zpsid=abc; zpw_sek=def  "`,
		"skips no-name": `[{"name":"zpsid","value":"abc"},{"value":"lost"},{"name":"zpw_sek","value":"def"}]`,
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			out, err := NormalizeCookie(json.RawMessage(shape))
			require.NoError(t, err)
			require.Equal(t, canonical, out)
		})
	}
}

func TestParseCookieKinds(t *testing.T) {
	c, err := ParseCookie(json.RawMessage(`{"cookies":[{"name":"a","value":"1"}]}`))
	require.NoError(t, err)
	require.Equal(t, CookieWrapped, c.Kind)

	c, err = ParseCookie(json.RawMessage(`[{"name":"a","value":"1"}]`))
	require.NoError(t, err)
	require.Equal(t, CookiePairs, c.Kind)

	c, err = ParseCookie(json.RawMessage(`null`))
	require.NoError(t, err)
	require.Equal(t, CookieRaw, c.Kind)
	require.Equal(t, "", c.Normalize())
}

func TestParseCookieInvalid(t *testing.T) {
	_, err := ParseCookie(json.RawMessage(`42`))
	require.Equal(t, ErrInvalidCookie, err)

	_, err = ParseCookie(json.RawMessage(`[1,2]`))
	require.Equal(t, ErrInvalidCookie, err)
}

func TestParseCookieStringBrokenJSONIsRaw(t *testing.T) {
	c := ParseCookieString("[not json")

	require.Equal(t, CookieRaw, c.Kind)
	require.Equal(t, "[not json", c.Normalize())
}
