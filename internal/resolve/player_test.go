package resolve

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadScripts(t *testing.T) {
	scripts, err := HeadScripts([]byte(playerPage))
	require.NoError(t, err)

	require.Len(t, scripts, 2, "external and body scripts are excluded")
	assert.Contains(t, scripts[0], "analytics")
	assert.Contains(t, scripts[1], "playerURL")
}

func TestFindPlayerConfig(t *testing.T) {
	cfg, err := FindPlayerConfig([]byte(playerPage))
	require.NoError(t, err)

	assert.Equal(t, "https://player.test/embed", cfg.PlayerURL)
	u, err := cfg.DescriptorURL()
	require.NoError(t, err)
	assert.Equal(t, "http://link.test/s/abc?mbr=true", u)
}

func TestFindPlayerConfig_FirstAcrossScripts(t *testing.T) {
	page := `<html><head>
<script>var a = {"playerURL": "first", "releaseUrls": {"htmldesktop": "//one"}};</script>
<script>var b = {"playerURL": "second", "releaseUrls": {"htmldesktop": "//two"}};</script>
</head></html>`

	cfg, err := FindPlayerConfig([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.PlayerURL)
}

func TestFindPlayerConfig_NestedInJavaScript(t *testing.T) {
	page := `<html><head><script>
var setup = {debug: true, player: {"playerURL": "nested", "releaseUrls": {"htmldesktop": "//nested.test"}}};
</script></head></html>`

	cfg, err := FindPlayerConfig([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, "nested", cfg.PlayerURL)
}

func TestFindPlayerConfig_NotFound(t *testing.T) {
	tests := map[string]string{
		"no scripts":     `<html><head><title>x</title></head><body></body></html>`,
		"only in body":   `<html><head></head><body><script>{"playerURL": "x"}</script></body></html>`,
		"no playerURL":   `<html><head><script>var x = {"other": 1};</script></head></html>`,
		"broken json":    `<html><head><script>var x = {"playerURL": </script></head></html>`,
		"empty document": ``,
	}
	for name, page := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FindPlayerConfig([]byte(page))
			assert.ErrorIs(t, err, ErrNoPlayerConfig)
		})
	}
}

func TestPlayerConfig_DescriptorURL_Missing(t *testing.T) {
	page := `<html><head><script>{"playerURL": "x", "releaseUrls": {}}</script></head></html>`

	cfg, err := FindPlayerConfig([]byte(page))
	require.NoError(t, err)

	_, err = cfg.DescriptorURL()
	assert.ErrorIs(t, err, ErrNoDescriptorURL)
}

func TestScanObjects_SkipsPastFoundObjects(t *testing.T) {
	var seen []int
	scanObjects(`a {"n": 1} b {"n": {"inner": 3}} c {"n": 2}`, func(obj map[string]json.RawMessage) bool {
		seen = append(seen, len(obj["n"]))
		return false
	})
	assert.Len(t, seen, 3, "nested objects are not visited separately")
}
