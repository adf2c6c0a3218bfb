package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collected struct {
	Values map[string][]string `json:"values"`
	Rating int                 `json:"rating"`
}

func newCollectApp() *fiber.App {
	app := fiber.New()
	app.Post("/collect", func(c *fiber.Ctx) error {
		values := requestValues(c)
		raw, _ := values.Value("rating")
		return c.JSON(collected{Values: values, Rating: parseRating(raw)})
	})
	return app
}

func doCollect(t *testing.T, req *http.Request) collected {
	t.Helper()
	resp, err := newCollectApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out collected
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRequestValuesKeepsRepeatedUrlencodedKeys(t *testing.T) {
	form := url.Values{}
	form.Add("name", "Ayşe")
	form.Add("custom_5", "A")
	form.Add("custom_5", "C")
	form.Add("rating", "4")

	req := httptest.NewRequest(http.MethodPost, "/collect", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	out := doCollect(t, req)
	assert.Equal(t, []string{"A", "C"}, out.Values["custom_5"])
	assert.Equal(t, []string{"Ayşe"}, out.Values["name"])
	assert.Equal(t, 4, out.Rating)
}

func TestRequestValuesKeepsRepeatedMultipartKeys(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("custom_5", "B"))
	require.NoError(t, w.WriteField("custom_5", "C"))
	require.NoError(t, w.WriteField("content", "Harika"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/collect", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	out := doCollect(t, req)
	assert.Equal(t, []string{"B", "C"}, out.Values["custom_5"])
	assert.Equal(t, []string{"Harika"}, out.Values["content"])
	assert.Equal(t, 0, out.Rating, "gönderilmeyen puan varsayılana bırakılır")
}

func TestParseRating(t *testing.T) {
	cases := map[string]int{
		"":     0,
		"   ":  0,
		"5":    5,
		" 3 ":  3,
		"beş":  -1,
		"4.5":  -1,
		"9999": 9999,
	}
	for raw, want := range cases {
		assert.Equal(t, want, parseRating(raw), "raw=%q", raw)
	}
}

func TestNonNumericRatingIsPostedAsInvalid(t *testing.T) {
	form := url.Values{"rating": {"çok iyi"}}
	req := httptest.NewRequest(http.MethodPost, "/collect", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	out := doCollect(t, req)
	assert.Equal(t, -1, out.Rating)
}
