package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAthkarGetCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/azkar_sabah.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"content": [
			{"zekr": "أصبحنا وأصبح الملك لله", "repeat": "1", "reference": "", "bless": "من قالها موقنا بها"},
			{"zekr": "سبحان الله وبحمده", "repeat": "100", "reference": "مسلم", "bless": ""}
		]}`))
	}))
	defer srv.Close()

	c := NewAthkarClient(srv.URL, time.Second, 8, time.Minute)

	list, err := c.GetCategory(context.Background(), "sabah")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// The bless text stands in when no reference is given.
	assert.Equal(t, "من قالها موقنا بها", list[0].Reference)
	assert.Equal(t, "مسلم", list[1].Reference)
	assert.Equal(t, "100", list[1].Repeat)
}

func TestAthkarUnknownCategory(t *testing.T) {
	c := NewAthkarClient("http://unused.invalid", time.Second, 8, time.Minute)

	_, err := c.GetCategory(context.Background(), "nonsense")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestPrayerGetTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/timings", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		assert.Empty(t, r.URL.Query().Get("timezonestring"), "auto timezone is left to the provider")

		_, _ = w.Write([]byte(`{"data": {
			"timings": {"Fajr": "04:12", "Sunrise": "05:43", "Dhuhr": "12:01", "Asr": "15:30", "Maghrib": "18:20", "Isha": "19:50"},
			"date": {"readable": "28 Aug 2026"}
		}}`))
	}))
	defer srv.Close()

	c := NewPrayerClient(srv.URL, time.Second)

	times, err := c.GetTimings(context.Background(), 24.7136, 46.6753, "auto")
	require.NoError(t, err)
	assert.Equal(t, "04:12", times.Fajr)
	assert.Equal(t, "19:50", times.Isha)
	assert.Equal(t, "28 Aug 2026", times.Date)
}
