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

const surahBody = `{
	"data": {
		"number": 112,
		"name": "سورة الإخلاص",
		"englishName": "Al-Ikhlas",
		"revelationType": "Meccan",
		"numberOfAyahs": 4,
		"ayahs": [
			{"numberInSurah": 1, "text": "قل هو الله أحد", "audio": "https://cdn.example/1.mp3"},
			{"numberInSurah": 2, "text": "الله الصمد", "audio": "https://cdn.example/2.mp3"},
			{"numberInSurah": 3, "text": "لم يلد ولم يولد", "audio": ""},
			{"numberInSurah": 4, "text": "ولم يكن له كفوا أحد", "audio": ""}
		]
	}
}`

func TestQuranGetSurah(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/surah/112/ar.alafasy", r.URL.Path)
		_, _ = w.Write([]byte(surahBody))
	}))
	defer srv.Close()

	c := NewQuranClient(srv.URL, time.Second, 8, time.Minute)

	surah, err := c.GetSurah(context.Background(), 112, "")
	require.NoError(t, err)
	assert.Equal(t, 112, surah.Number)
	require.Len(t, surah.Ayahs, 4)
	assert.Equal(t, "قل هو الله أحد", surah.Ayahs[0].Text)
	assert.NotEmpty(t, surah.Ayahs[0].Audio)
	assert.Empty(t, surah.Ayahs[2].Audio)

	// Second read is served from the cache.
	_, err = c.GetSurah(context.Background(), 112, DefaultReciter)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestQuranGetSurahEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"number": 1, "ayahs": []}}`))
	}))
	defer srv.Close()

	c := NewQuranClient(srv.URL, time.Second, 8, time.Minute)

	_, err := c.GetSurah(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestQuranGetSurahUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewQuranClient(srv.URL, time.Second, 8, time.Minute)

	_, err := c.GetSurah(context.Background(), 2, "")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestQuranListReciters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/edition/format/audio", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": [
			{"identifier": "ar.alafasy", "englishName": "Alafasy"},
			{"identifier": "ar.husary", "englishName": "Husary"}
		]}`))
	}))
	defer srv.Close()

	c := NewQuranClient(srv.URL, time.Second, 8, time.Minute)

	reciters, err := c.ListReciters(context.Background())
	require.NoError(t, err)
	require.Len(t, reciters, 2)
	assert.Equal(t, "ar.husary", reciters[1].Identifier)
}
