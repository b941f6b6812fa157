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

func TestHadithGetPage(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/books/bukhari/hadiths", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("paginate"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"data": {"hadiths": {
			"currentPage": 2,
			"lastPage": 300,
			"data": [
				{"hadithNumber": "26", "hadithArabic": "نص الحديث الأول"},
				{"hadithNumber": "27", "hadithArabic": "نص الحديث الثاني"}
			]
		}}}`))
	}))
	defer srv.Close()

	c := NewHadithClient(srv.URL, "test-key", time.Second, 8, time.Minute)

	page, err := c.GetPage(context.Background(), "bukhari", 2)
	require.NoError(t, err)
	assert.Equal(t, "bukhari", page.Book)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 300, page.TotalPages)
	require.Len(t, page.Hadiths, 2)
	assert.Equal(t, "26", page.Hadiths[0].Number)

	_, err = c.GetPage(context.Background(), "bukhari", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "repeat read must hit the cache")
}

func TestHadithGetPageUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHadithClient(srv.URL, "test-key", time.Second, 8, time.Minute)

	_, err := c.GetPage(context.Background(), "muslim", 1)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestHadithBookTitle(t *testing.T) {
	assert.Equal(t, "📘 صحيح البخاري", HadithBookTitle("bukhari"))
	assert.Equal(t, "unknown", HadithBookTitle("unknown"))
}
