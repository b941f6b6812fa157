package content

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"noorbot/internal/domain/entities"
)

// DefaultReciter is used until the user picks an audio edition in settings.
const DefaultReciter = "ar.alafasy"

// SurahCount is the number of surahs in the Quran.
const SurahCount = 114

// QuranClient fetches surahs and audio editions from alquran.cloud.
type QuranClient struct {
	baseURL string
	client  httpDoer
	cache   *expirable.LRU[string, *entities.Surah]
}

func NewQuranClient(baseURL string, timeout time.Duration, cacheSize int, cacheTTL time.Duration) *QuranClient {
	return &QuranClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
		cache:   expirable.NewLRU[string, *entities.Surah](cacheSize, nil, cacheTTL),
	}
}

type surahResponse struct {
	Data entities.Surah `json:"data"`
}

type editionsResponse struct {
	Data []struct {
		Identifier  string `json:"identifier"`
		EnglishName string `json:"englishName"`
	} `json:"data"`
}

// GetSurah returns a surah with verse text and audio for the given edition.
// Pages already fetched are served from the cache until they expire; a miss
// re-fetches transparently.
func (c *QuranClient) GetSurah(ctx context.Context, number int, reciter string) (*entities.Surah, error) {
	if reciter == "" {
		reciter = DefaultReciter
	}

	key := fmt.Sprintf("%d/%s", number, reciter)
	if surah, ok := c.cache.Get(key); ok {
		return surah, nil
	}

	url := fmt.Sprintf("%s/surah/%d/%s", c.baseURL, number, reciter)

	var resp surahResponse
	if err := getJSON(ctx, c.client, url, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data.Ayahs) == 0 {
		return nil, fmt.Errorf("%w: surah %d has no verses", ErrProviderUnavailable, number)
	}

	surah := resp.Data
	c.cache.Add(key, &surah)

	return &surah, nil
}

// ListReciters returns the available audio editions.
func (c *QuranClient) ListReciters(ctx context.Context) ([]entities.Reciter, error) {
	url := c.baseURL + "/edition/format/audio"

	var resp editionsResponse
	if err := getJSON(ctx, c.client, url, nil, &resp); err != nil {
		return nil, err
	}

	reciters := make([]entities.Reciter, 0, len(resp.Data))
	for _, e := range resp.Data {
		reciters = append(reciters, entities.Reciter{
			Identifier: e.Identifier,
			Name:       e.EnglishName,
		})
	}

	return reciters, nil
}
