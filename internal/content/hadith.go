package content

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"noorbot/internal/domain/entities"
)

// HadithPageSize is the fixed provider page size for hadith collections.
const HadithPageSize = 25

// HadithBooks maps book keys to display titles, in menu order.
var HadithBooks = []struct {
	Key   string
	Title string
}{
	{"bukhari", "📘 صحيح البخاري"},
	{"muslim", "📗 صحيح مسلم"},
	{"abudawud", "📙 سنن أبي داود"},
	{"tirmidhi", "📕 سنن الترمذي"},
	{"nasai", "📒 سنن النسائي"},
}

// HadithBookTitle returns the display title for a book key, or the key
// itself for unknown books.
func HadithBookTitle(key string) string {
	for _, b := range HadithBooks {
		if b.Key == key {
			return b.Title
		}
	}
	return key
}

// HadithClient fetches paged hadith collections from hadithapi.com.
type HadithClient struct {
	baseURL string
	apiKey  string
	client  httpDoer
	cache   *expirable.LRU[string, *entities.HadithPage]
}

func NewHadithClient(baseURL, apiKey string, timeout time.Duration, cacheSize int, cacheTTL time.Duration) *HadithClient {
	return &HadithClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(timeout),
		cache:   expirable.NewLRU[string, *entities.HadithPage](cacheSize, nil, cacheTTL),
	}
}

type hadithResponse struct {
	Data struct {
		Hadiths struct {
			CurrentPage int               `json:"currentPage"`
			LastPage    int               `json:"lastPage"`
			Data        []entities.Hadith `json:"data"`
		} `json:"hadiths"`
	} `json:"data"`
}

// GetPage returns one provider page of a hadith book. Pages are 1-based.
func (c *HadithClient) GetPage(ctx context.Context, book string, page int) (*entities.HadithPage, error) {
	key := fmt.Sprintf("%s/%d", book, page)
	if p, ok := c.cache.Get(key); ok {
		return p, nil
	}

	url := fmt.Sprintf("%s/books/%s/hadiths?page=%d&paginate=%d", c.baseURL, book, page, HadithPageSize)
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	var resp hadithResponse
	if err := getJSON(ctx, c.client, url, headers, &resp); err != nil {
		return nil, err
	}

	result := &entities.HadithPage{
		Book:       book,
		Page:       resp.Data.Hadiths.CurrentPage,
		TotalPages: resp.Data.Hadiths.LastPage,
		Hadiths:    resp.Data.Hadiths.Data,
	}
	if result.Page == 0 {
		result.Page = page
	}

	c.cache.Add(key, result)

	return result, nil
}
