package content

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"noorbot/internal/domain/entities"
)

// AthkarCategories maps category keys to their JSON files, in menu order.
var AthkarCategories = []struct {
	Key   string
	Title string
	File  string
}{
	{"sabah", "📿 أذكار الصباح", "azkar_sabah.json"},
	{"massa", "📿 أذكار المساء", "azkar_massa.json"},
	{"postprayer", "📿 أذكار بعد الصلاة", "PostPrayer_azkar.json"},
}

// AthkarCategoryTitle returns the display title for a category key.
func AthkarCategoryTitle(key string) string {
	for _, c := range AthkarCategories {
		if c.Key == key {
			return c.Title
		}
	}
	return key
}

func athkarFile(key string) (string, bool) {
	for _, c := range AthkarCategories {
		if c.Key == key {
			return c.File, true
		}
	}
	return "", false
}

// AthkarClient fetches whole-collection remembrance lists.
type AthkarClient struct {
	baseURL string
	client  httpDoer
	cache   *expirable.LRU[string, []entities.Thikr]
}

func NewAthkarClient(baseURL string, timeout time.Duration, cacheSize int, cacheTTL time.Duration) *AthkarClient {
	return &AthkarClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
		cache:   expirable.NewLRU[string, []entities.Thikr](cacheSize, nil, cacheTTL),
	}
}

type athkarResponse struct {
	Content []struct {
		Zekr      string `json:"zekr"`
		Repeat    string `json:"repeat"`
		Reference string `json:"reference"`
		Bless     string `json:"bless"`
	} `json:"content"`
}

// GetCategory returns the full remembrance list for a category.
func (c *AthkarClient) GetCategory(ctx context.Context, category string) ([]entities.Thikr, error) {
	if list, ok := c.cache.Get(category); ok {
		return list, nil
	}

	file, ok := athkarFile(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown athkar category %q", ErrProviderUnavailable, category)
	}

	var resp athkarResponse
	if err := getJSON(ctx, c.client, c.baseURL+"/"+file, nil, &resp); err != nil {
		return nil, err
	}

	list := make([]entities.Thikr, 0, len(resp.Content))
	for _, item := range resp.Content {
		reference := item.Reference
		if reference == "" {
			reference = item.Bless
		}
		list = append(list, entities.Thikr{
			Text:      item.Zekr,
			Repeat:    item.Repeat,
			Reference: reference,
		})
	}

	c.cache.Add(category, list)

	return list, nil
}
