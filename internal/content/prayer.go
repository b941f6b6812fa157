package content

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"noorbot/internal/domain/entities"
)

// PrayerClient fetches daily prayer timings from aladhan.com.
// Timings are not cached: they change daily and are cheap to fetch.
type PrayerClient struct {
	baseURL string
	client  httpDoer
}

func NewPrayerClient(baseURL string, timeout time.Duration) *PrayerClient {
	return &PrayerClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

type timingsResponse struct {
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Sunrise string `json:"Sunrise"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
		Date struct {
			Readable string `json:"readable"`
		} `json:"date"`
		Meta struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}

// GetTimings returns today's prayer times for the given coordinates.
func (c *PrayerClient) GetTimings(ctx context.Context, lat, lon float64, timezone string) (*entities.PrayerTimes, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("longitude", fmt.Sprintf("%f", lon))
	if timezone != "" && timezone != "auto" {
		q.Set("timezonestring", timezone)
	}

	var resp timingsResponse
	if err := getJSON(ctx, c.client, c.baseURL+"/timings?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	t := resp.Data.Timings
	return &entities.PrayerTimes{
		Fajr:     t.Fajr,
		Sunrise:  t.Sunrise,
		Dhuhr:    t.Dhuhr,
		Asr:      t.Asr,
		Maghrib:  t.Maghrib,
		Isha:     t.Isha,
		Date:     resp.Data.Date.Readable,
		Timezone: resp.Data.Meta.Timezone,
	}, nil
}
