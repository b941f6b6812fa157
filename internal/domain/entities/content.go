package entities

// Surah is one chapter of the Quran with its verses for a given edition.
type Surah struct {
	Number         int    `json:"number"` // 1-based surah number
	Name           string `json:"name"`   // Arabic name
	EnglishName    string `json:"englishName"`
	RevelationType string `json:"revelationType"`
	NumberOfAyahs  int    `json:"numberOfAyahs"`
	Ayahs          []Ayah `json:"ayahs"`
}

// Ayah is a single Quran verse. Audio may be empty for text-only editions.
type Ayah struct {
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
	Audio         string `json:"audio"`
}

// Hadith is a single narration from one of the canonical collections.
type Hadith struct {
	Number string `json:"hadithNumber"`
	Arabic string `json:"hadithArabic"`
}

// HadithPage is one page of a hadith book as served by the provider.
type HadithPage struct {
	Book       string
	Page       int
	TotalPages int
	Hadiths    []Hadith
}

// Thikr is a single remembrance. Repeat and Reference are optional and
// rendered only when present.
type Thikr struct {
	Text      string `json:"zekr"`
	Repeat    string `json:"repeat"`
	Reference string `json:"reference"`
}

// PrayerTimes holds one day of prayer timings for a location. Times are
// "HH:MM" strings in the location's own timezone, named by Timezone.
type PrayerTimes struct {
	Fajr     string
	Sunrise  string
	Dhuhr    string
	Asr      string
	Maghrib  string
	Isha     string
	Date     string
	Timezone string
}

// Reciter is an alquran.cloud audio edition.
type Reciter struct {
	Identifier string
	Name       string
}
