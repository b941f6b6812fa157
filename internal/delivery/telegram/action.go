package telegram

import (
	"errors"
	"strings"
)

// ErrMalformedToken is returned when inbound callback data does not match
// the domain:verb:args shape or an argument fails its schema.
var ErrMalformedToken = errors.New("malformed action token")

// Domains. Every callback token starts with one of these.
const (
	domainMenu      = "menu"
	domainQuran     = "quran"
	domainHadith    = "hadith"
	domainAthkar    = "athkar"
	domainPrayer    = "prayer"
	domainFav       = "fav"
	domainComplain  = "complain"
	domainSettings  = "settings"
	domainAdmin     = "admin"
	domainBroadcast = "broadcast"
)

// Menu verbs open a domain's top-level screen.
const (
	menuHome     = "home"
	menuQuran    = "quran"
	menuHadith   = "hadith"
	menuAthkar   = "athkar"
	menuPrayer   = "prayer"
	menuFav      = "fav"
	menuComplain = "complain"
	menuSettings = "settings"
	menuAdmin    = "admin"
)

// Quran sub-verbs.
const (
	quranMenu   = "menu"
	quranBrowse = "browse"
	quranRandom = "random"
	quranNav    = "nav"
	quranListen = "listen"
	quranFav    = "fav"
)

// Hadith sub-verbs.
const (
	hadithMenu = "menu"
	hadithBook = "book"
	hadithNav  = "nav"
	hadithFav  = "fav"
)

// Athkar sub-verbs.
const (
	athkarMenu = "menu"
	athkarCat  = "cat"
	athkarNav  = "nav"
	athkarFav  = "fav"
)

// Prayer sub-verbs.
const (
	prayerShow   = "show"
	praySetPlace = "setloc"
)

// Favorites sub-verbs.
const (
	favList = "list"
)

// Complaint sub-verbs.
const (
	complainNew = "new"
)

// Settings sub-verbs.
const (
	settingsMenu     = "menu"
	settingsReciters = "reciters"
	settingsReciter  = "reciter"
	settingsNotify   = "notify"
	settingsLocation = "location"
)

// Admin sub-verbs.
const (
	adminMenu       = "menu"
	adminStats      = "stats"
	adminList       = "list"
	adminAdd        = "add"
	adminRemove     = "remove"
	adminComplaints = "complaints"
	adminReply      = "reply"
)

// Broadcast sub-verbs.
const (
	broadcastStart   = "start"
	broadcastConfirm = "confirm"
	broadcastCancel  = "cancel"
)

// Action is a decoded callback token: domain, verb and verb-specific args.
// Tokens are constructed when rendering a button and consumed exactly once
// when the user taps it; they are never persisted.
type Action struct {
	Domain string
	Verb   string
	Args   []string
}

// Encode serializes the action into callback data.
func (a Action) Encode() string {
	parts := append([]string{a.Domain, a.Verb}, a.Args...)
	return strings.Join(parts, ":")
}

// decodeAction parses callback data into an Action. Decoding validates the
// token shape only; semantic bounds (page counts, item counts) are enforced
// by the handlers against live fetched content.
func decodeAction(data string) (Action, error) {
	parts := strings.Split(data, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Action{}, ErrMalformedToken
	}

	return Action{
		Domain: parts[0],
		Verb:   parts[1],
		Args:   parts[2:],
	}, nil
}

func newAction(domain, verb string, args ...string) Action {
	return Action{Domain: domain, Verb: verb, Args: args}
}
