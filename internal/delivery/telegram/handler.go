package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/domain/entities"
	"noorbot/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID int64) error
	GetProfile(ctx context.Context, userID int64) (*entities.User, error)
	SetLocation(ctx context.Context, userID int64, lat, lon float64, timezone string) error
	SetReciter(ctx context.Context, userID int64, reciter string) error
	SetNotifications(ctx context.Context, userID int64, enabled bool) error
	AddFavorite(ctx context.Context, userID int64, favType entities.FavoriteType, content string) error
	ListFavorites(ctx context.Context, userID int64) ([]*entities.Favorite, error)
}

type AdminService interface {
	IsOwner(userID int64) bool
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	AddAdmin(ctx context.Context, actorID, targetID int64) error
	RemoveAdmin(ctx context.Context, actorID, targetID int64) error
	ListAdmins(ctx context.Context) ([]int64, error)
	Stats(ctx context.Context) (*service.BotStats, error)
}

type ComplaintService interface {
	Submit(ctx context.Context, userID int64, text string) (int64, error)
	ListOpen(ctx context.Context) ([]*entities.Complaint, error)
	Reply(ctx context.Context, complaintID int64, replyText string) error
}

type BroadcastService interface {
	Send(ctx context.Context, text string) (*service.BroadcastReport, error)
}

type QuranProvider interface {
	GetSurah(ctx context.Context, number int, reciter string) (*entities.Surah, error)
	ListReciters(ctx context.Context) ([]entities.Reciter, error)
}

type HadithProvider interface {
	GetPage(ctx context.Context, book string, page int) (*entities.HadithPage, error)
}

type AthkarProvider interface {
	GetCategory(ctx context.Context, category string) ([]entities.Thikr, error)
}

type PrayerProvider interface {
	GetTimings(ctx context.Context, lat, lon float64, timezone string) (*entities.PrayerTimes, error)
}

// Services groups the application services the handler depends on.
type Services struct {
	Users      UserService
	Admin      AdminService
	Complaints ComplaintService
	Broadcast  BroadcastService
}

// Providers groups the remote content sources.
type Providers struct {
	Quran  QuranProvider
	Hadith HadithProvider
	Athkar AthkarProvider
	Prayer PrayerProvider
}

type Handler struct {
	bot           botAPI
	logger        *zap.Logger
	router        *router
	continuations *continuationRegistry
	drafts        *broadcastDrafts

	users      UserService
	admin      AdminService
	complaints ComplaintService
	broadcast  BroadcastService

	quran  QuranProvider
	hadith HadithProvider
	athkar AthkarProvider
	prayer PrayerProvider
}

// NewHandler wires the route table. It fails with DuplicateRouteError if two
// handlers claim the same (domain, verb) pair, refusing to start with
// ambiguous routing.
func NewHandler(bot *tgbotapi.BotAPI, logger *zap.Logger, svc Services, providers Providers) (*Handler, error) {
	h := &Handler{
		bot:           bot,
		logger:        logger,
		router:        newRouter(),
		continuations: newContinuationRegistry(),
		drafts:        newBroadcastDrafts(),
		users:         svc.Users,
		admin:         svc.Admin,
		complaints:    svc.Complaints,
		broadcast:     svc.Broadcast,
		quran:         providers.Quran,
		hadith:        providers.Hadith,
		athkar:        providers.Athkar,
		prayer:        providers.Prayer,
	}

	if err := h.registerRoutes(); err != nil {
		return nil, err
	}

	return h, nil
}

// registerRoutes builds the full dispatch table.
func (h *Handler) registerRoutes() error {
	routes := []struct {
		domain string
		verb   string
		fn     callbackFunc
	}{
		{domainMenu, menuHome, h.cbMainMenu},
		{domainMenu, menuQuran, h.cbQuranMenu},
		{domainMenu, menuHadith, h.cbHadithMenu},
		{domainMenu, menuAthkar, h.cbAthkarMenu},
		{domainMenu, menuPrayer, h.cbPrayerShow},
		{domainMenu, menuFav, h.cbFavoritesFirstPage},
		{domainMenu, menuComplain, h.cbComplaintNew},
		{domainMenu, menuSettings, h.cbSettingsMenu},
		{domainMenu, menuAdmin, h.cbAdminMenu},

		{domainQuran, quranMenu, h.cbQuranMenu},
		{domainQuran, quranBrowse, h.cbQuranBrowse},
		{domainQuran, quranRandom, h.cbQuranRandom},
		{domainQuran, quranNav, h.cbQuranNav},
		{domainQuran, quranListen, h.cbQuranListen},
		{domainQuran, quranFav, h.cbQuranFav},

		{domainHadith, hadithMenu, h.cbHadithMenu},
		{domainHadith, hadithBook, h.cbHadithBook},
		{domainHadith, hadithNav, h.cbHadithNav},
		{domainHadith, hadithFav, h.cbHadithFav},

		{domainAthkar, athkarMenu, h.cbAthkarMenu},
		{domainAthkar, athkarCat, h.cbAthkarCategory},
		{domainAthkar, athkarNav, h.cbAthkarNav},
		{domainAthkar, athkarFav, h.cbAthkarFav},

		{domainPrayer, prayerShow, h.cbPrayerShow},
		{domainPrayer, praySetPlace, h.cbPrayerSetLocation},

		{domainFav, favList, h.cbFavoritesList},

		{domainComplain, complainNew, h.cbComplaintNew},

		{domainSettings, settingsMenu, h.cbSettingsMenu},
		{domainSettings, settingsReciters, h.cbSettingsReciters},
		{domainSettings, settingsReciter, h.cbSettingsSetReciter},
		{domainSettings, settingsNotify, h.cbSettingsNotify},
		{domainSettings, settingsLocation, h.cbPrayerSetLocation},

		{domainAdmin, adminMenu, h.cbAdminMenu},
		{domainAdmin, adminStats, h.cbAdminStats},
		{domainAdmin, adminList, h.cbAdminList},
		{domainAdmin, adminAdd, h.cbAdminAdd},
		{domainAdmin, adminRemove, h.cbAdminRemove},
		{domainAdmin, adminComplaints, h.cbAdminComplaints},
		{domainAdmin, adminReply, h.cbAdminReply},

		{domainBroadcast, broadcastStart, h.cbBroadcastStart},
		{domainBroadcast, broadcastConfirm, h.cbBroadcastConfirm},
		{domainBroadcast, broadcastCancel, h.cbBroadcastCancel},
	}

	for _, r := range routes {
		if err := h.router.register(r.domain, r.verb, r.fn); err != nil {
			return err
		}
	}

	return nil
}

// Run consumes updates until the context is canceled.
func (h *Handler) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.handleMessage(ctx, update.Message)
}

// handleCallback is the dispatch boundary for button taps. The callback is
// acknowledged before the handler runs so the chat client's spinner clears
// while the content provider is queried. Handler errors and panics are
// caught here, logged and converted into a user-visible failure notice;
// they never crash the process or stall dispatch of subsequent events.
func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	h.answer(cb.ID, "")

	chatID := cb.Message.Chat.ID

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic in callback handler",
				zap.String("data", cb.Data),
				zap.Any("panic", r),
			)
			h.sendPlain(chatID, msgInternalError)
		}
	}()

	action, err := decodeAction(cb.Data)
	if err != nil {
		h.logger.Warn("malformed callback data", zap.String("data", cb.Data))
		h.sendPlain(chatID, msgCannotProcess)
		return
	}

	fn, ok := h.router.route(action)
	if !ok {
		h.logger.Warn("no route for callback",
			zap.String("domain", action.Domain),
			zap.String("verb", action.Verb),
		)
		h.sendPlain(chatID, msgCannotProcess)
		return
	}

	if err := fn(ctx, cb, action); err != nil {
		h.logger.Error("callback handler failed",
			zap.String("data", cb.Data),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendPlain(chatID, msgInternalError)
	}
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	from := msg.From
	if from == nil {
		return
	}

	if err := h.users.EnsureUser(ctx, from.ID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	chatID := msg.Chat.ID

	if msg.IsCommand() {
		// A command aborts whatever flow was waiting for input.
		h.continuations.cancel(chatID)
		h.handleCommand(ctx, msg)
		return
	}

	// Free text or a shared location: either a pending flow consumes it, or
	// it is a normal unmatched message.
	if fn, ok := h.continuations.consume(chatID); ok {
		if err := fn(ctx, msg); err != nil {
			h.logger.Error("continuation failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendPlain(chatID, msgInternalError)
		}
		return
	}

	h.logger.Debug("unmatched message", zap.Int64("chat_id", chatID))
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "start", "menu":
		h.sendMainMenu(ctx, chatID, userID)
	case "quran":
		h.sendQuranMenu(chatID, 0)
	case "hadith":
		h.sendHadithMenu(chatID, 0)
	case "athkar":
		h.sendAthkarMenu(chatID, 0)
	case "prayer":
		h.showPrayerTimes(ctx, chatID, userID, 0)
	case "fav":
		h.showFavorites(ctx, chatID, userID, 1, 0)
	case "complain":
		h.startComplaint(chatID)
	case "settings":
		h.showSettings(ctx, chatID, userID, 0)
	case "admin":
		h.showAdminMenu(ctx, chatID, userID, 0)
	default:
		h.sendPlain(chatID, msgUnknownMessage)
	}
}

func (h *Handler) sendMainMenu(ctx context.Context, chatID, userID int64) {
	isAdmin, err := h.admin.IsAdmin(ctx, userID)
	if err != nil {
		h.logger.Error("admin check failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, msgWelcome)
	kb := mainMenuKeyboard(isAdmin)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) cbMainMenu(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	isAdmin, err := h.admin.IsAdmin(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("admin check failed", zap.Int64("user_id", cb.From.ID), zap.Error(err))
	}

	kb := mainMenuKeyboard(isAdmin)
	h.edit(cb.Message.Chat.ID, cb.Message.MessageID, msgWelcome, &kb)
	return nil
}

// send delivers any chattable, logging delivery failures.
func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
	}
}

func (h *Handler) sendPlain(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

// edit replaces a message's text and keyboard in place; when editing fails
// (old message, deleted message) a fresh message is sent instead.
func (h *Handler) edit(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ReplyMarkup = kb

	if _, err := h.bot.Send(edit); err != nil {
		h.logger.Debug("edit failed, sending new message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		msg := tgbotapi.NewMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = *kb
		}
		h.send(msg)
	}
}

// answer acknowledges a callback query. Idempotent from the client's view;
// a second answer for the same ID fails and is only logged.
func (h *Handler) answer(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Debug("callback answer failed", zap.Error(err))
	}
}
