package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/content"
)

func (h *Handler) cbSettingsMenu(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.showSettings(ctx, cb.Message.Chat.ID, cb.From.ID, cb.Message.MessageID)
	return nil
}

func (h *Handler) showSettings(ctx context.Context, chatID, userID int64, messageID int) {
	profile, err := h.users.GetProfile(ctx, userID)
	if err != nil {
		h.logger.Error("profile fetch failed", zap.Int64("user_id", userID), zap.Error(err))
		h.sendPlain(chatID, msgSettingsFailed)
		return
	}

	notifyState := "🔕 متوقفة"
	if profile.NotificationsEnabled {
		notifyState = "🔔 مفعلة"
	}
	locationState := "غير محدد"
	if profile.Location != nil {
		locationState = fmt.Sprintf("%.4f, %.4f", profile.Location.Latitude, profile.Location.Longitude)
	}
	reciter := profile.Reciter
	if reciter == "" {
		reciter = content.DefaultReciter
	}

	text := fmt.Sprintf(
		"⚙️ الإعدادات:\n\n🎧 القارئ: %s\n🔔 الإشعارات: %s\n📍 الموقع: %s",
		reciter, notifyState, locationState,
	)

	kb := withHomeRow(
		tgbotapi.NewInlineKeyboardRow(
			btn(btnChooseReciter, newAction(domainSettings, settingsReciters)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnNotifyToggle, newAction(domainSettings, settingsNotify)),
			btn(btnSetLocation, newAction(domainSettings, settingsLocation)),
		),
	)

	if messageID != 0 {
		h.edit(chatID, messageID, text, &kb)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
}

// cbSettingsReciters lists the available audio editions, one button each.
func (h *Handler) cbSettingsReciters(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID

	reciters, err := h.quran.ListReciters(ctx)
	if err != nil {
		h.logger.Error("reciter list failed", zap.Error(err))
		h.sendPlain(chatID, msgRecitersFailed)
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(reciters)+1)
	for _, r := range reciters {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(r.Name, newAction(domainSettings, settingsReciter, r.Identifier)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		btn(btnBack, newAction(domainSettings, settingsMenu)),
	))

	kb := withHomeRow(rows...)
	h.edit(chatID, cb.Message.MessageID, "🎧 اختر القارئ:", &kb)
	return nil
}

func (h *Handler) cbSettingsSetReciter(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	chatID := cb.Message.Chat.ID

	if len(action.Args) != 1 || action.Args[0] == "" {
		return ErrMalformedToken
	}

	if err := h.users.SetReciter(ctx, cb.From.ID, action.Args[0]); err != nil {
		h.logger.Error("set reciter failed", zap.Int64("user_id", cb.From.ID), zap.Error(err))
		h.sendPlain(chatID, msgSettingSaveFail)
		return nil
	}

	h.sendPlain(chatID, msgReciterSaved)
	h.showSettings(ctx, chatID, cb.From.ID, cb.Message.MessageID)
	return nil
}

// cbSettingsNotify flips the prayer notification flag.
func (h *Handler) cbSettingsNotify(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID

	profile, err := h.users.GetProfile(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("profile fetch failed", zap.Int64("user_id", cb.From.ID), zap.Error(err))
		h.sendPlain(chatID, msgSettingsFailed)
		return nil
	}

	enabled := !profile.NotificationsEnabled
	if err := h.users.SetNotifications(ctx, cb.From.ID, enabled); err != nil {
		h.logger.Error("set notifications failed", zap.Int64("user_id", cb.From.ID), zap.Error(err))
		h.sendPlain(chatID, msgSettingSaveFail)
		return nil
	}

	if enabled {
		h.sendPlain(chatID, msgNotifyEnabled)
	} else {
		h.sendPlain(chatID, msgNotifyDisabled)
	}
	h.showSettings(ctx, chatID, cb.From.ID, cb.Message.MessageID)
	return nil
}
