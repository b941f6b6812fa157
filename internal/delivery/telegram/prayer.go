package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) cbPrayerShow(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.showPrayerTimes(ctx, cb.Message.Chat.ID, cb.From.ID, cb.Message.MessageID)
	return nil
}

func (h *Handler) showPrayerTimes(ctx context.Context, chatID, userID int64, messageID int) {
	profile, err := h.users.GetProfile(ctx, userID)
	if err != nil {
		h.logger.Error("profile fetch failed", zap.Int64("user_id", userID), zap.Error(err))
		h.sendPlain(chatID, msgPrayerLoadFailed)
		return
	}

	if profile.Location == nil {
		h.askLocation(chatID)
		return
	}

	times, err := h.prayer.GetTimings(ctx, profile.Location.Latitude, profile.Location.Longitude, profile.Timezone)
	if err != nil {
		h.logger.Error("prayer times fetch failed", zap.Int64("user_id", userID), zap.Error(err))
		h.sendPlain(chatID, msgPrayerLoadFailed)
		return
	}

	text := fmt.Sprintf(
		"🕌 أوقات الصلاة - %s\n\n🌅 الفجر: %s\n🌄 الشروق: %s\n☀️ الظهر: %s\n🌇 العصر: %s\n🌆 المغرب: %s\n🌃 العشاء: %s",
		times.Date, times.Fajr, times.Sunrise, times.Dhuhr, times.Asr, times.Maghrib, times.Isha,
	)

	kb := withHomeRow(
		tgbotapi.NewInlineKeyboardRow(
			btn(btnRefresh, newAction(domainPrayer, prayerShow)),
			btn(btnSetLocation, newAction(domainPrayer, praySetPlace)),
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

func (h *Handler) cbPrayerSetLocation(_ context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.askLocation(cb.Message.Chat.ID)
	return nil
}

// askLocation waits for either a shared Telegram location or "lat, lon" text.
func (h *Handler) askLocation(chatID int64) {
	h.continuations.awaitText(chatID, func(ctx context.Context, msg *tgbotapi.Message) error {
		lat, lon, ok := extractLocation(msg)
		if !ok {
			h.sendPlain(chatID, msgInvalidLocation)
			return nil
		}

		if err := h.users.SetLocation(ctx, msg.From.ID, lat, lon, "auto"); err != nil {
			return err
		}

		h.sendPlain(chatID, msgLocationSaved)
		h.showPrayerTimes(ctx, chatID, msg.From.ID, 0)
		return nil
	})

	h.sendPlain(chatID, msgAskLocation)
}

func extractLocation(msg *tgbotapi.Message) (lat, lon float64, ok bool) {
	if msg.Location != nil {
		return msg.Location.Latitude, msg.Location.Longitude, true
	}

	parts := strings.Split(msg.Text, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}

	return lat, lon, true
}
