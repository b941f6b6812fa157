package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/config"
	"noorbot/internal/content"
	"noorbot/internal/delivery/telegram"
	"noorbot/internal/logger"
	"noorbot/internal/repository"
	"noorbot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "القائمة الرئيسية"},
		{Command: "quran", Description: "القرآن الكريم"},
		{Command: "hadith", Description: "الحديث الشريف"},
		{Command: "athkar", Description: "الأذكار"},
		{Command: "prayer", Description: "أوقات الصلاة"},
		{Command: "fav", Description: "المفضلة"},
		{Command: "complain", Description: "إرسال شكوى"},
		{Command: "settings", Description: "الإعدادات"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database url missing", zap.Error(err))
	}
	pool, err := repository.NewPool(ctx, dsn, repository.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Initialize repositories, services and content providers.
	userRepo := repository.NewUserRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)

	sender := telegram.NewSender(bot)

	userService := service.NewUserService(userRepo)
	adminService := service.NewAdminService(userRepo, complaintRepo, cfg.OwnerID)
	complaintService := service.NewComplaintService(complaintRepo, sender)
	broadcastService := service.NewBroadcastService(userRepo, sender, zl)

	p := cfg.Providers
	c := cfg.Cache
	prayerClient := content.NewPrayerClient(p.PrayerBaseURL, p.Timeout)
	providers := telegram.Providers{
		Quran:  content.NewQuranClient(p.QuranBaseURL, p.Timeout, c.Size, c.TTL),
		Hadith: content.NewHadithClient(p.HadithBaseURL, p.HadithAPIKey, p.Timeout, c.Size, c.TTL),
		Athkar: content.NewAthkarClient(p.AthkarBaseURL, p.Timeout, c.Size, c.TTL),
		Prayer: prayerClient,
	}

	reminderService := service.NewReminderService(userRepo, prayerClient, sender, zl)
	go reminderService.Run(ctx)

	handler, err := telegram.NewHandler(bot, zl, telegram.Services{
		Users:      userService,
		Admin:      adminService,
		Complaints: complaintService,
		Broadcast:  broadcastService,
	}, providers)
	if err != nil {
		// A duplicate route is a programming error; refuse to start.
		zl.Fatal("failed to build handler", zap.Error(err))
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := bot.GetUpdatesChan(updateConfig)

	if err := handler.Run(ctx, updates); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
