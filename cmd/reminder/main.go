package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/quesarica/QR-BookingService/internal/config"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	settingsRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/settings"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
	sendRemindersUC "github.com/quesarica/QR-BookingService/internal/usecase/send_reminders"
	"github.com/quesarica/QR-BookingService/pkg/logger"
)

// Batch-прогон напоминаний. Запускается планировщиком раз в сутки,
// прогон идемпотентен и его можно безопасно перезапустить.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reminder run...")

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	notif, err := notifier.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
	if err != nil {
		log.Fatal("Failed to connect to notification broker: %v", err)
	}
	defer notif.Close()

	usecase := sendRemindersUC.NewUseCase(
		bookingRepo.NewRepository(db),
		settingsRepo.NewRepository(db),
		notif,
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	resp, err := usecase.Execute(ctx)
	if err != nil {
		log.Fatal("Reminder run failed: %v", err)
	}

	log.Info("Reminder run finished: target=%s sent=%d",
		resp.TargetDate.Format("2006-01-02"), resp.Sent)
}
