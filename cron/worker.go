package cron

import (
	"context"
	"encoding/json"
	"time"

	"doctorsportal/config"
	"doctorsportal/services/tasks"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the asynq worker in the background. The queue is
// best-effort: when Redis stays unreachable the worker gives up and the rest
// of the portal keeps serving.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask)

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Warn("Reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Reminder worker giving up; reminders disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// handleReminderTask dispatches one appointment reminder. Delivery beyond the
// portal's own log is out of scope.
func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p tasks.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("Invalid reminder payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Info("Appointment reminder",
		zap.String("bookingID", p.BookingID),
		zap.String("patient", p.Patient),
		zap.String("treatment", p.Treatment),
		zap.String("date", p.Date),
		zap.String("slot", p.Slot),
	)
	return nil
}
