package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"purrfect/config"
	reminderRepo "purrfect/database/repository/reminder"
	"purrfect/models"
	"purrfect/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderDue = "reminder:due"

// scanInterval is how often the dispatcher looks for newly due reminders.
const scanInterval = time.Minute

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// InitReminderWorker starts the async worker that delivers due-reminder
// tasks as in-app notifications.
func InitReminderWorker(notifSvc notification.NotificationService, logger *zap.Logger) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderDue, handleReminderTask(notifSvc, logger))

	go func() {
		logger.Info("reminder worker starting")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					log.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderDuePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		err := notifSvc.Notify(ctx, p.UserID, p.Title, p.Body, "reminder", map[string]any{
			"reminder_id": p.ReminderID,
			"pet_id":      p.PetID,
		})
		if err != nil {
			logger.Error("failed to deliver reminder notification",
				zap.String("reminderId", p.ReminderID), zap.Error(err))
		}
		return err
	}
}

// StartReminderDispatcher scans for due reminders on a ticker and enqueues a
// task per reminder. MarkNotified is a conditional flip, so a reminder that
// two dispatcher instances race on is enqueued exactly once.
func StartReminderDispatcher(ctx context.Context, repo reminderRepo.ReminderRepository, logger *zap.Logger) {
	client := asynq.NewClient(redisOpts())

	go func() {
		defer client.Close()
		ticker := time.NewTicker(scanInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				dispatchDue(ctx, repo, client, logger)
			}
		}
	}()
}

func dispatchDue(ctx context.Context, repo reminderRepo.ReminderRepository, client *asynq.Client, logger *zap.Logger) {
	due, err := repo.ListDueUnnotified(ctx, time.Now())
	if err != nil {
		logger.Error("failed to scan due reminders", zap.Error(err))
		return
	}

	for _, rem := range due {
		claimed, err := repo.MarkNotified(ctx, rem.ID)
		if err != nil {
			logger.Error("failed to mark reminder notified",
				zap.String("reminderId", rem.ID), zap.Error(err))
			continue
		}
		if !claimed {
			continue
		}

		payload, err := json.Marshal(models.ReminderDuePayload{
			ReminderID: rem.ID,
			UserID:     rem.UserID,
			PetID:      rem.PetID,
			Title:      rem.Title,
			Body:       reminderBody(rem),
		})
		if err != nil {
			logger.Error("failed to marshal reminder payload",
				zap.String("reminderId", rem.ID), zap.Error(err))
			continue
		}

		if _, err := client.EnqueueContext(ctx, asynq.NewTask(TypeReminderDue, payload)); err != nil {
			logger.Error("failed to enqueue reminder task",
				zap.String("reminderId", rem.ID), zap.Error(err))
		}
	}
}

func reminderBody(rem models.Reminder) string {
	if rem.Description != "" {
		return rem.Description
	}
	return fmt.Sprintf("%s reminder due %s", rem.Type, rem.DueDate.Format("02 Jan 2006 15:04"))
}
