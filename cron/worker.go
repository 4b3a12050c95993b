// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"healthverse/config"
	"healthverse/models"
	"healthverse/services/appointment"
	"healthverse/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentFinalize = "appointment:finalize"

// finalizePayload is the task body for a scheduled appointment finalize sweep.
type finalizePayload struct {
	AppointmentID string `json:"appointmentId"`
}

// AppointmentScheduler enqueues finalize tasks to run after an appointment's
// slot has ended.
type AppointmentScheduler struct {
	client *asynq.Client
}

// NewAppointmentScheduler creates an asynq client on the task queue DB.
func NewAppointmentScheduler() *AppointmentScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	return &AppointmentScheduler{client: client}
}

// slotDuration mirrors the finalize sweep's notion of a slot length.
const slotDuration = time.Hour

// ScheduleFinalize enqueues a finalize task to run once the slot has passed.
func (s *AppointmentScheduler) ScheduleFinalize(appt *models.Appointment) error {
	payload, err := json.Marshal(finalizePayload{AppointmentID: appt.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal finalize payload: %w", err)
	}

	runAt := time.Now().Add(slotDuration)
	if start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local); err == nil {
		runAt = start.Add(slotDuration)
	}

	task := asynq.NewTask(TypeAppointmentFinalize, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(runAt), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue finalize task: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AppointmentScheduler) Close() error {
	return s.client.Close()
}

// InitAppointmentWorker runs the async worker in background.
func InitAppointmentWorker(apptSvc appointment.AppointmentService) {
	logger := utils.GetLogger().With(zap.String("component", "appointmentWorker"))

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
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
	mux.HandleFunc(TypeAppointmentFinalize, handleFinalizeTask(apptSvc, logger))

	go monitorRedisConnection(logger)

	go func() {
		logger.Info("starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleFinalizeTask(apptSvc appointment.AppointmentService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p finalizePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid finalize payload", zap.Error(err))
			return err
		}

		logger.Info("finalizing appointment", zap.String("appointmentId", p.AppointmentID))
		if err := apptSvc.Finalize(p.AppointmentID); err != nil {
			logger.Error("finalize failed", zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
