package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start registers and starts all scheduled jobs
func (s *CronService) Start() error {
	// Purge expired refresh tokens every night at 03:00
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
			log.Printf("❌ Failed to purge expired refresh tokens: %v", err)
			return
		}
		log.Println("🧹 Purged expired refresh tokens")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("⏹️  Cron jobs stopped")
}
