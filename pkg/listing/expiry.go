package listing

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultScanInterval = 60 * time.Second

// ExpiryScanner periodically moves past-expiry listings to Expired.
type ExpiryScanner struct {
	controller *Controller
	interval   time.Duration
	logger     *zap.Logger
}

func NewExpiryScanner(controller *Controller, interval time.Duration, logger *zap.Logger) *ExpiryScanner {
	if interval <= 0 {
		interval = DefaultScanInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpiryScanner{controller: controller, interval: interval, logger: logger}
}

// ScanOnce runs a single pass at now and returns the number of listings
// that expired.
func (s *ExpiryScanner) ScanOnce(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.controller.ExpireDue(ctx, now)
	if err != nil {
		return 0, err
	}
	if len(expired) > 0 {
		s.logger.Info("expired listings", zap.Int("count", len(expired)))
	}
	return len(expired), nil
}

// Run scans on every tick until ctx is cancelled.
func (s *ExpiryScanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scanner started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scanner stopped")
			return
		case <-ticker.C:
			if _, err := s.ScanOnce(ctx, s.controller.Now()); err != nil {
				s.logger.Error("expiry scan failed", zap.Error(err))
			}
		}
	}
}

// Start launches Run in a goroutine. The returned stop cancels it and waits
// for it to exit; calling stop more than once is safe.
func (s *ExpiryScanner) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Run(ctx)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}
