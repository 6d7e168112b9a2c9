package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/repositories"
)

// SummaryQueue accepts saved matches whose summary should be generated.
type SummaryQueue interface {
	EnqueueJob(matchID uuid.UUID)
}

type Worker interface {
	SummaryQueue
	Start(ctx context.Context)
	Stop()
}

type worker struct {
	matchRepo    repositories.MatchRepository
	summarizer   Summarizer
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	logger       *zap.Logger
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewWorker(
	matchRepo repositories.MatchRepository,
	summarizer Summarizer,
	concurrency int,
	pollInterval time.Duration,
	logger *zap.Logger,
) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}

	return &worker{
		matchRepo:    matchRepo,
		summarizer:   summarizer,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		logger:       logger,
		stopChan:     make(chan struct{}),
		inFlight:     make(map[uuid.UUID]struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.logger.Info("🚀 Starting summary worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)

	w.logger.Info("✅ Summary worker started")
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.logger.Info("🛑 Stopping summary worker...")
		close(w.stopChan)
		w.wg.Wait()
		w.logger.Info("✅ Summary worker stopped")
	})
}

// EnqueueJob implements SummaryQueue. It never blocks: a match that is
// already queued is ignored, and one that does not fit in the queue stays
// queued in the database for the poller.
func (w *worker) EnqueueJob(matchID uuid.UUID) {
	select {
	case <-w.stopChan:
		w.logger.Warn("⚠️ Worker stopped, cannot enqueue match", zap.Stringer("match_id", matchID))
		return
	default:
	}

	if !w.track(matchID) {
		return
	}

	select {
	case w.jobQueue <- matchID:
		w.logger.Debug("📥 Match enqueued", zap.Stringer("match_id", matchID))
	default:
		w.release(matchID)
		w.logger.Warn("⚠️ Summary queue full, leaving match for the poller", zap.Stringer("match_id", matchID))
	}
}

func (w *worker) track(matchID uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.inFlight[matchID]; ok {
		return false
	}
	w.inFlight[matchID] = struct{}{}
	return true
}

func (w *worker) release(matchID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, matchID)
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log := w.logger.With(zap.Int("worker", workerID))

	for {
		select {
		case <-w.stopChan:
			log.Debug("👷 Worker stopped")
			return
		case <-ctx.Done():
			return
		case matchID := <-w.jobQueue:
			err := w.summarizer.SummarizeMatch(ctx, matchID)
			w.release(matchID)

			switch {
			case errors.Is(err, ErrSummaryNotQueued):
				log.Debug("⏭️ Summary already claimed", zap.Stringer("match_id", matchID))
			case err != nil:
				log.Error("❌ Summary failed", zap.Stringer("match_id", matchID), zap.Error(err))
			default:
				log.Info("✅ Summary completed", zap.Stringer("match_id", matchID))
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			w.logger.Debug("🔄 Pending summaries poller stopped")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			pending, err := w.matchRepo.FindPendingSummaries(ctx, 10)
			if err != nil {
				w.logger.Warn("⚠️ Failed to fetch pending summaries", zap.Error(err))
				continue
			}

			if len(pending) > 0 {
				w.logger.Info("📋 Found pending summaries", zap.Int("count", len(pending)))
			}

			for _, match := range pending {
				w.EnqueueJob(match.ID)
			}
		}
	}
}
