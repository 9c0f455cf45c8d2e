package console

import (
	"context"
	"sync"
	"time"

	"foodgram-admin/internal/dto/response"
	"foodgram-admin/internal/usecase"

	"go.uber.org/zap"
)

// BadgePoller keeps the sidebar counts fresh on a fixed interval. It is the
// single scheduled task for badge counts, tied to the application lifetime
// and stopped through its context on shutdown.
type BadgePoller struct {
	restaurants usecase.RestaurantService
	persons     usecase.DeliveryPersonService
	complaints  usecase.ComplaintService
	interval    time.Duration
	log         *zap.Logger

	mu     sync.RWMutex
	badges response.NavBadges

	stopOnce sync.Once
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewBadgePoller(
	restaurants usecase.RestaurantService,
	persons usecase.DeliveryPersonService,
	complaints usecase.ComplaintService,
	interval time.Duration,
	log *zap.Logger,
) *BadgePoller {
	if interval <= 0 {
		interval = time.Minute
	}
	return &BadgePoller{
		restaurants: restaurants,
		persons:     persons,
		complaints:  complaints,
		interval:    interval,
		log:         log,
		done:        make(chan struct{}),
	}
}

// Start runs the poll loop until Stop is called or ctx is cancelled. The
// first refresh happens immediately.
func (bp *BadgePoller) Start(ctx context.Context) {
	ctx, bp.cancel = context.WithCancel(ctx)

	go func() {
		defer close(bp.done)

		bp.refresh(ctx)

		ticker := time.NewTicker(bp.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				bp.refresh(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit
func (bp *BadgePoller) Stop() {
	bp.stopOnce.Do(func() {
		if bp.cancel != nil {
			bp.cancel()
			<-bp.done
		}
	})
}

// Badges returns the latest counts
func (bp *BadgePoller) Badges() response.NavBadges {
	bp.mu.RLock()
	defer bp.mu.RUnlock()
	return bp.badges
}

// refresh polls the three badge sources with per-branch isolation: a failed
// branch keeps its previous count
func (bp *BadgePoller) refresh(ctx context.Context) {
	next := bp.Badges()

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(3)
	go func() {
		defer wg.Done()
		pending, err := bp.restaurants.Pending(ctx)
		if err != nil {
			bp.log.Warn("Badge poll failed", zap.String("badge", "restaurants"), zap.Error(err))
			return
		}
		mu.Lock()
		next.Restaurants = len(pending)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		pending, err := bp.persons.Pending(ctx, 0, 100)
		if err != nil {
			bp.log.Warn("Badge poll failed", zap.String("badge", "delivery_persons"), zap.Error(err))
			return
		}
		mu.Lock()
		next.DeliveryPersons = len(pending)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		unresolved, err := bp.complaints.Unresolved(ctx)
		if err != nil {
			bp.log.Warn("Badge poll failed", zap.String("badge", "complaints"), zap.Error(err))
			return
		}
		mu.Lock()
		next.Complaints = len(unresolved)
		mu.Unlock()
	}()
	wg.Wait()

	bp.mu.Lock()
	bp.badges = next
	bp.mu.Unlock()
}
