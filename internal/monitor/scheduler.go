package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"hubdash/internal/models"
	"hubdash/internal/monitor/interfaces"
	"hubdash/internal/providers"
	"hubdash/internal/services"
	"hubdash/internal/structures"
)

const (
	EventTypeConnection = "connection"
	hubLostTitle        = "Hub Connection Lost"
)

// Scheduler periodically switches hubs that stopped sending heartbeats to
// offline and records a connection event for each of them.
type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	store    services.DataStoreInterface
	notifier providers.NotifierInterface
	metrics  providers.MetricsProviderInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
	now      func() time.Time
}

func (s *Scheduler) Init() {
	if !s.config.Monitor.Enabled {
		s.logger.Infof(providers.TypeMonitor, "Heartbeat monitor disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Monitor.Interval), func() {
		s.Sweep()
	})
	s.cron.Start()
	s.logger.Infof(providers.TypeMonitor, "Heartbeat monitor started: every %s, stale after %s",
		s.config.Monitor.Interval, s.config.Monitor.StaleAfter)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one stale-hub pass and returns the events it recorded.
func (s *Scheduler) Sweep() []models.Event {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	cutoff := s.now().Add(-s.config.Monitor.StaleAfter)
	stale := s.store.MarkHubsStale(cutoff)
	if len(stale) == 0 {
		s.logger.Debugf(providers.TypeMonitor, "No stale hubs")
		return nil
	}

	events := make([]models.Event, 0, len(stale))
	for _, hub := range stale {
		description := fmt.Sprintf("Hub %s (%s) has not reported since %s",
			hub.Name, hub.Location, hub.LastHeartbeat.Format(time.RFC3339))
		ev, err := s.store.CreateEvent(models.EventInput{
			HubID:       hub.ID,
			Type:        EventTypeConnection,
			Severity:    models.SeverityHigh,
			Title:       hubLostTitle,
			Description: &description,
			Metadata: map[string]any{
				"lastHeartbeat": hub.LastHeartbeat,
				"staleAfter":    s.config.Monitor.StaleAfter.String(),
			},
		})
		if err != nil {
			s.logger.Errorf(providers.TypeMonitor, "Unable to record offline event for hub %d: %s", hub.ID, err)
			continue
		}
		s.logger.Warnf(providers.TypeMonitor, "Hub %d (%s) marked offline, event %d", hub.ID, hub.Name, ev.ID)
		s.notifier.HubOffline(hub, ev)
		events = append(events, ev)
	}
	s.metrics.IncHubsMarkedStale(len(stale))

	return events
}

func NewScheduler(config *structures.Config, logger providers.Logger, store services.DataStoreInterface, notifier providers.NotifierInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		now:      time.Now,
	}
}
