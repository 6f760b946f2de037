package providers

import (
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"hubdash/internal/models"
	"hubdash/internal/structures"
)

const (
	SubjectEventCreated = "events.created"
	SubjectWatchListHit = "watchlist.hit"
	SubjectHubOffline   = "hubs.offline"
)

// NotifierInterface publishes domain notifications. Delivery is best effort
// and happens off the caller's goroutine: failures are logged and never reach
// the caller. Close waits for in-flight deliveries.
type NotifierInterface interface {
	EventCreated(event models.Event)
	WatchListHit(plate string, entry models.WatchListEntry)
	HubOffline(hub models.Hub, event models.Event)
	Close()
}

type publisher interface {
	Publish(subject string, data []byte) error
}

type WatchListHitMessage struct {
	Plate     string                `json:"plate"`
	Entry     models.WatchListEntry `json:"entry"`
	CheckedAt time.Time             `json:"checkedAt"`
}

type HubOfflineMessage struct {
	Hub   models.Hub   `json:"hub"`
	Event models.Event `json:"event"`
}

type NatsNotifier struct {
	conn       publisher
	closer     func()
	logger     Logger
	prefix     string
	maxRetries int
	backoff    time.Duration
	sleep      func(time.Duration)
	inflight   sync.WaitGroup
}

func (n *NatsNotifier) subject(name string) string {
	if n.prefix == "" {
		return name
	}
	return n.prefix + "." + name
}

func (n *NatsNotifier) publish(name string, payload any) {
	subject := n.subject(name)
	data, err := json.Marshal(payload)
	if err != nil {
		n.logger.Errorf(TypeApp, "Notifier: marshal %s: %s", subject, err)
		return
	}

	for i := 0; ; i++ {
		if err = n.conn.Publish(subject, data); err == nil {
			return
		}
		if i == n.maxRetries {
			break
		}
		n.sleep(time.Duration(i+1) * n.backoff)
	}
	n.logger.Errorf(TypeApp, "Notifier: publish %s failed after %d retries: %s", subject, n.maxRetries, err)
}

func (n *NatsNotifier) dispatch(name string, payload any) {
	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		n.publish(name, payload)
	}()
}

func (n *NatsNotifier) EventCreated(event models.Event) {
	n.dispatch(SubjectEventCreated, event)
}

func (n *NatsNotifier) WatchListHit(plate string, entry models.WatchListEntry) {
	n.dispatch(SubjectWatchListHit, WatchListHitMessage{Plate: plate, Entry: entry, CheckedAt: time.Now()})
}

func (n *NatsNotifier) HubOffline(hub models.Hub, event models.Event) {
	n.dispatch(SubjectHubOffline, HubOfflineMessage{Hub: hub, Event: event})
}

// Flush blocks until every dispatched notification was delivered or given up.
func (n *NatsNotifier) Flush() {
	n.inflight.Wait()
}

func (n *NatsNotifier) Close() {
	n.Flush()
	if n.closer != nil {
		n.closer()
	}
}

func newNatsNotifier(conn publisher, logger Logger, conf structures.NotifierConfig) *NatsNotifier {
	return &NatsNotifier{
		conn:       conn,
		logger:     logger,
		prefix:     conf.SubjectPrefix,
		maxRetries: conf.MaxRetries,
		backoff:    100 * time.Millisecond,
		sleep:      time.Sleep,
	}
}

// NewNotifierProvider connects to NATS when the notifier is enabled. The
// connection keeps retrying in the background, so a broker that is down at
// startup does not block the API.
func NewNotifierProvider(conf *structures.Config, logger Logger) (NotifierInterface, func(), error) {
	if !conf.Notifier.Enabled {
		logger.Infof(TypeApp, "Notifier disabled")
		return &noopNotifier{}, func() {}, nil
	}

	conn, err := nats.Connect(conf.Notifier.URL,
		nats.Name(conf.AppName),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warnf(TypeApp, "Notifier: disconnected: %s", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Infof(TypeApp, "Notifier: reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to connect to NATS at %s: %w", conf.Notifier.URL, err)
	}

	n := newNatsNotifier(conn, logger, conf.Notifier)
	n.closer = func() {
		if err := conn.Drain(); err != nil {
			conn.Close()
		}
	}
	logger.Infof(TypeApp, "Notifier publishing to %s with prefix %q", conf.Notifier.URL, conf.Notifier.SubjectPrefix)

	return n, n.Close, nil
}

type noopNotifier struct{}

func (n *noopNotifier) EventCreated(_ models.Event)                    {}
func (n *noopNotifier) WatchListHit(_ string, _ models.WatchListEntry) {}
func (n *noopNotifier) HubOffline(_ models.Hub, _ models.Event)        {}
func (n *noopNotifier) Close()                                         {}
