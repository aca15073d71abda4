package telemetry

import (
	"context"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize = 256

	writeTimeout = 5 * time.Second
)

var log = logrus.WithField("component", "telemetry")

// Recorder writes telemetry events in the background. Record never blocks;
// when the queue is full the event is dropped.
type Recorder struct {
	repo  interfaces.ITelemetryRepository
	queue chan entities.TelemetryEvent
	now   func() time.Time
}

var _ interfaces.ITelemetryClient = (*Recorder)(nil)

func NewRecorder(repo interfaces.ITelemetryRepository, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Recorder{
		repo:  repo,
		queue: make(chan entities.TelemetryEvent, queueSize),
		now:   time.Now,
	}
}

func (r *Recorder) Record(event, category string) {
	ev := entities.TelemetryEvent{
		ID:        uuid.NewString(),
		Category:  category,
		Event:     event,
		CreatedAt: r.now().UTC(),
	}
	select {
	case r.queue <- ev:
	default:
		log.Warnf("[telemetry][recorder] queue full, dropping event=%s category=%s", event, category)
	}
}

// Run writes queued events until ctx is done, then flushes what is left.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			r.flush()
			return nil
		case ev := <-r.queue:
			r.write(ev)
		}
	}
}

func (r *Recorder) flush() {
	for {
		select {
		case ev := <-r.queue:
			r.write(ev)
		default:
			return
		}
	}
}

func (r *Recorder) write(ev entities.TelemetryEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := r.repo.Create(ctx, ev); err != nil {
		log.Errorf("[telemetry][recorder] write failed event=%s category=%s err=%v", ev.Event, ev.Category, err)
		return
	}
	log.Debugf("[telemetry][recorder] recorded event=%s category=%s", ev.Event, ev.Category)
}
