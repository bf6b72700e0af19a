package sender

import (
	"math"
	"time"

	"github.com/cskr/pubsub"
)

type EventKind string

const (
	EventTick      EventKind = "tick"
	EventSucceeded EventKind = "item_succeeded"
	EventFailed    EventKind = "item_failed"
	EventDone      EventKind = "job_done"
)

type Event struct {
	Kind             EventKind `json:"kind"`
	SessionId        string    `json:"sessionId"`
	RemainingSeconds int       `json:"remainingSeconds"`
	Index            int       `json:"index"`
	Phone            string    `json:"phone,omitempty"`
	Error            string    `json:"error,omitempty"`
	Succeeded        int       `json:"succeeded"`
	Failed           int       `json:"failed"`
	Cancelled        bool      `json:"cancelled,omitempty"`
}

// Progress fans job events out to subscribers, one topic per session id.
// Publishing never blocks the job: a subscriber with a full buffer misses events.
type Progress struct {
	ps *pubsub.PubSub
}

func NewProgress(capacity int) *Progress {
	return &Progress{ps: pubsub.New(capacity)}
}

func (p *Progress) Publish(ev Event) {
	p.ps.TryPub(ev, ev.SessionId)
}

// Observe wraps next so that every callback is also published under sessionId.
// The topic is closed once the job is done.
func (p *Progress) Observe(sessionId string, next Observer) Observer {
	var succeeded, failed int
	lastTick := -1

	return Observer{
		OnTick: func(remaining time.Duration) {
			secs := int(math.Ceil(remaining.Seconds()))
			if secs != lastTick {
				lastTick = secs
				p.Publish(Event{Kind: EventTick, SessionId: sessionId, RemainingSeconds: secs, Succeeded: succeeded, Failed: failed})
			}
			if next.OnTick != nil {
				next.OnTick(remaining)
			}
		},
		OnItemSucceeded: func(index int, task Task) {
			succeeded++
			p.Publish(Event{Kind: EventSucceeded, SessionId: sessionId, Index: index, Phone: task.Phone, Succeeded: succeeded, Failed: failed})
			if next.OnItemSucceeded != nil {
				next.OnItemSucceeded(index, task)
			}
		},
		OnItemFailed: func(index int, task Task, detail string) {
			failed++
			p.Publish(Event{Kind: EventFailed, SessionId: sessionId, Index: index, Phone: task.Phone, Error: detail, Succeeded: succeeded, Failed: failed})
			if next.OnItemFailed != nil {
				next.OnItemFailed(index, task, detail)
			}
		},
		OnJobDone: func(report Report) {
			if next.OnJobDone != nil {
				next.OnJobDone(report)
			}
			p.Publish(Event{Kind: EventDone, SessionId: sessionId, Succeeded: report.Succeeded, Failed: report.Failed, Cancelled: report.Cancelled})
			p.ps.Close(sessionId)
		},
	}
}

type Subscription struct {
	ch chan interface{}
	ps *pubsub.PubSub
}

func (p *Progress) Subscribe(sessionId string) *Subscription {
	return &Subscription{ch: p.ps.Sub(sessionId), ps: p.ps}
}

// Events is closed when the job is done or the subscription is closed.
func (s *Subscription) Events() <-chan interface{} {
	return s.ch
}

func (s *Subscription) Close() {
	go s.ps.Unsub(s.ch)
	for range s.ch {
	}
}

func (p *Progress) Shutdown() {
	p.ps.Shutdown()
}
