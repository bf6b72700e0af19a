// Package sender runs bulk send jobs: one recipient at a time, paced by a fixed delay,
// stoppable between items, with every outcome reported to an observer.
package sender

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Mode string

const (
	ModeMessage       Mode = "MESSAGE"
	ModeFriendRequest Mode = "FRIEND_REQUEST"
)

type Status string

const (
	Pending   Status = "PENDING"
	InFlight  Status = "IN_FLIGHT"
	Succeeded Status = "SUCCEEDED"
	Failed    Status = "FAILED"
)

var (
	ErrJobRunning   = errors.New("a job with this session id is already running")
	ErrNoSessionId  = errors.New("session id is required")
	ErrNegativeWait = errors.New("delay must not be negative")
)

type Task struct {
	Phone   string
	Message string
	Status  Status
	Error   string
	// filled in by the dispatcher
	ContactId    string
	MessageId    string
	DispatchedAt time.Time
}

type Job struct {
	SessionId string
	Mode      Mode
	Delay     time.Duration
	Tasks     []*Task
}

type Report struct {
	SessionId string
	Mode      Mode
	Total     int
	Succeeded int
	Failed    int
	Cancelled bool
	Countdown time.Duration
	Tasks     []Task
}

// Dispatcher performs the remote call for one task. It may record contact and message
// ids on the task; status and error are owned by the orchestrator.
type Dispatcher func(ctx context.Context, task *Task) error

// Observer receives job events. Nil callbacks are skipped. Callbacks run on the job's
// goroutine, in dispatch order.
type Observer struct {
	OnTick          func(remaining time.Duration)
	OnItemSucceeded func(index int, task Task)
	OnItemFailed    func(index int, task Task, detail string)
	OnJobDone       func(report Report)
}

type Orchestrator struct {
	flags Flags
	tick  time.Duration
	grace time.Duration

	mu      sync.Mutex
	running map[string]bool
}

func NewOrchestrator(flags Flags, tick, grace time.Duration) *Orchestrator {
	if tick <= 0 {
		tick = time.Second
	}
	return &Orchestrator{flags: flags, tick: tick, grace: grace, running: make(map[string]bool)}
}

// Stop raises the stop flag of a session. The job notices it before its next tick or
// dispatch; a call already in flight completes.
func (o *Orchestrator) Stop(ctx context.Context, sessionId string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.flags.Set(ctx, sessionId)
}

// acquire marks the session as running and drops a flag left over from an earlier job
// under the same id. It holds the lock Stop takes, so no stop lands in between.
func (o *Orchestrator) acquire(ctx context.Context, sessionId string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running[sessionId] {
		return false
	}
	if err := o.flags.Clear(ctx, sessionId); err != nil {
		zap.L().Warn("Error resetting stop flag", zap.String("session_id", sessionId), zap.Error(err))
	}
	o.running[sessionId] = true
	return true
}

func (o *Orchestrator) release(sessionId string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.running, sessionId)
}

// Run drives the job to completion or until it is stopped and returns the final report.
// Item failures never end the job early. Cancelling ctx acts like a stop.
func (o *Orchestrator) Run(ctx context.Context, job Job, dispatch Dispatcher, obs Observer) (Report, error) {
	if job.SessionId == "" {
		return Report{}, ErrNoSessionId
	}
	if job.Delay < 0 {
		return Report{}, ErrNegativeWait
	}
	if !o.acquire(ctx, job.SessionId) {
		return Report{}, ErrJobRunning
	}
	defer o.release(job.SessionId)

	logger := zap.L().With(zap.String("session_id", job.SessionId), zap.String("mode", string(job.Mode)))

	for _, task := range job.Tasks {
		task.Status = Pending
		task.Error = ""
	}

	plan := Plan(len(job.Tasks), job.Delay)
	start := time.Now()
	report := Report{SessionId: job.SessionId, Mode: job.Mode, Total: len(job.Tasks), Countdown: plan.Total}

	logger.Info("Send job started", zap.Int("items", report.Total), zap.Duration("countdown", plan.Total))

	for _, slot := range plan.Slots {
		task := job.Tasks[slot.Index]

		if !o.wait(ctx, job.SessionId, start, plan.Total, start.Add(slot.At), obs.OnTick) || o.stopped(ctx, job.SessionId) {
			report.Cancelled = true
			break
		}

		task.Status = InFlight
		task.DispatchedAt = time.Now()
		err := dispatch(ctx, task)
		if err != nil {
			task.Status = Failed
			task.Error = err.Error()
			report.Failed++
			logger.Warn("Item failed", zap.String("phone", task.Phone), zap.Error(err))
			if obs.OnItemFailed != nil {
				obs.OnItemFailed(slot.Index, *task, task.Error)
			}
			continue
		}

		task.Status = Succeeded
		report.Succeeded++
		logger.Debug("Item sent", zap.String("phone", task.Phone))
		if obs.OnItemSucceeded != nil {
			obs.OnItemSucceeded(slot.Index, *task)
		}
	}

	//grace period lets the last in-flight item settle before the job is reported done
	if !report.Cancelled && report.Total > 0 && o.grace > 0 {
		o.wait(ctx, job.SessionId, start, plan.Total, time.Now().Add(o.grace), nil)
	}

	if err := o.flags.Clear(context.Background(), job.SessionId); err != nil {
		logger.Warn("Error clearing stop flag", zap.Error(err))
	}

	report.Tasks = make([]Task, len(job.Tasks))
	for i, task := range job.Tasks {
		report.Tasks[i] = *task
	}

	logger.Info("Send job done",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Bool("cancelled", report.Cancelled))

	if obs.OnJobDone != nil {
		obs.OnJobDone(report)
	}
	return report, nil
}

// wait blocks until target in tick-sized steps, checking the stop flag before every
// step. It returns false when the job was stopped.
func (o *Orchestrator) wait(ctx context.Context, sessionId string, start time.Time, total time.Duration, target time.Time, onTick func(time.Duration)) bool {
	for {
		if o.stopped(ctx, sessionId) {
			return false
		}

		now := time.Now()
		if onTick != nil {
			remaining := total - now.Sub(start)
			if remaining < 0 {
				remaining = 0
			}
			onTick(remaining)
		}

		left := target.Sub(now)
		if left <= 0 {
			return true
		}
		step := o.tick
		if left < step {
			step = left
		}

		timer := time.NewTimer(step)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

func (o *Orchestrator) stopped(ctx context.Context, sessionId string) bool {
	if ctx.Err() != nil {
		return true
	}
	set, err := o.flags.IsSet(ctx, sessionId)
	if err != nil {
		zap.L().Warn("Error reading stop flag", zap.String("session_id", sessionId), zap.Error(err))
		return false
	}
	return set
}
