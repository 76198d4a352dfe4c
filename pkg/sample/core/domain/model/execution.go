package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExitStatus represents the outcome of a greeting run.
type ExitStatus string

const (
	ExitStatusUnknown   ExitStatus = "UNKNOWN"
	ExitStatusCompleted ExitStatus = "COMPLETED"
	ExitStatusFailed    ExitStatus = "FAILED"
	ExitStatusStopped   ExitStatus = "STOPPED"
)

// String returns the ExitStatus as a string.
func (s ExitStatus) String() string {
	return string(s)
}

// ExitCode maps the status to a process exit code.
func (s ExitStatus) ExitCode() int {
	if s == ExitStatusCompleted {
		return 0
	}
	return 1
}

// GreetingExecution records a single run of the greeting.
type GreetingExecution struct {
	ID           string
	Name         string
	StartTime    time.Time
	EndTime      time.Time
	ExitStatus   ExitStatus
	BytesWritten int
	Failure      error
}

// NewGreetingExecution creates an execution that starts now.
func NewGreetingExecution(name string) *GreetingExecution {
	return &GreetingExecution{
		ID:         uuid.New().String(),
		Name:       name,
		StartTime:  time.Now(),
		ExitStatus: ExitStatusUnknown,
	}
}

// MarkAsCompleted ends the execution successfully.
func (e *GreetingExecution) MarkAsCompleted(bytesWritten int) {
	e.BytesWritten = bytesWritten
	e.ExitStatus = ExitStatusCompleted
	e.EndTime = time.Now()
}

// MarkAsFailed ends the execution with err.
func (e *GreetingExecution) MarkAsFailed(bytesWritten int, err error) {
	e.BytesWritten = bytesWritten
	e.Failure = err
	e.ExitStatus = ExitStatusFailed
	e.EndTime = time.Now()
}

// MarkAsStopped ends the execution without running it.
func (e *GreetingExecution) MarkAsStopped(err error) {
	e.Failure = err
	e.ExitStatus = ExitStatusStopped
	e.EndTime = time.Now()
}

// Duration returns EndTime-StartTime, or zero while still running.
func (e *GreetingExecution) Duration() time.Duration {
	if e.EndTime.IsZero() {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}

func (e *GreetingExecution) String() string {
	return fmt.Sprintf("&{ID:%s Name:%s ExitStatus:%s BytesWritten:%d Failure:%v}",
		e.ID, e.Name, e.ExitStatus, e.BytesWritten, e.Failure)
}
