// Package model holds the domain types of sample-app: the message holder
// and the bookkeeping record of one greeting run.
package model

// Message is the fixed greeting every SampleApp holds.
const Message = "Hello World!"

// SampleApp holds the greeting. The value is set at construction and never
// changes.
type SampleApp struct {
	message string
}

// NewSampleApp creates a holder whose value is Message.
func NewSampleApp() *SampleApp {
	return &SampleApp{message: Message}
}

// Message returns the held greeting.
func (a *SampleApp) Message() string {
	return a.message
}
