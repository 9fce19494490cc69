package ws

import (
	"encoding/json"
	"time"

	"hirehub/internal/domain/application"
)

type statusChangedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"applicationId"`
	JobID         string `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// Notifier implements usecase.StatusNotifier on top of the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

// NotifyStatusChanged tells the applicant their application moved.
func (n *Notifier) NotifyStatusChanged(d application.Details) {
	if n == nil || n.hub == nil {
		return
	}

	evt := statusChangedEvent{
		Type:          "application_status",
		ApplicationID: d.ID.String(),
		JobID:         d.JobID.String(),
		JobTitle:      d.Job.Title,
		Status:        string(d.Status),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Send(d.ApplicantID, b)
}
