package observability

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// AuditEvent is the structured record emitted for security-relevant actions
// (logins, verification confirmations, registrations, profile mutations).
type AuditEvent struct {
	EventVersion int    `json:"event_version"`
	EventName    string `json:"event_name"`
	ActorEmail   string `json:"actor_email"`
	ActorIP      string `json:"actor_ip"`
	Action       string `json:"action"`
	Outcome      string `json:"outcome"`
	Reason       string `json:"reason"`
	RequestID    string `json:"request_id"`
	TraceID      string `json:"trace_id,omitempty"`
	TS           string `json:"ts"`
}

type AuditInput struct {
	EventName  string
	ActorEmail string
	Action     string
	Outcome    string
	Reason     string
}

func BuildAuditEvent(r *http.Request, in AuditInput) AuditEvent {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}
	ev := AuditEvent{
		EventVersion: 1,
		EventName:    in.EventName,
		ActorEmail:   in.ActorEmail,
		ActorIP:      ip,
		Action:       in.Action,
		Outcome:      in.Outcome,
		Reason:       in.Reason,
		RequestID:    r.Header.Get("X-Request-Id"),
		TS:           time.Now().UTC().Format(time.RFC3339),
	}
	if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
		ev.TraceID = sc.TraceID().String()
	}
	return ev
}

func (ev AuditEvent) Validate() error {
	if ev.EventVersion != 1 {
		return fmt.Errorf("audit event: unsupported event_version %d", ev.EventVersion)
	}
	if ev.EventName == "" {
		return fmt.Errorf("audit event: event_name is required")
	}
	if ev.Action == "" || ev.Outcome == "" {
		return fmt.Errorf("audit event: action and outcome are required")
	}
	return nil
}

// Audit builds, validates and logs an audit event in one step. Invalid events
// are still logged, flagged with the validation error.
func Audit(r *http.Request, in AuditInput) {
	ev := BuildAuditEvent(r, in)
	attrs := []any{
		"event_name", ev.EventName,
		"actor_email", ev.ActorEmail,
		"actor_ip", ev.ActorIP,
		"action", ev.Action,
		"outcome", ev.Outcome,
		"reason", ev.Reason,
		"request_id", ev.RequestID,
		"ts", ev.TS,
	}
	if err := ev.Validate(); err != nil {
		attrs = append(attrs, "audit_error", err.Error())
	}
	slog.InfoContext(r.Context(), "audit", attrs...)
}
