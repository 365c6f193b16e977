package services

// Realtime event names pushed to connected clients.
const (
	EventNewNotification = "new-notification"
	EventNewMessage      = "new-message"
	EventAlertMatch      = "alert-match"
)

// RealtimeNotifier pushes events to a user's open websocket connections.
// Delivery is best effort; a user with no open connection misses the event
// and catches up from the notification list.
type RealtimeNotifier interface {
	SendToUser(userID, event string, payload interface{})
}

// NoopNotifier satisfies RealtimeNotifier in tests and tooling.
type NoopNotifier struct{}

func (NoopNotifier) SendToUser(string, string, interface{}) {}
