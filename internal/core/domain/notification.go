package domain

import "time"

// EventNewNotification is the push-channel event name for a freshly created
// notification.
const EventNewNotification = "ReceiveNotification"

// Notification is immutable once received; the console only lists and
// displays it.
type Notification struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId,omitempty" bson:"user_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Message     string    `json:"message" bson:"message"`
	CreatedDate time.Time `json:"createdDate" bson:"created_date"`
}
