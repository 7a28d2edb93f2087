package cart

import "time"

const NotificationWindow = 3 * time.Second

// Banner is the transient notification. Every Show schedules its own hide one window
// later and the pending hides are never cancelled, so a newer message can be hidden by the
// deadline of an older one.
type Banner struct {
	now     func() time.Time
	window  time.Duration
	message string
	hides   []time.Time
}

func NewBanner() *Banner {
	return &Banner{now: time.Now, window: NotificationWindow}
}

func (b *Banner) Show(message string) {
	now := b.now()
	pending := b.hides[:0]
	for _, d := range b.hides {
		if d.After(now) {
			pending = append(pending, d)
		}
	}
	b.hides = append(pending, now.Add(b.window))
	b.message = message
}

// State reports the current message and whether it is still on screen.
func (b *Banner) State() Notification {
	if b.message == "" || len(b.hides) == 0 {
		return Notification{Message: b.message}
	}
	earliest := b.hides[0]
	for _, d := range b.hides[1:] {
		if d.Before(earliest) {
			earliest = d
		}
	}
	return Notification{
		Message: b.message,
		Visible: b.now().Before(earliest),
	}
}
