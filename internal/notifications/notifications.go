package notifications

// Notification is one failed validation rule, keyed by the field or
// concern that produced it. Immutable once created.
type Notification struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Notifiable is implemented by every object that validates itself into
// an owned collector. Validity is advisory: an invalid object still
// exists so callers can inspect what is wrong.
type Notifiable interface {
	Notifications() []Notification
	IsValid() bool
}

// Collector accumulates notifications in insertion order. Records are
// never mutated or removed; content only grows within a validation
// pass. The zero value is ready to use and valid.
type Collector struct {
	items []Notification
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add appends one notification.
func (c *Collector) Add(key, message string) {
	c.items = append(c.items, Notification{Key: key, Message: message})
}

// AddWhen appends the notification only when the condition holds.
// Rules are evaluated independently, never short-circuited.
func (c *Collector) AddWhen(failed bool, key, message string) {
	if failed {
		c.Add(key, message)
	}
}

// Merge absorbs all notifications from the given sources, processing
// sources in the order given and preserving each source's internal
// order. Nil sources are skipped.
func (c *Collector) Merge(sources ...Notifiable) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		c.items = append(c.items, src.Notifications()...)
	}
}

// Notifications returns a copy of the accumulated records.
func (c *Collector) Notifications() []Notification {
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collector) IsValid() bool {
	return len(c.items) == 0
}

func (c *Collector) Count() int {
	return len(c.items)
}

var _ Notifiable = (*Collector)(nil)
