package discovery

import "sync"

// Registry holds the most recent ServiceRecord for each device ID.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	services map[string]*ServiceRecord
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]*ServiceRecord),
	}
}

// Put stores rec under its DeviceID, replacing any previous record.
// It returns the replaced record, or nil if the device was not known.
func (r *Registry) Put(rec *ServiceRecord) *ServiceRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.services[rec.DeviceID]
	r.services[rec.DeviceID] = rec
	return prev
}

// Get returns the record for deviceID.
func (r *Registry) Get(deviceID string) (*ServiceRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.services[deviceID]
	return rec, ok
}

// List returns a snapshot of all records in no particular order.
func (r *Registry) List() []*ServiceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ServiceRecord, 0, len(r.services))
	for _, rec := range r.services {
		out = append(out, rec)
	}
	return out
}

// Len returns the number of known devices.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services)
}

// Notifiable reports whether a Put that replaced prev should be announced.
// First sightings always are; repeats only when duplicates are allowed.
func Notifiable(prev *ServiceRecord, allowDuplicates bool) bool {
	return prev == nil || allowDuplicates
}
