package discovery_test

import (
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/hapkit/hapkit-go/pkg/discovery"
	"github.com/hapkit/hapkit-go/pkg/log"
)

// hapPayload builds a valid HAP manufacturer data block.
func hapPayload(deviceID [6]byte, gsn uint16) []byte {
	return []byte{
		0x4C, 0x00, // company ID
		0x06,       // type
		0x2D,       // AIL
		0x01,       // SF
		deviceID[0], deviceID[1], deviceID[2], deviceID[3], deviceID[4], deviceID[5],
		0x0A, 0x00, // ACID (sensor)
		byte(gsn), byte(gsn >> 8),
		0x03, // CN
		0x02, // CV
	}
}

var testDeviceID = [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}

// fakeRadio records commands and lets tests inject radio events.
type fakeRadio struct {
	mu       sync.Mutex
	state    discovery.AdapterState
	handlers []discovery.RadioHandler

	starts     []bool
	stops      int
	registered int
}

func newFakeRadio(state discovery.AdapterState) *fakeRadio {
	return &fakeRadio{state: state}
}

func (r *fakeRadio) Register(h discovery.RadioHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, h)
	r.registered++
}

func (r *fakeRadio) Unregister(h discovery.RadioHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.handlers {
		if existing == h {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return
		}
	}
}

func (r *fakeRadio) StartScan(_ []string, allowDuplicates bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts = append(r.starts, allowDuplicates)
}

func (r *fakeRadio) StopScan() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stops++
}

func (r *fakeRadio) AdapterState() discovery.AdapterState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *fakeRadio) snapshot() []discovery.RadioHandler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]discovery.RadioHandler(nil), r.handlers...)
}

func (r *fakeRadio) setState(state discovery.AdapterState) {
	r.mu.Lock()
	r.state = state
	r.mu.Unlock()
	for _, h := range r.snapshot() {
		h.AdapterStateChanged(state)
	}
}

func (r *fakeRadio) scanStarted() {
	for _, h := range r.snapshot() {
		h.ScanStarted()
	}
}

func (r *fakeRadio) scanStopped() {
	for _, h := range r.snapshot() {
		h.ScanStopped()
	}
}

func (r *fakeRadio) discover(p discovery.Peripheral, name string, data []byte) {
	for _, h := range r.snapshot() {
		h.PeripheralDiscovered(p, discovery.Advertisement{LocalName: name, ManufacturerData: data})
	}
}

func (r *fakeRadio) startCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.starts)
}

func (r *fakeRadio) stopCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stops
}

func (r *fakeRadio) handlerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

// serviceRecorder collects serviceUp notifications.
type serviceRecorder struct {
	mu   sync.Mutex
	recs []*discovery.ServiceRecord
}

func (s *serviceRecorder) handle(rec *discovery.ServiceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
}

func (s *serviceRecorder) all() []*discovery.ServiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*discovery.ServiceRecord(nil), s.recs...)
}

// captureLogger keeps every event in memory.
type captureLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *captureLogger) Log(event log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *captureLogger) all() []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]log.Event(nil), l.events...)
}

// encoderLogger writes events straight to a CBOR stream.
type encoderLogger struct {
	enc *cbor.Encoder
}

func (l encoderLogger) Log(event log.Event) {
	_ = l.enc.Encode(event)
}
