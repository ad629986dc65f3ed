package binding

// Subscription provides value channels for a subscriber.
type Subscription struct {
	Values <-chan float64
	Done   <-chan struct{}

	valueCh chan float64
	doneCh  chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		valueCh: make(chan float64, valueBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.Values = s.valueCh
	s.Done = s.doneCh
	return s
}

// close signals the subscriber to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers a value (non-blocking).
func (s *Subscription) send(v float64) {
	select {
	case s.valueCh <- v:
	default:
		// Drop if buffer full
	}
}
