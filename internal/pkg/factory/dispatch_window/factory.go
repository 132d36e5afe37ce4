package dispatch_window

import "time"

const (
	defaultOfferTTL  = time.Minute
	defaultStaleness = 2 * time.Minute
)

// WindowFactory считает временные границы волны диспетчеризации:
// дедлайн ответа курьера и порог свежести его heartbeat.
type WindowFactory struct {
	offerTTL  time.Duration
	staleness time.Duration
}

func New(offerTTL, staleness time.Duration) *WindowFactory {
	if offerTTL <= 0 {
		offerTTL = defaultOfferTTL
	}
	if staleness <= 0 {
		staleness = defaultStaleness
	}
	return &WindowFactory{
		offerTTL:  offerTTL,
		staleness: staleness,
	}
}

func (f *WindowFactory) OfferDeadline(baseTime time.Time) time.Time {
	return baseTime.Add(f.offerTTL)
}

func (f *WindowFactory) StalenessCutoff(baseTime time.Time) time.Time {
	return baseTime.Add(-f.staleness)
}
