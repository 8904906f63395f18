package session

import "github.com/cometbrowser/comet/internal/shell/domain"

// NoopStore is a Store that persists nothing. Used when session persistence
// is disabled.
type NoopStore struct{}

func (NoopStore) Put(domain.ViewID, domain.SuspendedCapture) error { return nil }

func (NoopStore) Get(domain.ViewID) (domain.SuspendedCapture, bool, error) {
	return domain.SuspendedCapture{}, false, nil
}

func (NoopStore) Delete(domain.ViewID) error { return nil }

func (NoopStore) All() (map[domain.ViewID]domain.SuspendedCapture, error) {
	return map[domain.ViewID]domain.SuspendedCapture{}, nil
}

func (NoopStore) Close() error { return nil }

var _ Store = NoopStore{}
