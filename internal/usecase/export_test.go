//go:build unit

package usecase

import "context"

// WatcherCount reports the registered state watchers, read on the loop.
func WatcherCount(b *Broker) int {
	var n int
	if err := b.call(context.Background(), func() { n = len(b.watchers) }); err != nil {
		return -1
	}
	return n
}
