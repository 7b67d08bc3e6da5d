package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/store"
)

// snapshotWriter saves offline snapshots in the background. Only the most
// recently submitted snapshot matters: a write that finds a newer one
// already on disk is skipped.
type snapshotWriter struct {
	provider store.OfflineProvider
	logger   *logger.Logger

	mu        sync.Mutex
	submitted uint64

	writeMu sync.Mutex
	written uint64

	wg sync.WaitGroup
}

func newSnapshotWriter(provider store.OfflineProvider, logger *logger.Logger) *snapshotWriter {
	return &snapshotWriter{provider: provider, logger: logger}
}

// Submit schedules produce and the save of its result. Errors are logged and
// never returned: the snapshot is a cache of data the server already has.
func (w *snapshotWriter) Submit(ctx context.Context, produce func() (string, error)) {
	w.mu.Lock()
	w.submitted++
	seq := w.submitted
	w.mu.Unlock()

	ctx = context.WithoutCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		cipher, err := produce()
		if err != nil {
			w.logger.Err(err).Str("func", "snapshotWriter.Submit").Uint64("seq", seq).
				Msg("error encrypting offline vault")
			return
		}

		w.writeMu.Lock()
		defer w.writeMu.Unlock()

		if seq < w.written {
			w.logger.Debug().Str("func", "snapshotWriter.Submit").Uint64("seq", seq).
				Msg("newer offline vault already saved, skipping")
			return
		}

		if err = w.provider.SaveOfflineCipher(ctx, cipher); err != nil {
			w.logger.Err(err).Str("func", "snapshotWriter.Submit").Uint64("seq", seq).
				Msg("error saving offline vault")
			return
		}
		w.written = seq
		w.logger.Debug().Str("func", "snapshotWriter.Submit").Uint64("seq", seq).Msg("offline vault saved")
	}()
}

// Wait blocks until every submitted snapshot was written or dropped.
func (w *snapshotWriter) Wait() {
	w.wg.Wait()
}
