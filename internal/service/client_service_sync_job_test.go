// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWait = time.Second
	testTick = 5 * time.Millisecond
)

// spyPuller считает вызовы Pull.
type spyPuller struct {
	calls atomic.Int64
	err   error
}

func (s *spyPuller) Pull(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	spy := &spyPuller{}
	job := NewClientSyncJob(spy, logger.Nop())
	require.NotNil(t, job)

	// проверяем что возвращённый объект реализует ClientSyncJob
	var _ ClientSyncJob = job
	// и что Vault подходит как Puller
	var _ Puller = (*Vault)(nil)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsPull(t *testing.T) {
	spy := &spyPuller{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, testWait, testTick,
		"Pull должен быть вызван несколько раз")
}

func TestClientSyncJob_Start_ErrorsDoNotStopJob(t *testing.T) {
	spy := &spyPuller{err: errors.New("server down")}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() >= 2 }, testWait, testTick)
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyPuller{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "после Stop новых вызовов быть не должно")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyPuller{}, logger.Nop())

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyPuller{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	// Повторный Stop не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyPuller{}
	job := NewClientSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 → дефолт 5 минут, за 20ms вызовов быть не должно
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load(), "при дефолтном интервале 5min за 20ms вызовов нет")
}

func TestClientSyncJob_Start_NegativeInterval(t *testing.T) {
	spy := &spyPuller{}
	job := NewClientSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// Отрицательный интервал → дефолт 5 минут
	job.Start(ctx, -1*time.Second)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyPuller{}
	job := NewClientSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() > 0 }, testWait, testTick)
	callsBefore := spy.calls.Load()

	// Start повторно на том же job, внутри вызовет Stop()
	job.Start(ctx, 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() > callsBefore }, testWait, testTick,
		"второй Start должен продолжить генерировать вызовы")
}

func TestClientSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyPuller{}
	job := NewClientSyncJob(spy, logger.Nop()).(*clientSyncJob)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(testWait):
		t.Fatal("goroutine did not exit after context cancellation")
	}
	job.Stop()
}
