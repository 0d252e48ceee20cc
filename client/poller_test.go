package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"foto-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource 按脚本返回结果的最新评论数据源
type scriptedSource struct {
	mu      sync.Mutex
	results []func() ([]dto.CommentInfo, error)
	calls   int
}

func (s *scriptedSource) LatestComments(ctx context.Context, limit int) ([]dto.CommentInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.calls
	s.calls++
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	return s.results[i]()
}

func TestPollerDeliversSnapshots(t *testing.T) {
	source := &scriptedSource{results: []func() ([]dto.CommentInfo, error){
		func() ([]dto.CommentInfo, error) { return []dto.CommentInfo{{ID: "c1"}}, nil },
		func() ([]dto.CommentInfo, error) { return []dto.CommentInfo{{ID: "c2"}, {ID: "c1"}}, nil },
	}}

	updates := make(chan []dto.CommentInfo, 16)
	poller := NewFeedPoller(source, 5*time.Millisecond, 5)
	poller.OnUpdate = func(items []dto.CommentInfo) {
		updates <- items
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	// 启动时立即拉一次
	first := <-updates
	require.Len(t, first, 1)
	assert.Equal(t, "c1", first[0].ID)

	second := <-updates
	require.Len(t, second, 2)
	assert.Equal(t, "c2", second[0].ID)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
}

func TestPollerKeepsGoingAfterError(t *testing.T) {
	source := &scriptedSource{results: []func() ([]dto.CommentInfo, error){
		func() ([]dto.CommentInfo, error) { return nil, errors.New("server down") },
		func() ([]dto.CommentInfo, error) { return []dto.CommentInfo{{ID: "c1"}}, nil },
	}}

	updates := make(chan []dto.CommentInfo, 16)
	errs := make(chan error, 16)
	poller := NewFeedPoller(source, 5*time.Millisecond, 5)
	poller.OnUpdate = func(items []dto.CommentInfo) { updates <- items }
	poller.OnError = func(err error) { errs <- err }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	// 第一次失败只报错不回调快照，下个周期成功后恢复
	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("expected an error callback")
	}

	select {
	case items := <-updates:
		require.Len(t, items, 1)
		assert.Equal(t, "c1", items[0].ID)
	case <-time.After(time.Second):
		t.Fatal("expected a successful update after the error")
	}
}

func TestPollerDefaultInterval(t *testing.T) {
	poller := NewFeedPoller(&scriptedSource{}, 0, 5)
	assert.Equal(t, DefaultPollInterval, poller.interval)
}
