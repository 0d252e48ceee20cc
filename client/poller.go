package client

import (
	"context"
	"time"

	"foto-go/internal/api/dto"
)

// 默认轮询间隔，与服务端 feed.poll_interval 配置保持一致
const DefaultPollInterval = 30 * time.Second

// FeedSource 最新评论数据源，*Client 满足该接口
type FeedSource interface {
	LatestComments(ctx context.Context, limit int) ([]dto.CommentInfo, error)
}

// FeedPoller 周期拉取最新评论，每次成功都回调完整快照。
// 拉取失败时保留上一次的快照不回调，下个周期重试。
type FeedPoller struct {
	source   FeedSource
	interval time.Duration
	limit    int

	// OnUpdate 每次成功拉取后回调，参数是完整的最新快照
	OnUpdate func(items []dto.CommentInfo)
	// OnError 拉取失败时回调，可为 nil
	OnError func(err error)
}

// NewFeedPoller 创建轮询器，interval 传 0 使用默认间隔
func NewFeedPoller(source FeedSource, interval time.Duration, limit int) *FeedPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &FeedPoller{
		source:   source,
		interval: interval,
		limit:    limit,
	}
}

// Run 启动轮询（阻塞），先立即拉一次，之后按固定间隔拉取，
// ctx 取消后返回
func (p *FeedPoller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *FeedPoller) poll(ctx context.Context) {
	items, err := p.source.LatestComments(ctx, p.limit)
	if err != nil {
		if p.OnError != nil && ctx.Err() == nil {
			p.OnError(err)
		}
		return
	}

	if p.OnUpdate != nil {
		p.OnUpdate(items)
	}
}
