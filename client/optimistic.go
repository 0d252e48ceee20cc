package client

import "context"

// Snapshot 视图状态的深拷贝值，由 Capture 返回、Restore 消费。
// 快照作为值由每次调用自己持有，并发调用互不覆盖。
type Snapshot interface{}

// Snapshotter 能够捕获和恢复自身状态的本地视图
type Snapshotter interface {
	// Capture 返回当前状态的深拷贝快照
	Capture() Snapshot
	// Restore 把视图恢复到 snap 捕获时的状态
	Restore(snap Snapshot)
}

// Optimistic 乐观更新：先捕获快照，再本地改，再发请求；
// 请求失败时把视图恢复到本次调用捕获的快照并返回错误。
// 成功后不回读服务端状态，本地结果即最终结果。
func Optimistic(ctx context.Context, view Snapshotter, apply func(), send func(ctx context.Context) error) error {
	snap := view.Capture()
	apply()

	if err := send(ctx); err != nil {
		view.Restore(snap)
		return err
	}

	return nil
}
