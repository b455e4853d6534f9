package xlru

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// 缓存本身不启动 goroutine；ristretto 对照基准会启动内部 goroutine，
	// Close 后由 goleak 兜底确认没有泄漏。
	goleak.VerifyTestMain(m)
}
