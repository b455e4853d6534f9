package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/cachekit/internal/replay"
	"github.com/omeyang/cachekit/pkg/cache/xlru"
	"github.com/omeyang/cachekit/pkg/util/xversion"
)

// createCommands 创建全部子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "bench",
			Usage: "随机负载压测",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "size", Usage: "缓存容量", Value: 1024},
				&cli.IntFlag{Name: "ops", Usage: "操作总数", Value: 1_000_000},
				&cli.IntFlag{Name: "keyspace", Usage: "不同键的数量", Value: 4096},
			},
			Action: func(_ context.Context, cmd *cli.Command) error {
				logger := newLogger(cmd.Bool("verbose"))
				cfg := benchConfig{
					Size:     cmd.Int("size"),
					Ops:      cmd.Int("ops"),
					Keyspace: cmd.Int("keyspace"),
				}
				logger.Debug("bench starting", "size", cfg.Size, "ops", cfg.Ops, "keyspace", cfg.Keyspace)
				return runBench(cfg, os.Stdout)
			},
		},
		{
			Name:      "replay",
			Usage:     "回放 CSV 操作轨迹",
			ArgsUsage: "<trace.csv>",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "size", Usage: "缓存容量", Value: 1024},
			},
			Action: func(_ context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() != 1 {
					return cli.Exit("用法: cachectl replay <trace.csv>", 2)
				}
				return runReplay(cmd.Args().First(), cmd.Int("size"), os.Stdout)
			},
		},
		{
			Name:  "version",
			Usage: "显示版本信息",
			Action: func(_ context.Context, _ *cli.Command) error {
				return printVersion(os.Stdout)
			},
		},
	}
}

// benchConfig 压测参数。
type benchConfig struct {
	Size     int
	Ops      int
	Keyspace int
}

// runBench 以 get-or-put 模式跑一轮随机负载并输出汇总。
func runBench(cfg benchConfig, out io.Writer) error {
	if cfg.Ops <= 0 || cfg.Keyspace <= 0 {
		return cli.Exit("ops 与 keyspace 必须为正数", 2)
	}

	keys := make([]string, cfg.Keyspace)
	prefix := uuid.NewString()[:8]
	for i := range keys {
		keys[i] = fmt.Sprintf("%s:%d", prefix, i)
	}

	cache := xlru.New[string, int](cfg.Size)
	hits, misses := 0, 0

	start := time.Now()
	for i := range cfg.Ops {
		key := keys[rand.IntN(cfg.Keyspace)]
		if _, ok := cache.Get(key); ok {
			hits++
		} else {
			misses++
			cache.Put(key, i)
		}
	}
	elapsed := time.Since(start)

	if err := cache.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(out, "ops:       %d\n", cfg.Ops)
	fmt.Fprintf(out, "elapsed:   %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "rate:      %.0f ops/s\n", float64(cfg.Ops)/elapsed.Seconds())
	fmt.Fprintf(out, "hits:      %d\n", hits)
	fmt.Fprintf(out, "misses:    %d\n", misses)
	fmt.Fprintf(out, "hit ratio: %.2f%%\n", 100*float64(hits)/float64(cfg.Ops))
	fmt.Fprintf(out, "size:      %d / %d\n", cache.Len(), cache.Cap())
	return nil
}

// runReplay 回放轨迹文件并输出汇总。
func runReplay(path string, size int, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开轨迹文件失败: %w", err)
	}
	defer f.Close()

	ops, err := replay.ParseTrace(f)
	if err != nil {
		return err
	}
	res, err := replay.Run(ops, size)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "ops:       %d\n", res.Ops)
	fmt.Fprintf(out, "hits:      %d\n", res.Hits)
	fmt.Fprintf(out, "misses:    %d\n", res.Misses)
	fmt.Fprintf(out, "evictions: %d\n", res.Evictions)
	fmt.Fprintf(out, "size:      %d / %d\n", res.Size, res.Capacity)
	fmt.Fprintf(out, "keys:      %s\n", strings.Join(res.Keys, " > "))
	return nil
}

// printVersion 输出版本信息，优先使用 ldflags 注入的版本号。
func printVersion(out io.Writer) error {
	info, err := xversion.Parse(Version)
	if err != nil {
		info, _ = xversion.FromBuildInfo()
	}
	info.Title = "cachectl"

	fmt.Fprintln(out, info.DisplayName())
	fmt.Fprintf(out, "commit: %s, built: %s\n", GitCommit, BuildTime)
	return nil
}
