// cachectl 是 cachekit 缓存的命令行工具，用于压测与轨迹回放。
//
// 用法:
//
//	cachectl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--verbose      输出 debug 级别日志
//
// 命令:
//
//	bench          随机负载压测
//	  --size       缓存容量 (默认: 1024)
//	  --ops        操作总数 (默认: 1000000)
//	  --keyspace   不同键的数量 (默认: 4096)
//	replay <file>  回放 CSV 操作轨迹
//	  --size       缓存容量 (默认: 1024)
//	version        显示版本信息
//
// 轨迹文件格式（'#' 开头的行是注释）:
//
//	put,<key>,<value>
//	get,<key>
//	remove,<key>
//	clear
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败
//	2: 参数错误（未知命令、缺少参数等）
//
// 示例:
//
//	cachectl bench --size 4096 --ops 5000000
//	cachectl replay trace.csv --size 100
//	cachectl version
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "cachectl",
		Usage:   "cachekit 缓存压测与轨迹回放工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "输出 debug 级别日志",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"XKit Team",
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			fmt.Fprintln(os.Stderr, err)
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// newLogger 根据 verbose 开关构建文本日志器。
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
