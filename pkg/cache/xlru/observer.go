package xlru

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/cachekit/xlru"

	metricHitTotal      = "cachekit.lru.hit.total"
	metricMissTotal     = "cachekit.lru.miss.total"
	metricPutTotal      = "cachekit.lru.put.total"
	metricEvictionTotal = "cachekit.lru.eviction.total"
)

// observerConfig 观测器配置。
type observerConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// ObserverOption 定义观测器的配置选项。
type ObserverOption func(*observerConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) ObserverOption {
	return func(cfg *observerConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认使用全局 Provider。
func WithMeterProvider(provider metric.MeterProvider) ObserverOption {
	return func(cfg *observerConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// Observer 基于 OpenTelemetry 计数器记录缓存的命中、未命中、写入与淘汰次数。
// 一个 Observer 可以被多个 Cache 共享；nil Observer 上的记录调用是空操作。
type Observer struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	puts      metric.Int64Counter
	evictions metric.Int64Counter
}

// NewObserver 创建缓存统计观测器。
func NewObserver(opts ...ObserverOption) (*Observer, error) {
	cfg := &observerConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	hits, err := meter.Int64Counter(
		metricHitTotal,
		metric.WithDescription("cache lookups that found the key"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xlru: create hit counter failed: %w", err)
	}

	misses, err := meter.Int64Counter(
		metricMissTotal,
		metric.WithDescription("cache lookups that missed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xlru: create miss counter failed: %w", err)
	}

	puts, err := meter.Int64Counter(
		metricPutTotal,
		metric.WithDescription("entries written into the cache"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xlru: create put counter failed: %w", err)
	}

	evictions, err := meter.Int64Counter(
		metricEvictionTotal,
		metric.WithDescription("entries evicted by the capacity bound"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xlru: create eviction counter failed: %w", err)
	}

	return &Observer{
		hits:      hits,
		misses:    misses,
		puts:      puts,
		evictions: evictions,
	}, nil
}

// 缓存操作没有 context 参数（同步、无阻塞），计数统一挂在 Background 上。

func (o *Observer) observeHit() {
	if o == nil {
		return
	}
	o.hits.Add(context.Background(), 1)
}

func (o *Observer) observeMiss() {
	if o == nil {
		return
	}
	o.misses.Add(context.Background(), 1)
}

func (o *Observer) observePut() {
	if o == nil {
		return
	}
	o.puts.Add(context.Background(), 1)
}

func (o *Observer) observeEviction() {
	if o == nil {
		return
	}
	o.evictions.Add(context.Background(), 1)
}
