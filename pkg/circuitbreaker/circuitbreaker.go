// Package circuitbreaker 熔断器
//
// 三种状态：
//
//	CLOSED ──连续失败达到阈值──▶ OPEN ──Timeout到期──▶ HALF_OPEN
//	   ▲                                                  │
//	   └──────────────探测请求成功────────────────────────┘
//	                       探测失败则回到OPEN
//
// 本项目用它保护Redis列表缓存：Redis不可用时缓存调用立即返回ErrOpenState，
// 请求直接走数据库，不再逐个等待连接超时。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String 状态转字符串（便于日志）
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开，请求未执行
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	// MaxRequests 半开状态下允许通过的探测请求数
	MaxRequests uint32
	// Interval CLOSED状态下统计窗口长度，到期清零计数；0表示不清零
	Interval time.Duration
	// Timeout OPEN状态持续时间
	Timeout time.Duration
	// ReadyToTrip 判断是否应该打开熔断器，默认连续失败5次
	ReadyToTrip func(counts Counts) bool
	// OnStateChange 状态变化回调（日志、指标）
	OnStateChange func(name string, from, to State)
}

// DefaultConfig 缓存类依赖的默认配置
func DefaultConfig() Config {
	return Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	}
}

// Counts 当前窗口内的统计
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// FailureRate 失败率
func (c Counts) FailureRate() float64 {
	if c.Requests == 0 {
		return 0
	}
	return float64(c.TotalFailures) / float64(c.Requests)
}

func (c *Counts) onSuccess() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) onFailure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// CircuitBreaker 熔断器，可并发使用
type CircuitBreaker struct {
	name   string
	config Config
	now    func() time.Time

	mu         sync.Mutex
	state      State
	generation uint64 // 每次状态切换递增，丢弃切换前发出的请求结果
	counts     Counts
	expiry     time.Time
}

// NewCircuitBreaker 创建熔断器
func NewCircuitBreaker(name string, config Config) *CircuitBreaker {
	return newWithClock(name, config, time.Now)
}

func newWithClock(name string, config Config, now func() time.Time) *CircuitBreaker {
	if config.MaxRequests == 0 {
		config.MaxRequests = 1
	}
	if config.ReadyToTrip == nil {
		config.ReadyToTrip = func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 5
		}
	}

	cb := &CircuitBreaker{
		name:   name,
		config: config,
		now:    now,
		state:  StateClosed,
	}
	cb.resetExpiry(now())
	return cb
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Execute 在熔断器保护下执行req
// 熔断器打开时不执行req，直接返回ErrOpenState；req返回非nil即计为失败
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	err = req()
	cb.afterRequest(generation, err == nil)
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, _ := cb.currentState(cb.now())
	return state
}

// Counts 当前统计
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.counts
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(cb.now())
	switch {
	case state == StateOpen:
		return generation, ErrOpenState
	case state == StateHalfOpen && cb.counts.Requests >= cb.config.MaxRequests:
		return generation, ErrOpenState
	}

	cb.counts.Requests++
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	state, generation := cb.currentState(now)
	if generation != before {
		return
	}

	if success {
		cb.counts.onSuccess()
		if state == StateHalfOpen {
			cb.setState(StateClosed, now)
		}
		return
	}

	cb.counts.onFailure()
	switch state {
	case StateClosed:
		if cb.config.ReadyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		cb.setState(StateOpen, now)
	}
}

// currentState 处理到期：CLOSED窗口到期清零，OPEN到期转HALF_OPEN
func (cb *CircuitBreaker) currentState(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.counts = Counts{}
			cb.resetExpiry(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state
	cb.generation++
	cb.counts = Counts{}
	cb.resetExpiry(now)

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.name, prev, state)
	}
}

func (cb *CircuitBreaker) resetExpiry(now time.Time) {
	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 {
			cb.expiry = now.Add(cb.config.Interval)
		} else {
			cb.expiry = time.Time{}
		}
	case StateOpen:
		cb.expiry = now.Add(cb.config.Timeout)
	default:
		cb.expiry = time.Time{}
	}
}
