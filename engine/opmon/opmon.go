package opmon

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xiaonanln/gameserver/engine/gwlog"
)

var (
	operationAllocPool = sync.Pool{
		New: func() interface{} {
			return &Operation{}
		},
	}

	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gameserver",
		Name:      "operation_duration_seconds",
		Help:      "Duration of monitored operations such as server ticks.",
		Buckets:   []float64{.0005, .001, .002, .004, .008, .016, .032, .064, .128, .256},
	}, []string{"operation"})

	operationSlow = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gameserver",
		Name:      "operation_slow_total",
		Help:      "Number of monitored operations exceeding their warn threshold.",
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(operationDuration, operationSlow)
}

type _OpInfo struct {
	count         uint64
	totalDuration time.Duration
	maxDuration   time.Duration
}

// Monitor collects per-operation duration statistics
type Monitor struct {
	sync.Mutex
	opInfos map[string]*_OpInfo
}

// NewMonitor creates an empty Monitor
func NewMonitor() *Monitor {
	m := &Monitor{
		opInfos: map[string]*_OpInfo{},
	}
	return m
}

func (monitor *Monitor) record(opname string, duration time.Duration) {
	monitor.Lock()
	info := monitor.opInfos[opname]
	if info == nil {
		info = &_OpInfo{}
		monitor.opInfos[opname] = info
	}
	info.count += 1
	info.totalDuration += duration
	if duration > info.maxDuration {
		info.maxDuration = duration
	}
	monitor.Unlock()
}

// Count returns how many times the operation has been recorded since the last Dump
func (monitor *Monitor) Count(opname string) uint64 {
	monitor.Lock()
	defer monitor.Unlock()
	if info := monitor.opInfos[opname]; info != nil {
		return info.count
	}
	return 0
}

// Dump writes the collected statistics to w and clears them
func (monitor *Monitor) Dump(w io.Writer) {
	type _T struct {
		name string
		info *_OpInfo
	}
	var opInfos map[string]*_OpInfo
	monitor.Lock()
	opInfos = monitor.opInfos
	monitor.opInfos = map[string]*_OpInfo{} // clear to be empty
	monitor.Unlock()

	var copyOpInfos []_T
	for name, opinfo := range opInfos {
		copyOpInfos = append(copyOpInfos, _T{name, opinfo})
	}
	sort.Slice(copyOpInfos, func(i, j int) bool {
		return copyOpInfos[i].name < copyOpInfos[j].name
	})
	fmt.Fprint(w, "=====================================================================================\n")
	for _, _t := range copyOpInfos {
		opname, opinfo := _t.name, _t.info
		fmt.Fprintf(w, "%-30sx%-10d AVG %-10s MAX %-10s\n", opname, opinfo.count, opinfo.totalDuration/time.Duration(opinfo.count), opinfo.maxDuration)
	}
}

// Operation is the type of operation to be monitored
type Operation struct {
	monitor   *Monitor
	name      string
	startTime time.Time
}

// StartOperation creates a new operation
func (monitor *Monitor) StartOperation(operationName string) *Operation {
	op := operationAllocPool.Get().(*Operation)
	op.monitor = monitor
	op.name = operationName
	op.startTime = time.Now()
	return op
}

// Finish finishes the operation and records the duration of operation.
//
// Returns true if the operation took at least warnThreshold.
func (op *Operation) Finish(warnThreshold time.Duration) (slow bool) {
	takeTime := time.Since(op.startTime)
	op.monitor.record(op.name, takeTime)
	operationDuration.WithLabelValues(op.name).Observe(takeTime.Seconds())
	if warnThreshold > 0 && takeTime >= warnThreshold {
		operationSlow.WithLabelValues(op.name).Inc()
		gwlog.Warnf("opmon: operation %s takes %s > %s", op.name, takeTime, warnThreshold)
		slow = true
	}
	op.monitor = nil
	operationAllocPool.Put(op)
	return
}
