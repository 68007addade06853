package tools

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dcastro/dequenet/std/log"
	"github.com/dcastro/dequenet/std/types/lockfree"
	"github.com/dcastro/dequenet/std/utils"
	"github.com/dcastro/dequenet/std/utils/toolutils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Perf hammers a deque from several goroutines and reports throughput.
type Perf struct {
	config     *PerfConfig
	configFile string
}

// PerfResult is the outcome of one harness run.
type PerfResult struct {
	Ops      uint64
	Pushes   uint64
	Pops     uint64
	Misses   uint64
	Elapsed  time.Duration
	Count    int64
	Sum      int64
	Digest   uint64
	Verified bool
	CpuUser  time.Duration
	CpuSys   time.Duration
	CpuOk    bool

	counters PerfCounters
}

// perfTally is the per-worker bookkeeping, merged after the run.
type perfTally struct {
	ops     uint64
	pushes  uint64
	pops    uint64
	misses  uint64
	pushSum int64
	popSum  int64
}

// CmdPerf creates the perf command.
func CmdPerf() *cobra.Command {
	p := NewPerf(DefaultPerfConfig())

	cmd := &cobra.Command{
		GroupID: "tools",
		Use:     "perf",
		Short:   "Measure deque throughput under concurrent mutation",
		Long: `Seed a deque, mutate it from several goroutines for a fixed time,
then print operation counts and check that the deque is consistent.`,
		Args:    cobra.NoArgs,
		Example: `  dequenet perf -t 8 -d 5s --counters slim`,
		Run:     p.run,
	}

	p.bindFlags(cmd.Flags())
	return cmd
}

func (p *Perf) bindFlags(flags *pflag.FlagSet) {
	c := p.config
	flags.StringVarP(&p.configFile, "config", "c", "", "YAML configuration file")
	flags.IntVarP(&c.Threads, "threads", "t", c.Threads, "Number of mutating goroutines")
	flags.DurationVarP(&c.Duration, "duration", "d", c.Duration, "Duration of the run")
	flags.IntVarP(&c.InitialCount, "initial", "n", c.InitialCount, "Number of values the deque starts with")
	flags.StringVar(&c.Counters, "counters", c.Counters, "Counter container (none, slim)")
	flags.BoolVar(&c.Verify, "verify", c.Verify, "Verify the deque after the run")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")
}

// NewPerf creates a harness for the given configuration.
func NewPerf(config *PerfConfig) *Perf {
	return &Perf{config: config}
}

func (p *Perf) String() string {
	return "perf"
}

// resolve loads the configuration file, if any, and re-applies the
// flags given on the command line on top of it.
func (p *Perf) resolve(flags *pflag.FlagSet) (*PerfConfig, error) {
	if p.configFile == "" {
		return p.config, nil
	}

	file := DefaultPerfConfig()
	if err := toolutils.ReadYaml(file, p.configFile); err != nil {
		return nil, err
	}

	flagged := p.config
	overrides := map[string]func(){
		"threads":   func() { file.Threads = flagged.Threads },
		"duration":  func() { file.Duration = flagged.Duration },
		"initial":   func() { file.InitialCount = flagged.InitialCount },
		"counters":  func() { file.Counters = flagged.Counters },
		"verify":    func() { file.Verify = flagged.Verify },
		"log-level": func() { file.LogLevel = flagged.LogLevel },
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})
	return file, nil
}

func (p *Perf) run(cmd *cobra.Command, _ []string) {
	config, err := p.resolve(cmd.Flags())
	if err != nil {
		log.Fatal(p, "Unable to load configuration", "err", err)
		return
	}
	p.config = config

	logger, err := log.Open(os.Stderr, config.LogFormat, config.LogLevel)
	if err != nil {
		log.Fatal(p, "Invalid logging configuration", "err", err)
		return
	}
	log.SetDefault(logger)

	res, err := p.Run(cmd.Context())
	if res != nil {
		p.report(toolutils.StatusPrinter{File: cmd.OutOrStdout(), Padding: 14}, res)
	}
	if err != nil {
		log.Fatal(p, "Run failed", "err", err)
		return
	}
}

// Run executes the harness and returns its result. A verification failure
// returns both the result and an error wrapping ErrVerify.
func (p *Perf) Run(ctx context.Context) (*PerfResult, error) {
	config := p.config
	if err := config.Validate(); err != nil {
		return nil, err
	}

	deque := lockfree.NewDequeFromSlice(slices.Repeat([]int{1}, config.InitialCount))
	counters := NewPerfCounters(config.Counters, config.Threads)
	schedule := config.schedule()
	tallies := make([]perfTally, config.Threads)

	ctx, cancel := context.WithTimeout(ctx, config.Duration)
	defer cancel()
	var stop atomic.Bool
	context.AfterFunc(ctx, func() { stop.Store(true) })

	log.Info(p, "Starting mutators",
		"threads", config.Threads,
		"duration", config.Duration,
		"initial", config.InitialCount,
		"schedule", len(schedule))

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < config.Threads; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			defer counters.Complete(id)
			defer p.recoverWorker(id)

			tallies[id] = mutate(deque, schedule, id, &stop, counters)
			log.Debug(p, "Mutator finished", "worker", id, "ops", tallies[id].ops)
		}(i)
	}
	wg.Wait()

	res := &PerfResult{
		Elapsed:  time.Since(start),
		Count:    int64(config.InitialCount),
		Sum:      int64(config.InitialCount),
		counters: counters,
	}
	for _, t := range tallies {
		res.Ops += t.ops
		res.Pushes += t.pushes
		res.Pops += t.pops
		res.Misses += t.misses
		res.Count += int64(t.pushes) - int64(t.pops)
		res.Sum += t.pushSum - t.popSum
	}
	res.CpuUser, res.CpuSys, res.CpuOk = cpuTime()

	log.Info(p, "Mutators stopped", "ops", res.Ops, "elapsed", res.Elapsed)

	if !config.Verify {
		return res, nil
	}

	digest, err := verifyDeque(deque, res.Count, res.Sum)
	if err != nil {
		log.Warn(p, "Deque verification failed", "err", err)
		return res, err
	}
	res.Digest = digest
	res.Verified = true
	return res, nil
}

// mutate runs one worker's share of the schedule until stop is set.
func mutate(d *lockfree.Deque[int], schedule []perfOp, id int, stop *atomic.Bool, counters PerfCounters) (t perfTally) {
	rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(id)))
	for i := id; !stop.Load(); i++ {
		switch schedule[i%len(schedule)] {
		case opPushLeft:
			v := rnd.IntN(50) + 1
			d.PushLeft(v)
			t.pushes++
			t.pushSum += int64(v)
		case opPushRight:
			v := rnd.IntN(50) + 1
			d.PushRight(v)
			t.pushes++
			t.pushSum += int64(v)
		case opPopLeft:
			if v, ok := d.TryPopLeft(); ok {
				t.pops++
				t.popSum += int64(v)
			} else {
				t.misses++
			}
		case opPopRight:
			if v, ok := d.TryPopRight(); ok {
				t.pops++
				t.popSum += int64(v)
			} else {
				t.misses++
			}
		}
		t.ops++
		counters.Increment(id)
	}
	return t
}

// recoverWorker dumps all goroutine stacks, then re-raises the worker's panic.
func (p *Perf) recoverWorker(id int) {
	if r := recover(); r != nil {
		log.Error(p, "Mutator panicked", "worker", id, "panic", r)
		utils.PrintStackTrace(os.Stderr)
		panic(r)
	}
}

func (p *Perf) report(pr toolutils.StatusPrinter, res *PerfResult) {
	pr.Section("deque perf statistics")
	pr.Print("threads", p.config.Threads)
	pr.Print("elapsed", res.Elapsed.Round(time.Millisecond))
	pr.Print("ops", res.Ops)
	pr.Print("ops/s", rate(res.Ops, res.Elapsed))
	pr.Print("pushes", res.Pushes)
	pr.Print("pops", res.Pops)
	pr.Print("empty-misses", res.Misses)
	pr.Print("final-count", res.Count)
	if res.CpuOk {
		pr.Print("cpu-user", res.CpuUser.Round(time.Millisecond))
		pr.Print("cpu-sys", res.CpuSys.Round(time.Millisecond))
	}
	if p.config.Verify {
		pr.Print("verified", res.Verified)
		if res.Verified {
			pr.Print("digest", fmt.Sprintf("%016x", res.Digest))
		}
	}

	if p.config.Counters != "none" {
		pr.Section("counters")
		res.counters.Print(pr)
	}
}
