package bench

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/seipan/bstree/bstree"
	"github.com/seipan/bstree/internal/helper"
)

const (
	OpInsert  = "insert"
	OpSearch  = "search"
	OpIterate = "iterate"
	OpClone   = "clone"
	OpRemove  = "remove"
)

var ops = []string{OpInsert, OpSearch, OpIterate, OpClone, OpRemove}

type (
	// Result は1種類の操作について、全ラウンドの合計時間と1回あたりの平均訪問ノード数を持つ。
	Result struct {
		Op         string
		Tree       time.Duration
		Map        time.Duration
		VisitedAvg float64
	}

	Report struct {
		Keys    int
		Rounds  int
		Sorted  bool
		Results []Result
		// 最終ラウンドで全キーを挿入した直後の木の形。
		Height             int
		ExternalPathLength int
		UnfilledPathLength int
	}

	Runner struct {
		cfg   Config
		rnd   *helper.Random
		timer *helper.Timer
		log   logrus.FieldLogger
	}
)

func NewRunner(cfg Config, log logrus.FieldLogger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bench config")
	}
	return &Runner{
		cfg:   cfg,
		rnd:   helper.NewRandom(cfg.Seed),
		timer: helper.NewTimer(),
		log:   log,
	}, nil
}

// keys は重複のないキーを cfg.Keys 個生成する。
func (r *Runner) keys() []int {
	seen := make(map[int]struct{}, r.cfg.Keys)
	keys := make([]int, 0, r.cfg.Keys)
	for len(keys) < r.cfg.Keys {
		k := r.rnd.NextInt(r.cfg.Min, r.cfg.Max)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	if r.cfg.Sorted {
		sort.Ints(keys)
	}
	return keys
}

// Run は設定されたラウンド数だけ各操作を計測する。
func (r *Runner) Run() (*Report, error) {
	report := &Report{Keys: r.cfg.Keys, Rounds: r.cfg.Rounds, Sorted: r.cfg.Sorted}
	results := make(map[string]*Result, len(ops))
	visited := make(map[string]int, len(ops))
	for _, op := range ops {
		results[op] = &Result{Op: op}
	}

	for round := 0; round < r.cfg.Rounds; round++ {
		keys := r.keys()
		tree := bstree.NewWithCapacity[int, int](len(keys))
		db := NewDefaultdb()

		record := func(op string, treeTime, mapTime time.Duration, v int) {
			results[op].Tree += treeTime
			results[op].Map += mapTime
			visited[op] += v
			r.log.WithFields(logrus.Fields{
				"round": round,
				"op":    op,
				"tree":  treeTime,
				"map":   mapTime,
			}).Debug("measured")
		}

		v := 0
		treeTime := r.timer.Measure(func() {
			for _, k := range keys {
				tree.Insert(k, k)
				v += tree.Visited()
			}
		})
		mapTime := r.timer.Measure(func() {
			for _, k := range keys {
				db.Set(k, k)
			}
		})
		record(OpInsert, treeTime, mapTime, v)
		if tree.Len() != len(keys) {
			return nil, errors.Errorf("round %d: tree holds %d keys, want %d", round, tree.Len(), len(keys))
		}
		report.Height = tree.Height()
		report.ExternalPathLength = tree.ExternalPathLength()
		report.UnfilledPathLength = tree.UnfilledPathLength()

		v = 0
		var lookupErr error
		treeTime = r.timer.Measure(func() {
			for _, k := range keys {
				if _, err := tree.At(k); err != nil && lookupErr == nil {
					lookupErr = err
				}
				v += tree.Visited()
			}
		})
		if lookupErr != nil {
			return nil, errors.Wrapf(lookupErr, "round %d", round)
		}
		mapTime = r.timer.Measure(func() {
			for _, k := range keys {
				db.Get(k)
			}
		})
		record(OpSearch, treeTime, mapTime, v)

		count := 0
		treeTime = r.timer.Measure(func() {
			for it := tree.Begin(); it.Valid(); it.Next() {
				count++
			}
		})
		var sorted []int
		mapTime = r.timer.Measure(func() {
			sorted = db.Keys()
		})
		if count != len(sorted) {
			return nil, errors.Errorf("round %d: iterated %d keys, want %d", round, count, len(sorted))
		}
		record(OpIterate, treeTime, mapTime, 0)

		treeTime = r.timer.Measure(func() {
			tree.Clone()
		})
		mapTime = r.timer.Measure(func() {
			cp := NewDefaultdb()
			for _, k := range sorted {
				val, _ := db.Get(k)
				cp.Set(k, val)
			}
		})
		record(OpClone, treeTime, mapTime, 0)

		order := r.rnd.Perm(len(keys))
		v = 0
		treeTime = r.timer.Measure(func() {
			for _, i := range order {
				tree.Remove(keys[i])
				v += tree.Visited()
			}
		})
		mapTime = r.timer.Measure(func() {
			for _, i := range order {
				db.Delete(keys[i])
			}
		})
		record(OpRemove, treeTime, mapTime, v)
		if !tree.IsEmpty() {
			return nil, errors.Errorf("round %d: %d keys left after remove", round, tree.Len())
		}
		db.Close()
	}

	calls := float64(r.cfg.Keys * r.cfg.Rounds)
	for _, op := range ops {
		res := results[op]
		res.VisitedAvg = float64(visited[op]) / calls
		report.Results = append(report.Results, *res)
	}
	return report, nil
}

// Print はレポートを表形式で w に書き出す。
func (rep *Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "keys: %d\trounds: %d\tsorted: %t\n", rep.Keys, rep.Rounds, rep.Sorted)
	fmt.Fprintf(tw, "height: %d\texternal path: %d\tunfilled path: %d\n", rep.Height, rep.ExternalPathLength, rep.UnfilledPathLength)
	fmt.Fprintln(tw, "op\ttree\tmap\tvisited/op")
	for _, res := range rep.Results {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%.2f\n", res.Op, res.Tree, res.Map, res.VisitedAvg)
	}
	return tw.Flush()
}
