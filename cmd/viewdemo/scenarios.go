package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/viewkit/container"
	"github.com/kbukum/viewkit/observability"
	"github.com/kbukum/viewkit/view"
)

// Inputs are the sources shared by all scenarios.
type Inputs struct {
	Numbers   []int
	TakeCount int
	DropCount int
	Names     *container.OrderedMap[int, string]
	Set       *container.OrderedSet[int]
	// Metrics, when set, observes every scenario source.
	Metrics *observability.Metrics
}

// newInputs builds the scenario sources from the demo configuration.
func newInputs(cfg DemoConfig, metrics *observability.Metrics) Inputs {
	return Inputs{
		Numbers:   cfg.Numbers,
		TakeCount: cfg.TakeCount,
		DropCount: cfg.DropCount,
		Names:     container.OrderedMapOf(map[int]string{1: "one", 2: "two", 3: "three"}),
		Set:       container.NewOrderedSet(1, 2, 3),
		Metrics:   metrics,
	}
}

// Scenario is a named pipeline printed by the run command.
type Scenario struct {
	Name        string
	Description string
	Run         func(ctx context.Context, in Inputs) (string, error)
}

type namePair = view.Pair[int, string]

var scenarios = []Scenario{
	{
		Name:        "keys-reverse",
		Description: "{1:one 2:two 3:three} | keys | reverse",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r := view.Pipe2(observe[namePair](in, "keys-reverse", in.Names),
				view.Keys[namePair, int](),
				view.Reverse[int](),
			)
			return collect(ctx, in, "keys-reverse", r), nil
		},
	},
	{
		Name:        "set-keys-reverse",
		Description: "set{1 2 3} | keys | reverse",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r := view.Pipe2(observe[int](in, "set-keys-reverse", in.Set),
				view.Keys[int, int](),
				view.Reverse[int](),
			)
			return collect(ctx, in, "set-keys-reverse", r), nil
		},
	},
	{
		Name:        "filter-even",
		Description: "numbers | filter(even)",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r := view.Pipe(numbers(in, "filter-even"), view.Filter(isEven))
			return collect(ctx, in, "filter-even", r), nil
		},
	},
	{
		Name:        "take",
		Description: "numbers | take(demo.take_count)",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r, err := view.TryPipe(numbers(in, "take"), view.Take[int](in.TakeCount))
			if err != nil {
				return "", err
			}
			return collect(ctx, in, "take", r), nil
		},
	},
	{
		Name:        "drop",
		Description: "numbers | drop(demo.drop_count)",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r, err := view.TryPipe(numbers(in, "drop"), view.Drop[int](in.DropCount))
			if err != nil {
				return "", err
			}
			return collect(ctx, in, "drop", r), nil
		},
	},
	{
		Name:        "keys-square-drop",
		Description: "{1:one 2:two 3:three} | keys | transform(square) | drop(1)",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r := view.Pipe3(observe[namePair](in, "keys-square-drop", in.Names),
				view.Keys[namePair, int](),
				view.Transform(square),
				view.Drop[int](1),
			)
			return collect(ctx, in, "keys-square-drop", r), nil
		},
	},
	{
		Name:        "reverse-take",
		Description: "numbers | reverse | take(demo.take_count)",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			lastN := view.Compose(view.Reverse[int](), view.Take[int](in.TakeCount))
			r, err := view.TryPipe(numbers(in, "reverse-take"), lastN)
			if err != nil {
				return "", err
			}
			return collect(ctx, in, "reverse-take", r), nil
		},
	},
	{
		Name:        "transform-square",
		Description: "numbers | transform(square)",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r := view.Pipe(numbers(in, "transform-square"), view.Transform(square))
			return collect(ctx, in, "transform-square", r), nil
		},
	},
	{
		Name:        "values",
		Description: "{1:one 2:two 3:three} | values",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r := view.Pipe(observe[namePair](in, "values", in.Names), view.Values[namePair, string]())
			return collect(ctx, in, "values", r), nil
		},
	},
	{
		Name:        "keys-filter-even",
		Description: "{1:one 2:two 3:three} | keys | filter(even)",
		Run: func(ctx context.Context, in Inputs) (string, error) {
			r := view.Pipe2(observe[namePair](in, "keys-filter-even", in.Names),
				view.Keys[namePair, int](),
				view.Filter(isEven),
			)
			return collect(ctx, in, "keys-filter-even", r), nil
		},
	},
}

// findScenario returns the scenario called name.
func findScenario(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}

func isEven(n int) bool { return n%2 == 0 }

func square(n int) int { return n * n }

func numbers(in Inputs, stage string) view.Range[int] {
	return observe[int](in, stage, view.FromSlice(in.Numbers))
}

func observe[T any](in Inputs, stage string, r view.Range[T]) view.Range[T] {
	if in.Metrics == nil {
		return r
	}
	return view.Pipe(r, observability.Observe[T](in.Metrics, stage))
}

func collect[T any](ctx context.Context, in Inputs, name string, r view.Range[T]) string {
	start := time.Now()
	out := observability.CollectTraced(ctx, name, r)
	if in.Metrics != nil {
		in.Metrics.RecordCollect(ctx, name, len(out), time.Since(start))
	}
	return fmt.Sprint(out)
}
