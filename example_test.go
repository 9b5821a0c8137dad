package act_test

import (
	"fmt"

	"github.com/stateforward/go-act"
	"github.com/stateforward/go-act/store"
)

func Example() {
	registry := act.NewRegistry()
	increment := registry.MustNamed("INCREMENT")
	add := registry.MustNamed("add amount", act.WithPayload(func(args ...any) any {
		return args[0].(int) * args[1].(int)
	}))

	counter := store.New(0, store.NewReducer[int]().
		On(increment, func(state int, _ any, _ any) int { return state + 1 }).
		On(add, func(state int, payload any, _ any) int { return state + payload.(int) }))

	increment.AssignTo(counter)
	increment.Call()
	add.BindTo(counter).Call(3, 4)

	fmt.Println(add)
	fmt.Println(counter.State())
	// Output:
	// [1] add amount
	// 13
}

func ExampleRegistry_Named() {
	registry := act.NewRegistry()
	registry.MustNamed("INCREMENT")
	_, err := registry.Named("INCREMENT")
	fmt.Println(err)
	// Output: duplicate action type: INCREMENT
}

func ExampleMutable_Raw() {
	double := act.NewRegistry().Anonymous(act.WithPayload(func(args ...any) any {
		return args[0].(int) * 2
	}))
	fmt.Printf("%+v\n", double.Raw(5))
	// Output: {Type:[1] Payload:10 Meta:<nil>}
}
