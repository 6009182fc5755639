package simultaneously_test

import (
	"context"
	"fmt"

	"github.com/bwintertkb/retry-macro/simultaneously"
)

func ExampleDo() {
	err := simultaneously.Do(context.Background(), 2,
		func(ctx context.Context) error {
			fmt.Println("warming cache")

			return nil
		},
		func(ctx context.Context) error {
			fmt.Println("warming cache")

			return nil
		},
	)

	fmt.Println(err)
	// Output:
	// warming cache
	// warming cache
	// <nil>
}
