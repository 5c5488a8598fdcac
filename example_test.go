package rcv1go_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/hupe1980/rcv1go"
)

// Example downloads (or reads back from ~/rcv1go_data) the full dataset.
func Example() {
	ctx := context.Background()

	ds, err := rcv1go.Fetch(ctx,
		rcv1go.WithLogger(rcv1go.NewTextLogger(slog.LevelInfo)),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ds.Data.Rows, ds.Data.Cols)
	fmt.Println(ds.Target.Rows, ds.Target.Cols)
	fmt.Println(ds.TargetNames[0])
}

// Example_shuffled returns the rows in a seeded random order; features,
// topics, and identifiers keep their row correspondence.
func Example_shuffled() {
	ds, err := rcv1go.Fetch(context.Background(),
		rcv1go.WithShuffle(),
		rcv1go.WithRandomSeed(42),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ds.SampleID[0])
}
