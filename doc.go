// Package rcv1go loads the RCV1-v2 multilabel text categorization benchmark
// (Lewis et al., 2004): 804,414 newswire documents as cosine-normalized
// log TF-IDF vectors over 47,236 token stems, each assigned one or more of
// 103 topics.
//
// The published distribution splits the token-weight vectors across five
// gzip archives and ships topic assignments as a separate qrels file whose
// documents appear in a different order. Fetch downloads the archives (or a
// mirror of them), parses both sides, reconciles the two document orderings
// by permutation, and returns CSR sparse matrices with rows aligned document
// for document. Parsed artifacts are cached through an injectable store so
// subsequent calls skip the network entirely.
//
// # Quick Start
//
//	ctx := context.Background()
//	ds, err := rcv1go.Fetch(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ds.Data.Rows, ds.Data.Cols)    // 804414 47236
//	fmt.Println(ds.Target.Rows, ds.Target.Cols) // 804414 103
//
// Row i of ds.Data, row i of ds.Target, and ds.SampleID[i] all describe the
// same document, also after shuffling with WithShuffle.
package rcv1go
