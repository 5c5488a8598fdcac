package rcv1go

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/rcv1go/objcache"
	"github.com/hupe1980/rcv1go/permutation"
	"github.com/hupe1980/rcv1go/source"
	"github.com/hupe1980/rcv1go/sparse"
	"github.com/hupe1980/rcv1go/svmlight"
	"github.com/hupe1980/rcv1go/topics"
)

// Shape of the full RCV1-v2 vector set.
const (
	NumSamples    = 804414
	NumFeatures   = 47236
	NumCategories = 103
)

// DefaultBaseURL is the JMLR location of the published archives.
const DefaultBaseURL = "http://jmlr.csail.mit.edu/papers/volume5/lewis04a"

// Description summarizes the dataset for the Dataset.Description field.
const Description = "RCV1-v2 (Lewis et al., 2004): 804,414 manually categorized " +
	"newswire stories as cosine-normalized log TF-IDF vectors over 47,236 " +
	"features, multilabeled with 103 topics. Training samples (23,149) come " +
	"before testing samples."

// Archive names relative to the base URL. The vector archives are listed in
// row-concatenation order: the training chunk comes first.
var vectorArchives = []string{
	"a13-vector-files/lyrl2004_vectors_train.dat.gz",
	"a13-vector-files/lyrl2004_vectors_test_pt0.dat.gz",
	"a13-vector-files/lyrl2004_vectors_test_pt1.dat.gz",
	"a13-vector-files/lyrl2004_vectors_test_pt2.dat.gz",
	"a13-vector-files/lyrl2004_vectors_test_pt3.dat.gz",
}

const topicsArchive = "a08-topic-qrels/rcv1-v2.topics.qrels.gz"

// Cache keys, one per assembled artifact.
const (
	keySamples    = "samples"
	keySampleID   = "sample_id"
	keyTopics     = "sample_topics"
	keyTopicNames = "topics_names"
)

// Dataset is the assembled dataset. Rows of Data and Target and entries of
// SampleID are parallel: index i always refers to one document.
type Dataset struct {
	// Data holds one token-weight vector per document.
	Data *sparse.CSR

	// Target holds binary topic assignments; columns follow TargetNames.
	Target *sparse.CSR

	// SampleID holds the RCV1 document identifiers in row order.
	SampleID []int32

	// TargetNames holds the topic names in column order.
	TargetNames []string

	// Description is a short human-readable summary.
	Description string
}

// Fetch loads the dataset, downloading and caching it if necessary.
//
// The call is synchronous and all-or-nothing: each archive is buffered whole
// before decompression (the gzip members cannot be streamed from a
// non-seekable source), and a failed retrieval fails the call with no partial
// result. Concurrent first-time populations of the same cache are not
// coordinated; the last writer wins.
func Fetch(ctx context.Context, opts ...Option) (*Dataset, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store, err := o.resolveStore()
	if err != nil {
		return nil, err
	}

	data, sampleID, err := o.loadFeatures(ctx, store)
	if err != nil {
		return nil, err
	}

	target, names, err := o.loadTopics(ctx, store, sampleID)
	if err != nil {
		return nil, err
	}

	if o.shuffle {
		p := rand.New(rand.NewSource(o.seed)).Perm(data.Rows)
		data = data.SelectRows(p)
		target = target.SelectRows(p)
		sampleID = permutation.Apply(sampleID, p)
	}

	return &Dataset{
		Data:        data,
		Target:      target,
		SampleID:    sampleID,
		TargetNames: names,
		Description: Description,
	}, nil
}

func (o *options) resolveStore() (objcache.Store, error) {
	if o.store != nil {
		return o.store, nil
	}
	dir := o.dataHome
	if dir == "" {
		dir = os.Getenv("RCV1GO_DATA")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("rcv1: resolve data home: %w", err)
		}
		dir = filepath.Join(home, "rcv1go_data")
	}
	return objcache.NewDir(filepath.Join(dir, "RCV1")), nil
}

func (o *options) resolveSource() (source.Source, error) {
	if o.src != nil {
		return o.src, nil
	}
	return source.NewHTTP(o.baseURL)
}

// loadFeatures returns the token-weight matrix and the document identifiers
// in its row order (the concatenation order of the vector archives).
func (o *options) loadFeatures(ctx context.Context, store objcache.Store) (*sparse.CSR, []int32, error) {
	var (
		cached   sparse.CSR
		sampleID []int32
	)
	hitX, err := o.cacheGet(ctx, store, keySamples, &cached)
	if err != nil {
		return nil, nil, err
	}
	hitID, err := o.cacheGet(ctx, store, keySampleID, &sampleID)
	if err != nil {
		return nil, nil, err
	}
	if hitX && hitID {
		return &cached, sampleID, nil
	}

	if !o.download {
		return nil, nil, fmt.Errorf("rcv1: vectors: %w: %w", ErrDownloadDisabled, objcache.ErrNotFound)
	}

	src, err := o.resolveSource()
	if err != nil {
		return nil, nil, err
	}

	chunks := make([]*sparse.CSR, 0, len(vectorArchives))
	sampleID = nil
	for _, name := range vectorArchives {
		raw, err := o.fetchArchive(ctx, src, name)
		if err != nil {
			return nil, nil, err
		}

		start := time.Now()
		res, err := svmlight.Parse(bytes.NewReader(raw), svmlight.Options{
			NumFeatures: NumFeatures,
			OneBased:    true,
		})
		if err != nil {
			o.metrics.RecordParse("vectors", 0, time.Since(start), err)
			o.logger.LogParse(ctx, name, 0, 0, err)
			return nil, nil, &ErrMalformedArchive{Name: name, cause: err}
		}
		o.metrics.RecordParse("vectors", res.Matrix.Rows, time.Since(start), nil)
		o.logger.LogParse(ctx, name, res.Matrix.Rows, res.Matrix.NNZ(), nil)

		chunks = append(chunks, res.Matrix)
		for _, id := range res.Targets {
			sampleID = append(sampleID, int32(id))
		}
	}

	data, err := sparse.Vstack(chunks...)
	if err != nil {
		return nil, nil, fmt.Errorf("rcv1: stack vector chunks: %w", err)
	}

	if err := o.cachePut(ctx, store, keySamples, data); err != nil {
		return nil, nil, err
	}
	if err := o.cachePut(ctx, store, keySampleID, sampleID); err != nil {
		return nil, nil, err
	}
	return data, sampleID, nil
}

// loadTopics returns the binary topic matrix reindexed into the vector row
// order, plus the topic names in column order.
func (o *options) loadTopics(ctx context.Context, store objcache.Store, sampleID []int32) (*sparse.CSR, []string, error) {
	var (
		cached sparse.CSR
		names  []string
	)
	hitY, err := o.cacheGet(ctx, store, keyTopics, &cached)
	if err != nil {
		return nil, nil, err
	}
	hitNames, err := o.cacheGet(ctx, store, keyTopicNames, &names)
	if err != nil {
		return nil, nil, err
	}
	if hitY && hitNames {
		return &cached, names, nil
	}

	if !o.download {
		return nil, nil, fmt.Errorf("rcv1: topics: %w: %w", ErrDownloadDisabled, objcache.ErrNotFound)
	}

	src, err := o.resolveSource()
	if err != nil {
		return nil, nil, err
	}

	raw, err := o.fetchArchive(ctx, src, topicsArchive)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	assignments, err := topics.Parse(bytes.NewReader(raw))
	if err != nil {
		o.metrics.RecordParse("topics", 0, time.Since(start), err)
		o.logger.LogParse(ctx, topicsArchive, 0, 0, err)
		return nil, nil, &ErrMalformedArchive{Name: topicsArchive, cause: err}
	}
	o.metrics.RecordParse("topics", assignments.NumDocs(), time.Since(start), nil)
	o.logger.LogParse(ctx, topicsArchive, assignments.NumDocs(), 0, nil)

	// The topic file lists documents in its own first-seen order; reindex its
	// rows into the vector row order.
	perm, err := permutation.FindStrict(assignments.DocIDs, sampleID)
	o.logger.LogAlign(ctx, len(sampleID), err)
	if err != nil {
		return nil, nil, fmt.Errorf("rcv1: align topic rows to vector rows: %w", err)
	}

	target, err := sparse.FromBitmapRows(permutation.Apply(assignments.Rows, perm), len(assignments.Categories))
	if err != nil {
		return nil, nil, fmt.Errorf("rcv1: build topic matrix: %w", err)
	}
	names = assignments.Categories

	if err := o.cachePut(ctx, store, keyTopics, target); err != nil {
		return nil, nil, err
	}
	if err := o.cachePut(ctx, store, keyTopicNames, names); err != nil {
		return nil, nil, err
	}
	return target, names, nil
}

// fetchArchive retrieves one archive and returns its decompressed contents.
func (o *options) fetchArchive(ctx context.Context, src source.Source, name string) ([]byte, error) {
	start := time.Now()
	data, err := src.Fetch(ctx, name)
	o.metrics.RecordFetch(name, len(data), time.Since(start), err)
	o.logger.LogFetch(ctx, name, len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("rcv1: fetch %s: %w", name, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrMalformedArchive{Name: name, cause: err}
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, &ErrMalformedArchive{Name: name, cause: err}
	}
	return raw, nil
}

func (o *options) cacheGet(ctx context.Context, store objcache.Store, key string, v any) (bool, error) {
	data, err := store.Get(ctx, key)
	if errors.Is(err, objcache.ErrNotFound) {
		o.metrics.RecordCacheGet(key, false)
		o.logger.LogCache(ctx, key, false)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("rcv1: cache get %s: %w", key, err)
	}
	o.metrics.RecordCacheGet(key, true)
	o.logger.LogCache(ctx, key, true)

	if err := objcache.Decode(data, v); err != nil {
		return false, fmt.Errorf("rcv1: cache entry %s: %w", key, err)
	}
	return true, nil
}

func (o *options) cachePut(ctx context.Context, store objcache.Store, key string, v any) error {
	data, err := objcache.Encode(o.codec, o.compressor, v)
	if err != nil {
		return fmt.Errorf("rcv1: cache put %s: %w", key, err)
	}
	err = store.Put(ctx, key, data)
	o.metrics.RecordCachePut(key, len(data), err)
	if err != nil {
		return fmt.Errorf("rcv1: cache put %s: %w", key, err)
	}
	return nil
}
