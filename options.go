package rcv1go

import (
	"github.com/hupe1980/rcv1go/codec"
	"github.com/hupe1980/rcv1go/objcache"
	"github.com/hupe1980/rcv1go/source"
)

type options struct {
	dataHome   string
	store      objcache.Store
	src        source.Source
	baseURL    string
	download   bool
	shuffle    bool
	seed       int64
	codec      codec.Codec
	compressor objcache.Compressor
	logger     *Logger
	metrics    MetricsCollector
}

func defaultOptions() *options {
	return &options{
		baseURL:  DefaultBaseURL,
		download: true,
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
}

// Option configures Fetch behavior.
type Option func(*options)

// WithDataHome overrides the root directory of the on-disk artifact cache.
// Defaults to $RCV1GO_DATA, falling back to ~/rcv1go_data. Ignored when
// WithCacheStore is set.
func WithDataHome(dir string) Option {
	return func(o *options) {
		o.dataHome = dir
	}
}

// WithCacheStore injects the artifact cache directly, bypassing the data-home
// directory resolution.
func WithCacheStore(s objcache.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithSource injects the archive source. Defaults to HTTP against the
// configured base URL.
func WithSource(s source.Source) Option {
	return func(o *options) {
		o.src = s
	}
}

// WithBaseURL overrides the URL the default HTTP source fetches archives
// from. Ignored when WithSource is set.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithDownloadIfMissing controls whether missing cache entries trigger a
// download. When disabled, a cache miss fails with an error wrapping
// ErrDownloadDisabled instead of retrieving.
func WithDownloadIfMissing(download bool) Option {
	return func(o *options) {
		o.download = download
	}
}

// WithShuffle enables shuffling of the assembled dataset. One shared
// permutation is applied to feature rows, label rows, and identifiers, so
// row i still describes a single document afterwards.
func WithShuffle() Option {
	return func(o *options) {
		o.shuffle = true
	}
}

// WithRandomSeed sets the seed of the shuffle permutation. The same seed
// always produces the same row order.
func WithRandomSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithCodec configures the codec used for newly written cache entries.
// If nil is passed, codec.Default is used. Existing entries are decoded by
// the codec recorded when they were written.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithCompressor configures the compressor used for newly written cache
// entries. If nil is passed, objcache.DefaultCompressor is used.
func WithCompressor(c objcache.Compressor) Option {
	return func(o *options) {
		o.compressor = c
	}
}

// WithLogger sets the structured logger for operation tracing.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
