package ransnx16

import (
	"math"

	"github.com/arloliu/htscodec/internal/options"
)

const (
	// DefaultMaxLength is the largest uncompressed length a Decoder accepts
	// unless configured otherwise.
	DefaultMaxLength = 1 << 30
	// DefaultMaxStripeDepth is the default limit on nested STRIPE streams.
	DefaultMaxStripeDepth = 4
)

type decoderConfig struct {
	maxLength         int
	maxStripeDepth    int
	stripeConcurrency int
}

func defaultDecoderConfig() decoderConfig {
	return decoderConfig{
		maxLength:         DefaultMaxLength,
		maxStripeDepth:    DefaultMaxStripeDepth,
		stripeConcurrency: 1,
	}
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*decoderConfig]

// WithMaxLength sets the largest uncompressed length, at any stage of the
// pipeline, that the decoder will allocate. Larger declared lengths fail
// with errs.ErrInvalidLength.
//
// Parameters:
//   - n: Limit in bytes, at least 1
//
// Returns:
//   - DecoderOption: Option for NewDecoder
func WithMaxLength(n int) DecoderOption {
	return options.New(func(c *decoderConfig) error {
		if err := options.CheckRange("max length", n, 1, math.MaxInt); err != nil {
			return err
		}
		c.maxLength = n

		return nil
	})
}

// WithMaxStripeDepth sets how deeply STRIPE streams may nest. Zero rejects
// striped streams entirely.
func WithMaxStripeDepth(depth int) DecoderOption {
	return options.New(func(c *decoderConfig) error {
		if err := options.CheckRange("max stripe depth", depth, 0, 64); err != nil {
			return err
		}
		c.maxStripeDepth = depth

		return nil
	})
}

// WithStripeConcurrency sets how many stripe sub-streams are decoded in
// parallel. The default of 1 decodes them sequentially.
func WithStripeConcurrency(workers int) DecoderOption {
	return options.New(func(c *decoderConfig) error {
		if err := options.CheckRange("stripe concurrency", workers, 1, 256); err != nil {
			return err
		}
		c.stripeConcurrency = workers

		return nil
	})
}
