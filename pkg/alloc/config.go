package alloc

import (
	"github.com/rueian/rangepool/pkg/config"
	"github.com/rueian/rangepool/pkg/logger"
)

// NewPoolFromConfig builds a pool over [conf.Min, conf.Max).
func NewPoolFromConfig(conf config.Pool) (*Pool, error) {
	return NewRangedPool(conf.Min, conf.Max)
}

// NewKeysFromConfig builds a Keys over [conf.Min, conf.Max) logging through
// logger.Std, with debug output when conf.Debug is set.
func NewKeysFromConfig(conf config.Pool) (*Keys, error) {
	pool, err := NewPoolFromConfig(conf)
	if err != nil {
		return nil, err
	}
	return NewKeys(pool, WithLogger(&logger.Std{Debug: conf.Debug})), nil
}
