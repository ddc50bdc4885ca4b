package config

import "github.com/kelseyhightower/envconfig"

type Pool struct {
	Min   uint32 `envconfig:"POOL_MIN"   default:"1"`
	Max   uint32 `envconfig:"POOL_MAX"   default:"4294967295"`
	Debug bool   `envconfig:"POOL_DEBUG" default:"false"`
}

func GetPool() (out Pool, err error) {
	err = envconfig.Process("", &out)
	return
}
