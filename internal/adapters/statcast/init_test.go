package statcast_test

import "github.com/okian/batterlab/pkg/logger"

func init() {
	if err := logger.Init(logger.WithLevel("error")); err != nil {
		panic(err)
	}
}
