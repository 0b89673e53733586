// Package autoload initializes the global logger from LOG_* environment
// variables as a side effect of being imported.
package autoload

import (
	"github.com/kelseyhightower/envconfig"

	logx "github.com/shopmate-ai/shopmate/pkg/logger"
)

func init() {
	var conf logx.Config
	envconfig.MustProcess("LOG", &conf)
	logx.Init(conf)
}
