// Package main is the entry point for the hueseek application.
package main

import (
	"github.com/hueseek/hueseek/cmd"
	"github.com/hueseek/hueseek/config"
	"github.com/hueseek/hueseek/internal/cache"
	"github.com/hueseek/hueseek/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
