package main

import (
	"github.com/sysfoundry/dsk/cmd"
	"github.com/sysfoundry/dsk/pkg/logger"
)

func main() {
	logger.Initialize()
	cmd.Execute()
}
