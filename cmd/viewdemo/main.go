// Command viewdemo runs the reference view pipelines.
//
//	viewdemo list
//	viewdemo run
//	viewdemo --log-level debug run -s keys-reverse -s take
package main

import (
	"context"
	"os"

	"github.com/kbukum/viewkit/logger"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		logger.Error("viewdemo failed", logger.ErrorFields("run", err))
		os.Exit(1)
	}
}
