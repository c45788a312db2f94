package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/schedsim/internal/schedsim/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := schedsim(); err != nil {
		logrus.Fatal(err)
	}
}

func schedsim() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
