package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l, nil
}
