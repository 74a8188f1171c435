package cryptg

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is shared by the engines and cmd/cryptg.
// The level is read from $LOG at startup.
var Logger = logrus.New()

func init() {
	if x, exists := os.LookupEnv("LOG"); exists {
		if level, err := ParseLevel(x); err == nil {
			Logger.SetLevel(level)
		}
	}
}

// ParseLevel maps a case insensitive level name like "debug" to a logrus.Level.
func ParseLevel(x string) (logrus.Level, error) {
	x = strings.ToLower(strings.TrimSpace(x))
	for _, l := range logrus.AllLevels {
		if l.String() == x {
			return l, nil
		}
	}
	return 0, errors.Errorf("unknown log level %q", x)
}
