package corpus

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "corpus")
