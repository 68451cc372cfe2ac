package testing

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "fuzz-fixtures")
