package insight

import (
	"github.com/sirupsen/logrus"
)

// QueryIDLogField is the logger field holding the id of a query.
const QueryIDLogField = "queryID"

// DatasetLogField is the logger field holding the id of a dataset.
const DatasetLogField = "dataset"

// SetLogLevel sets the level of the standard logger from its name. An empty
// name leaves the current level untouched.
func SetLogLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetLevel(lvl)
	return nil
}
