package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("cwm/cwmctl", "warehouse model command line tool")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// setupLogging enables the given log level for all cwm realms.
func setupLogging(level string) error {
	if level == "" {
		return nil
	}
	l, err := logging.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("cwm")))
	return nil
}
