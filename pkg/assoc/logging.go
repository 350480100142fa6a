package assoc

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("cwm/assoc", "bidirectional associations")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
