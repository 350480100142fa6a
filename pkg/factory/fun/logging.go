package fun

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("cwm/factory", "reference factory")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
