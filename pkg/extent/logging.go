package extent

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("cwm/extent", "element extents")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
