package spec

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("cwm/spec", "model specifications")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
