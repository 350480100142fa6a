package registry

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("cwm/registry", "implementation registries")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
