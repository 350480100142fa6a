package model

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("cwm/model", "warehouse metamodel object graph")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
