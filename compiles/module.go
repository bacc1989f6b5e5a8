package compiles

import (
	"github.com/reusee/dscope"
	"github.com/reusee/unasm/logs"
	"github.com/reusee/unasm/unaconfigs"
)

type Module struct {
	dscope.Module
	Logs       logs.Module
	UnaConfigs unaconfigs.Module
}
