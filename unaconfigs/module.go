package unaconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/unasm/configs"
	"github.com/reusee/unasm/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
