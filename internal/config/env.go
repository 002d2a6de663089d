package config

import "strings"

// defaults.port → INIT_VUE_DEFAULTS_PORT
var envKeyReplacer = strings.NewReplacer(".", "_")
