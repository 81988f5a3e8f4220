package config

import "errors"

// ErrMissingMapPath is returned by Load when neither the config file
// nor GRIDPIBT_MAP_PATH names a map; a daemon cannot start without one.
var ErrMissingMapPath = errors.New("config: map_path is required")
