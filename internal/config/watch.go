package config

import (
	"fmt"
	"strings"

	"hlpnl/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads path on every write and hands the new config to onChange.
// Invalid edits are logged and ignored so the running config stays in force.
func Watch(path string, onChange func(*Config)) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("config watch requires a file path")
	}
	v, err := newViper(path)
	if err != nil {
		return err
	}
	v.OnConfigChange(func(evt fsnotify.Event) {
		if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			logger.Errorf("config reload failed (%s): %v", evt.Name, err)
			return
		}
		logger.Infof("config reloaded from %s", evt.Name)
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
	return nil
}
