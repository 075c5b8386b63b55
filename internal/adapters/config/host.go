package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultMasterConfig is the Salt master configuration read when no other is named.
	DefaultMasterConfig = "/etc/salt/master"

	// EnvPrefix prefixes the environment variables that override host settings.
	EnvPrefix = "SALTBUNDLE"

	keyCwd       = "cwd"
	keyConfigDir = "config_dir"
	keyHashType  = "hash_type"
)

// flagKeys maps command line flags onto host setting keys.
var flagKeys = map[string]string{
	"cwd":        keyCwd,
	"config-dir": keyConfigDir,
	"hash-type":  keyHashType,
}

// HostLoader assembles domain.HostOptions. Precedence is flag, then
// SALTBUNDLE_* environment, then the master configuration, then defaults.
type HostLoader struct {
	logger ports.Logger
}

// NewHostLoader creates a HostLoader.
func NewHostLoader(logger ports.Logger) *HostLoader {
	return &HostLoader{logger: logger}
}

// Load reads masterConfig (skipped when it does not exist) and merges it with
// the environment and the changed flags of flags, which may be nil.
func (h *HostLoader) Load(masterConfig string, flags *pflag.FlagSet) (domain.HostOptions, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyCwd, "")
	v.SetDefault(keyConfigDir, "")
	v.SetDefault(keyHashType, "")

	if masterConfig != "" {
		v.SetDefault(keyConfigDir, filepath.Dir(masterConfig))
		if err := h.readMaster(v, masterConfig); err != nil {
			return domain.HostOptions{}, err
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return domain.HostOptions{}, zerr.With(
					zerr.Wrap(errors.Join(domain.ErrHostOptionsInvalid, err), "bind flag"), "flag", name)
			}
		}
	}

	var settings HostSettings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.HostOptions{}, zerr.Wrap(errors.Join(domain.ErrHostOptionsInvalid, err), "decode host settings")
	}

	if settings.Cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.HostOptions{}, zerr.Wrap(errors.Join(domain.ErrHostOptionsInvalid, err), "resolve working directory")
		}
		settings.Cwd = wd
	}

	opts := domain.HostOptions{
		Cwd:      absolute(settings.Cwd),
		HashType: strings.ToLower(strings.TrimSpace(settings.HashType)),
	}
	if settings.ConfigDir != "" {
		opts.ConfigDir = absolute(settings.ConfigDir)
	}

	return opts, nil
}

func (h *HostLoader) readMaster(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Debug("master config " + path + " not found, using defaults")
			return nil
		}
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrHostOptionsInvalid, err), "stat master config"), "path", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrHostOptionsInvalid, err), "read master config"), "path", path)
	}
	return nil
}
