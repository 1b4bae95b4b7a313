package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/purpose168/powermessage/internal/env"
	"github.com/purpose168/powermessage/internal/filepathext"
	"github.com/purpose168/powermessage/internal/fsext"
	"github.com/purpose168/powermessage/internal/home"
	"github.com/purpose168/powermessage/internal/log"
	"github.com/qjebbs/go-jsons"
)

// Load 从默认路径加载配置并初始化日志。
func Load(workingDir, dataDir string, debug bool) (*Config, error) {
	cfg, err := load(env.New(), workingDir, dataDir, debug)
	if err != nil {
		return nil, err
	}
	log.Setup(cfg.LogFile(), cfg.Options.Debug)
	return cfg, nil
}

func load(e env.Env, workingDir, dataDir string, debug bool) (*Config, error) {
	configPaths := lookupConfigs(e, workingDir)

	cfg, err := loadFromConfigPaths(configPaths)
	if err != nil {
		return nil, fmt.Errorf("从路径 %v 加载配置失败: %w", configPaths, err)
	}

	cfg.dataConfigDir = globalConfigData(e)
	if err := cfg.setDefaults(e, workingDir, dataDir); err != nil {
		return nil, err
	}
	if debug {
		cfg.Options.Debug = true
	}
	if err := cfg.Options.validate(); err != nil {
		return nil, fmt.Errorf("无效的配置: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults(e env.Env, workingDir, dataDir string) error {
	c.workingDir = workingDir
	if c.Options == nil {
		c.Options = &Options{}
	}

	switch {
	case dataDir != "":
		c.Options.DataDirectory = dataDir
	case c.Options.DataDirectory == "":
		if path, ok := fsext.LookupClosest(workingDir, defaultDataDirectory); ok {
			c.Options.DataDirectory = path
		} else {
			c.Options.DataDirectory = filepath.Join(workingDir, defaultDataDirectory)
		}
	}
	expanded, err := fsext.Expand(c.Options.DataDirectory, e.Get)
	if err != nil {
		return fmt.Errorf("展开数据目录 %q 失败: %w", c.Options.DataDirectory, err)
	}
	c.Options.DataDirectory = filepathext.SmartJoin(workingDir, expanded)

	if c.Options.AlternateColorChar == "" {
		c.Options.AlternateColorChar = "&"
	}
	if c.Options.Indent == 0 {
		c.Options.Indent = defaultIndent
	}

	if str := e.Get("POWERMSG_DEBUG"); str != "" {
		c.Options.Debug, _ = strconv.ParseBool(str)
	}
	if str := e.Get("POWERMSG_PRETTY"); str != "" {
		c.Options.Pretty, _ = strconv.ParseBool(str)
	}
	return nil
}

// lookupConfigs 返回按优先级从低到高排列的配置文件路径：全局配置、全局数据配置，
// 然后是从工作目录向上找到的项目配置，离工作目录越近优先级越高。
func lookupConfigs(e env.Env, cwd string) []string {
	configPaths := []string{
		globalConfig(e),
		globalConfigData(e),
	}

	configNames := []string{appName + ".json", "." + appName + ".json"}
	foundConfigs, err := fsext.Lookup(cwd, configNames...)
	if err != nil {
		return configPaths
	}

	slices.Reverse(foundConfigs)
	return append(configPaths, foundConfigs...)
}

func loadFromConfigPaths(configPaths []string) (*Config, error) {
	var configs [][]byte

	for _, path := range configPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("打开配置文件 %s 失败: %w", path, err)
		}
		if len(data) == 0 {
			continue
		}
		configs = append(configs, data)
	}

	return loadFromBytes(configs)
}

func loadFromBytes(configs [][]byte) (*Config, error) {
	if len(configs) == 0 {
		return &Config{}, nil
	}

	data, err := jsons.Merge(configs)
	if err != nil {
		return nil, err
	}
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// GlobalConfig 返回全局配置文件路径。
func GlobalConfig() string {
	return globalConfig(env.New())
}

// GlobalConfigData 返回全局数据配置文件路径，config set 会写入此文件。
func GlobalConfigData() string {
	return globalConfigData(env.New())
}

func globalConfig(e env.Env) string {
	if dir := e.Get("POWERMSG_GLOBAL_CONFIG"); dir != "" {
		return filepath.Join(dir, appName+".json")
	}
	if xdgConfigHome := e.Get("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName, appName+".json")
	}
	return filepath.Join(home.Dir(), ".config", appName, appName+".json")
}

func globalConfigData(e env.Env) string {
	if dir := e.Get("POWERMSG_GLOBAL_DATA"); dir != "" {
		return filepath.Join(dir, appName+".json")
	}
	if xdgDataHome := e.Get("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName, appName+".json")
	}
	return filepath.Join(home.Dir(), ".local", "share", appName, appName+".json")
}
