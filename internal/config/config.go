// Package config 加载并合并 powermsg 的分层 JSON 配置。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/invopop/jsonschema"
	"github.com/purpose168/powermessage/internal/chat"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	appName              = "powermsg"
	defaultDataDirectory = ".powermsg"
	defaultIndent        = 2
)

// Options 是影响渲染与输出的通用选项。
type Options struct {
	Debug              bool   `json:"debug,omitempty" jsonschema:"description=Enable debug logging,default=false"`
	DataDirectory      string `json:"data_directory,omitempty" jsonschema:"description=Directory for logs and stored messages (relative to working directory),default=.powermsg,example=.powermsg"` // 相对于当前工作目录
	AlternateColorChar string `json:"alternate_color_char,omitempty" jsonschema:"description=Character used instead of the section sign to introduce color codes,default=&,minLength=1,maxLength=1"`
	Pretty             bool   `json:"pretty,omitempty" jsonschema:"description=Pretty-print rendered JSON,default=false"`
	Legacy             bool   `json:"legacy,omitempty" jsonschema:"description=Render legacy section-sign text instead of JSON,default=false"`
	Indent             int    `json:"indent,omitempty" jsonschema:"description=Indent width used when pretty-printing,minimum=0,maximum=8,default=2"`
}

// Config 保存 powermsg 的配置。
type Config struct {
	Schema string `json:"$schema,omitempty"`

	Options *Options `json:"options,omitempty" jsonschema:"description=General application options"`

	// 内部字段
	workingDir    string `json:"-"`
	dataConfigDir string `json:"-"`
}

// JSONSchemaExtend 为 schema 填写标题。
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Title = "powermsg configuration"
}

func (c *Config) WorkingDir() string {
	return c.workingDir
}

// AlternateChar 返回配置的颜色代码替代前缀。
func (c *Config) AlternateChar() rune {
	r, _ := utf8.DecodeRuneInString(c.Options.AlternateColorChar)
	if r == utf8.RuneError {
		return chat.AlternateChar
	}
	return r
}

// LogFile 返回当前项目的日志文件路径。
func (c *Config) LogFile() string {
	return filepath.Join(c.Options.DataDirectory, "logs", appName+".log")
}

// DataConfigPath 返回 SetConfigField 写入的配置文件路径。
func (c *Config) DataConfigPath() string {
	return c.dataConfigDir
}

func (c *Config) HasConfigField(key string) bool {
	data, err := os.ReadFile(c.dataConfigDir)
	if err != nil {
		return false
	}
	return gjson.Get(string(data), key).Exists()
}

func (c *Config) SetConfigField(key string, value any) error {
	data, err := os.ReadFile(c.dataConfigDir)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("{}")
		} else {
			return fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	newValue, err := sjson.Set(string(data), key, value)
	if err != nil {
		return fmt.Errorf("设置配置字段 %s 失败: %w", key, err)
	}
	return c.writeDataConfig(newValue)
}

func (c *Config) RemoveConfigField(key string) error {
	data, err := os.ReadFile(c.dataConfigDir)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	newValue, err := sjson.Delete(string(data), key)
	if err != nil {
		return fmt.Errorf("删除配置字段 %s 失败: %w", key, err)
	}
	return c.writeDataConfig(newValue)
}

func (c *Config) writeDataConfig(content string) error {
	if err := os.MkdirAll(filepath.Dir(c.dataConfigDir), 0o755); err != nil {
		return fmt.Errorf("创建配置目录 %q 失败: %w", c.dataConfigDir, err)
	}
	if err := os.WriteFile(c.dataConfigDir, []byte(content), 0o600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}

func (o *Options) validate() error {
	if n := utf8.RuneCountInString(o.AlternateColorChar); n != 1 {
		return fmt.Errorf("alternate_color_char 必须是单个字符，实际为 %q", o.AlternateColorChar)
	}
	alt, _ := utf8.DecodeRuneInString(o.AlternateColorChar)
	if _, ok := chat.TokenByCode(alt); ok {
		return fmt.Errorf("alternate_color_char 不能是颜色代码字符 %q", alt)
	}
	if o.Indent < 0 || o.Indent > 8 {
		return fmt.Errorf("indent 必须在 0 到 8 之间，实际为 %d", o.Indent)
	}
	return nil
}
