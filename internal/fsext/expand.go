package fsext

import (
	"strings"

	"github.com/purpose168/powermessage/internal/home"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// Expand 按 shell 规则展开路径中的 ~ 和环境变量，变量值由 getenv 提供。
func Expand(s string, getenv func(string) string) (string, error) {
	if s == "" {
		return "", nil
	}
	word, err := syntax.NewParser().Document(strings.NewReader(s))
	if err != nil {
		return "", err
	}
	cfg := &expand.Config{
		Env: expand.FuncEnviron(func(name string) string {
			if name == "HOME" {
				if v := getenv(name); v != "" {
					return v
				}
				return home.Dir()
			}
			return getenv(name)
		}),
	}
	return expand.Literal(cfg, word)
}
