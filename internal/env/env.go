// Package env 抽象了对环境变量的访问，便于在测试中替换。
package env

import "os"

// Env 提供环境变量的读取。
type Env interface {
	Get(key string) string
	Env() []string
}

type osEnv struct{}

// Get 实现 Env。
func (o *osEnv) Get(key string) string {
	return os.Getenv(key)
}

// Env 实现 Env。
func (o *osEnv) Env() []string {
	env := os.Environ()
	if len(env) == 0 {
		return nil
	}
	return env
}

// New 返回读取进程环境变量的 Env。
func New() Env {
	return &osEnv{}
}

type mapEnv struct {
	m map[string]string
}

// Get 实现 Env。
func (e *mapEnv) Get(key string) string {
	return e.m[key]
}

// Env 实现 Env。
func (e *mapEnv) Env() []string {
	env := make([]string, 0, len(e.m))
	for k, v := range e.m {
		env = append(env, k+"="+v)
	}
	return env
}

// NewFromMap 返回由 m 提供变量的 Env。
func NewFromMap(m map[string]string) Env {
	if m == nil {
		m = make(map[string]string)
	}
	return &mapEnv{m: m}
}
