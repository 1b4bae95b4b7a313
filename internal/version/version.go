// Package version 保存构建版本号。
package version

import "runtime/debug"

// Version 默认值为 "devel"，发布构建时通过 -ldflags 覆盖：
//
//	go build -ldflags "-X github.com/purpose168/powermessage/internal/version.Version=v1.2.3"
var Version = "devel"

// 通过 go install 安装时没有 -ldflags，此时改用模块的构建版本。
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
}
