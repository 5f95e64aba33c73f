//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 移动端没有可读的工作目录，图片与音频也随包嵌入。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/levels data/tuning.yaml
var dataFS embed.FS
