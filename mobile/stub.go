//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// 移动端绑定代码（mobile.go 和 embed.go）只在 -tags mobile 时编译，
// 桌面构建时本包只剩下 Dummy，保证 go build ./... 不会因为包内没有文件而失败。
package mobile

// Dummy 与移动端构建导出同名的空函数
func Dummy() {}
