package tools

import "os"

func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}

func FileExist(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	// 其他错误，如权限问题等
	return false
}
