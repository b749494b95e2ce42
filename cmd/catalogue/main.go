// Command catalogue 在命令行中执行目录查询并以 JSON 输出结果
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
