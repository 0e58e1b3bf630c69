// main.go
//
// Entry point; CLI handling lives in the cobra commands under cmd/.

package main

import (
	"github.com/vinhtrinh326/cpusched/cmd"
)

func main() {
	cmd.Execute()
}
