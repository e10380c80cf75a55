package main

import "github.com/Gonga3/study-planner/cmd/sp/root"

func main() {
	root.Execute()
}
